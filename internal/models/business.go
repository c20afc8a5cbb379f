// internal/models/business.go
package models

// DirectoryEntry is a search result row from the business directory index.
type DirectoryEntry struct {
	BusinessID string   `json:"businessId"`
	Name       string   `json:"name"`
	Industry   string   `json:"industry"`
	City       string   `json:"city,omitempty"`
	Region     string   `json:"region,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	Reviews    int      `json:"reviews,omitempty"`
	Services   []string `json:"services,omitempty"`
	Score      float64  `json:"score"` // search relevance
}
