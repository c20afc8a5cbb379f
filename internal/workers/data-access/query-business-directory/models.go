// internal/workers/data-access/query-business-directory/models.go
package querybusinessdirectory

import "sitegen-workers/internal/models"

type Input struct {
	QueryType  models.QueryType `json:"queryType"`
	Filters    Filters          `json:"filters"`
	Pagination Pagination       `json:"pagination"`
}

type Filters struct {
	Industry          string  `json:"industry,omitempty"`
	City              string  `json:"city,omitempty"`
	Region            string  `json:"region,omitempty"`
	Text              string  `json:"text,omitempty"`
	ExcludeBusinessID string  `json:"excludeBusinessId,omitempty"`
	MinRating         float64 `json:"minRating,omitempty"`
}

type Pagination struct {
	From int `json:"from"`
	Size int `json:"size"`
}

type Output struct {
	Entries   []models.DirectoryEntry `json:"directoryEntries"`
	TotalHits int64                   `json:"totalHits"`
	Took      int64                   `json:"took"`
}
