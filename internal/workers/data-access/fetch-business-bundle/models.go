// internal/workers/data-access/fetch-business-bundle/models.go
package fetchbusinessbundle

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID string `json:"businessId"`

	// Optional upstream results carried as process variables. When present they
	// are folded into the bundle as-is.
	Places   *siteplan.PlacesResult   `json:"placesResult,omitempty"`
	Snippets *siteplan.SearchSnippets `json:"searchSnippets,omitempty"`
}

type Output struct {
	Bundle  *siteplan.BusinessDataBundle `json:"businessDataBundle"`
	Sources []string                     `json:"bundleSources"`
}
