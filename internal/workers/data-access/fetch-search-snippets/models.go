// internal/workers/data-access/fetch-search-snippets/models.go
package fetchsearchsnippets

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Industry     string `json:"industry"`
	City         string `json:"city,omitempty"`
}

type Output struct {
	Snippets *siteplan.SearchSnippets `json:"searchSnippets"`
	// Degraded is true when the search provider was unreachable and an empty
	// snippet set was substituted.
	Degraded bool `json:"snippetsDegraded"`
}

// searchAPIResponse mirrors the custom-search JSON envelope.
type searchAPIResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Link    string `json:"link"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Mime    string `json:"mime"`
}
