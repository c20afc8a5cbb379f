// internal/workers/sitegen/recommend-page-sections/models.go
package recommendpagesections

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID string                       `json:"businessId"`
	Industry   string                       `json:"industry"`
	DataScore  siteplan.DataScore           `json:"dataScore"`
	Bundle     *siteplan.BusinessDataBundle `json:"businessDataBundle"`
}

type Output struct {
	Sections     []siteplan.SectionRecommendation `json:"sectionRecommendations"`
	SectionCount int                              `json:"sectionCount"`
}
