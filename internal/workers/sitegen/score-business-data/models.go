// internal/workers/sitegen/score-business-data/models.go
package scorebusinessdata

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID string                       `json:"businessId"`
	Industry   string                       `json:"industry"`
	Bundle     *siteplan.BusinessDataBundle `json:"businessDataBundle"`
}

type Output struct {
	DataScore   siteplan.DataScore   `json:"dataScore"`
	ContentTier siteplan.ContentTier `json:"contentTier"`
}
