// internal/models/siteplan.go
package models

import (
	"sitegen-workers/internal/siteplan"
)

// SitePlan is the persisted output of the site planning pipeline, one row in
// the site_plans table.
type SitePlan struct {
	ID         string                           `json:"id"`
	TenantID   string                           `json:"tenantId"`
	BusinessID string                           `json:"businessId"`
	Industry   string                           `json:"industry"`
	TemplateID string                           `json:"templateId"`
	Score      siteplan.DataScore               `json:"score"`
	Questions  []siteplan.SmartQuestion         `json:"questions"`
	Sections   []siteplan.SectionRecommendation `json:"sections"`
	Status     string                           `json:"status"` // "pending_answers", "ready"
	CreatedAt  string                           `json:"createdAt"`
	UpdatedAt  string                           `json:"updatedAt"`
}
