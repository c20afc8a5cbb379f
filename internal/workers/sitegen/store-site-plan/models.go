// internal/workers/sitegen/store-site-plan/models.go
package storesiteplan

import "sitegen-workers/internal/siteplan"

type Input struct {
	TenantID   string                           `json:"tenantId"`
	BusinessID string                           `json:"businessId"`
	Industry   string                           `json:"industry"`
	TemplateID string                           `json:"templateId"`
	DataScore  siteplan.DataScore               `json:"dataScore"`
	Questions  []siteplan.SmartQuestion         `json:"smartQuestions"`
	Sections   []siteplan.SectionRecommendation `json:"sectionRecommendations"`
}

type Output struct {
	PlanID string `json:"planId"`
	Status string `json:"planStatus"`
}
