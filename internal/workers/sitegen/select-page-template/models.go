// internal/workers/sitegen/select-page-template/models.go
package selectpagetemplate

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID  string                           `json:"businessId"`
	Industry    string                           `json:"industry"`
	ContentTier siteplan.ContentTier             `json:"contentTier"`
	Sections    []siteplan.SectionRecommendation `json:"sectionRecommendations"`
}

type Output struct {
	TemplateID      string   `json:"templateId"`
	TemplateName    string   `json:"templateName"`
	Sections        []string `json:"templateSections"`
	MissingSections []string `json:"missingSections"`
}
