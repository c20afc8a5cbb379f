// internal/workers/sitegen/generate-smart-questions/models.go
package generatesmartquestions

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID string                       `json:"businessId"`
	Industry   string                       `json:"industry"`
	DataScore  siteplan.DataScore           `json:"dataScore"`
	Bundle     *siteplan.BusinessDataBundle `json:"businessDataBundle"`
}

type Output struct {
	Questions     []siteplan.SmartQuestion `json:"smartQuestions"`
	QuestionCount int                      `json:"questionCount"`
}
