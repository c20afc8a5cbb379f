// internal/workers/communication/send-owner-questions/models.go
package sendownerquestions

import "sitegen-workers/internal/siteplan"

type Input struct {
	TenantID     string                   `json:"tenantId"`
	Email        string                   `json:"email"`
	Phone        string                   `json:"phone,omitempty"`
	OwnerName    string                   `json:"ownerName,omitempty"`
	BusinessName string                   `json:"businessName,omitempty"`
	SitePlanID   string                   `json:"sitePlanId"`
	Questions    []siteplan.SmartQuestion `json:"smartQuestions"`
}

type Output struct {
	EmailSent bool `json:"emailSent"`
	SMSSent   bool `json:"smsSent"`
}
