// internal/workers/crm/crm-lead-sync/models.go
package crmleadsync

type Input struct {
	TenantID    string `json:"tenantId"`
	Email       string `json:"email"`
	OwnerName   string `json:"ownerName"`
	Phone       string `json:"phone,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	ContentTier string `json:"contentTier,omitempty"`
	SitePlanID  string `json:"sitePlanId,omitempty"`
}

type Output struct {
	LeadID  string `json:"crmLeadId"`
	Created bool   `json:"crmLeadCreated"`
}
