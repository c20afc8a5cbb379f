// internal/models/tenant.go
package models

import "time"

// SubscriptionPlan represents the tenant's billing plan.
type SubscriptionPlan string

const (
	PlanStarter      SubscriptionPlan = "starter"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

// Tenant represents a business owner account on the platform.
type Tenant struct {
	ID           string                 `json:"id" db:"id"`
	Email        string                 `json:"email" db:"email"`
	OwnerName    string                 `json:"ownerName" db:"owner_name"`
	Phone        string                 `json:"phone,omitempty" db:"phone"`
	CompanyName  string                 `json:"companyName" db:"company_name"`
	Industry     string                 `json:"industry" db:"industry"`
	Status       string                 `json:"status" db:"status"`
	CreatedAt    time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time              `json:"updatedAt" db:"updated_at"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
}

// Subscription represents a tenant's active plan entitlement.
type Subscription struct {
	ID        string           `json:"id" db:"id"`
	TenantID  string           `json:"tenantId" db:"tenant_id"`
	Plan      SubscriptionPlan `json:"plan" db:"plan"`
	Status    string           `json:"status" db:"status"` // "active", "past_due", "cancelled"
	ExpiresAt *time.Time       `json:"expiresAt,omitempty" db:"expires_at"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}

// IsActive reports whether the subscription currently entitles site generation.
func (s *Subscription) IsActive(now time.Time) bool {
	if s.Status != "active" {
		return false
	}
	if s.ExpiresAt != nil && s.ExpiresAt.Before(now) {
		return false
	}
	return true
}
