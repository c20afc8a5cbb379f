// internal/workers/infrastructure/validate-tenant-subscription/models.go
package validatetenantsubscription

import "sitegen-workers/internal/models"

type Input struct {
	TenantID string `json:"tenantId"`
}

type Output struct {
	Valid     bool                    `json:"subscriptionValid"`
	Plan      models.SubscriptionPlan `json:"subscriptionPlan"`
	ExpiresAt string                  `json:"subscriptionExpiresAt,omitempty"`
}
