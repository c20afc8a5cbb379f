// internal/workers/infrastructure/validate-tenant-subscription/handler.go
package validatetenantsubscription

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-tenant-subscription"
)

var (
	ErrSubscriptionInvalid     = errors.New("SUBSCRIPTION_INVALID")
	ErrSubscriptionExpired     = errors.New("SUBSCRIPTION_EXPIRED")
	ErrSubscriptionCheckFailed = errors.New("SUBSCRIPTION_CHECK_FAILED")
)

type Handler struct {
	config *Config
	db     *sql.DB
	logger logger.Logger
	now    func() time.Time
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		now:    time.Now,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, h.mapErrorToCode(err), err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.TenantID == "" {
		return nil, fmt.Errorf("%w: tenantId is required", ErrSubscriptionInvalid)
	}

	sub, err := h.loadSubscription(ctx, input.TenantID)
	if err != nil {
		return nil, err
	}

	now := h.now()
	if !sub.IsActive(now) {
		if sub.Status == "active" && sub.ExpiresAt != nil && sub.ExpiresAt.Before(now) {
			return nil, fmt.Errorf("%w: plan %s expired %s", ErrSubscriptionExpired, sub.Plan, sub.ExpiresAt.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: status %q", ErrSubscriptionInvalid, sub.Status)
	}

	h.logger.Info("subscription validated", map[string]interface{}{
		"tenantId": input.TenantID,
		"plan":     sub.Plan,
	})

	output := &Output{Valid: true, Plan: sub.Plan}
	if sub.ExpiresAt != nil {
		output.ExpiresAt = sub.ExpiresAt.Format(time.RFC3339)
	}
	return output, nil
}

// loadSubscription picks the most recent subscription row for the tenant.
func (h *Handler) loadSubscription(ctx context.Context, tenantID string) (*models.Subscription, error) {
	row := h.db.QueryRowContext(ctx, `
		SELECT id, tenant_id, plan, status, expires_at, created_at
		FROM subscriptions WHERE tenant_id = $1
		ORDER BY created_at DESC LIMIT 1`, tenantID)

	var sub models.Subscription
	err := row.Scan(&sub.ID, &sub.TenantID, &sub.Plan, &sub.Status, &sub.ExpiresAt, &sub.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no subscription for tenant %s", ErrSubscriptionInvalid, tenantID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubscriptionCheckFailed, err)
	}
	return &sub, nil
}

func (h *Handler) mapErrorToCode(err error) string {
	switch {
	case errors.Is(err, ErrSubscriptionExpired):
		return "SUBSCRIPTION_EXPIRED"
	case errors.Is(err, ErrSubscriptionInvalid):
		return "SUBSCRIPTION_INVALID"
	case errors.Is(err, ErrSubscriptionCheckFailed):
		return "SUBSCRIPTION_CHECK_FAILED"
	}
	return "UNKNOWN_ERROR"
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
