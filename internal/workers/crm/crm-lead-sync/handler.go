// internal/workers/crm/crm-lead-sync/handler.go
package crmleadsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/common/validation"
	"sitegen-workers/internal/common/zoho"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "crm-lead-sync"
)

var (
	ErrCRMSyncFailed = errors.New("CRM_SYNC_FAILED")
	ErrInvalidLead   = errors.New("INVALID_LEAD_DATA")
)

// crmAPI is the slice of the CRM client this worker needs.
type crmAPI interface {
	SearchLeads(ctx context.Context, email string) ([]zoho.Lead, error)
	CreateLead(ctx context.Context, lead *zoho.Lead) (string, error)
	UpdateLead(ctx context.Context, leadID string, lead *zoho.Lead) error
}

type Handler struct {
	config *Config
	crm    crmAPI
	logger logger.Logger
}

func NewHandler(config *Config, crm crmAPI, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		crm:    crm,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		errorCode := "CRM_SYNC_FAILED"
		if errors.Is(err, ErrInvalidLead) {
			errorCode = "INVALID_LEAD_DATA"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if !validation.ValidateEmail(input.Email) {
		return nil, fmt.Errorf("%w: invalid email %q", ErrInvalidLead, input.Email)
	}

	lead := h.buildLead(input)

	existing, err := h.crm.SearchLeads(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", ErrCRMSyncFailed, err)
	}

	if len(existing) > 0 {
		leadID := existing[0].ID
		if err := h.crm.UpdateLead(ctx, leadID, lead); err != nil {
			return nil, fmt.Errorf("%w: update: %v", ErrCRMSyncFailed, err)
		}
		h.logger.Info("lead updated", map[string]interface{}{
			"tenantId": input.TenantID,
			"leadId":   leadID,
		})
		return &Output{LeadID: leadID, Created: false}, nil
	}

	leadID, err := h.crm.CreateLead(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("%w: create: %v", ErrCRMSyncFailed, err)
	}

	h.logger.Info("lead created", map[string]interface{}{
		"tenantId": input.TenantID,
		"leadId":   leadID,
	})
	return &Output{LeadID: leadID, Created: true}, nil
}

func (h *Handler) buildLead(input *Input) *zoho.Lead {
	first, last := splitName(input.OwnerName)

	return &zoho.Lead{
		Email:     input.Email,
		FirstName: first,
		LastName:  last,
		Phone:     input.Phone,
		Company:   input.CompanyName,
		Industry:  input.Industry,
		Website:   input.Website,
		Source:    h.config.LeadSource,
	}
}

// splitName breaks a display name into first/last. Zoho requires a last name,
// so single-token names land there.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", "Unknown"
	case 1:
		return "", parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
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
