// internal/workers/sitegen/store-site-plan/handler.go
package storesiteplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/common/metrics"
	"sitegen-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	TaskType = "store-site-plan"
)

var (
	ErrInsertFailed = errors.New("DATABASE_INSERT_FAILED")
	ErrDuplicate    = errors.New("DUPLICATE_SITE_PLAN")
)

// Status a freshly stored plan starts in. Plans wait for owner answers when
// any smart questions were generated.
const (
	statusPendingAnswers = "pending_answers"
	statusReady          = "ready"
)

type Handler struct {
	config *Config
	db     *sql.DB
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
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
		code := "DATABASE_INSERT_FAILED"
		if errors.Is(err, ErrDuplicate) {
			code = "DUPLICATE_SITE_PLAN"
		}
		h.failJob(client, job, code, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.BusinessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrInsertFailed)
	}

	status := statusReady
	if len(input.Questions) > 0 {
		status = statusPendingAnswers
	}

	plan := models.SitePlan{
		ID:         uuid.New().String(),
		TenantID:   input.TenantID,
		BusinessID: input.BusinessID,
		Industry:   input.Industry,
		TemplateID: input.TemplateID,
		Score:      input.DataScore,
		Questions:  input.Questions,
		Sections:   input.Sections,
		Status:     status,
	}

	scoreJSON, err := json.Marshal(plan.Score)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal score: %v", ErrInsertFailed, err)
	}
	questionsJSON, err := json.Marshal(plan.Questions)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal questions: %v", ErrInsertFailed, err)
	}
	sectionsJSON, err := json.Marshal(plan.Sections)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal sections: %v", ErrInsertFailed, err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO site_plans (id, tenant_id, business_id, industry, template_id, score, questions, sections, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`,
		plan.ID, plan.TenantID, plan.BusinessID, plan.Industry, plan.TemplateID,
		scoreJSON, questionsJSON, sectionsJSON, plan.Status)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: business %s", ErrDuplicate, input.BusinessID)
		}
		return nil, fmt.Errorf("%w: %v", ErrInsertFailed, err)
	}

	metrics.SitePlansStored.WithLabelValues(string(input.DataScore.ContentTier)).Inc()

	h.logger.Info("site plan stored", map[string]interface{}{
		"planId":     plan.ID,
		"businessId": plan.BusinessID,
		"templateId": plan.TemplateID,
		"status":     plan.Status,
	})

	return &Output{
		PlanID: plan.ID,
		Status: plan.Status,
	}, nil
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
