// internal/workers/sitegen/select-page-template/handler.go
package selectpagetemplate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"
	"sitegen-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "select-page-template"
)

var (
	ErrTemplateNotFound = errors.New("TEMPLATE_NOT_FOUND")
)

type Handler struct {
	config   *Config
	registry *registry.TemplateRegistry
	logger   logger.Logger
}

func NewHandler(config *Config, reg *registry.TemplateRegistry, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		registry: reg,
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, "TEMPLATE_NOT_FOUND", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	tier := input.ContentTier
	if tier == "" {
		tier = siteplan.TierMinimal
	}

	tmpl := h.registry.FindTemplate(input.Industry, string(tier))
	if tmpl == nil {
		return nil, fmt.Errorf("%w: no template for industry %q tier %q", ErrTemplateNotFound, input.Industry, tier)
	}

	// Sections the plan asks for that the chosen template cannot render.
	missing := missingSections(tmpl, input.Sections)

	h.logger.Info("template selected", map[string]interface{}{
		"businessId":      input.BusinessID,
		"industry":        input.Industry,
		"contentTier":     string(tier),
		"templateId":      tmpl.ID,
		"missingSections": missing,
	})

	return &Output{
		TemplateID:      tmpl.ID,
		TemplateName:    tmpl.DisplayName,
		Sections:        tmpl.Sections,
		MissingSections: missing,
	}, nil
}

func missingSections(tmpl *registry.Template, recs []siteplan.SectionRecommendation) []string {
	supported := make(map[string]bool, len(tmpl.Sections))
	for _, s := range tmpl.Sections {
		supported[s] = true
	}

	missing := []string{}
	for _, rec := range recs {
		if !supported[string(rec.Section)] {
			missing = append(missing, string(rec.Section))
		}
	}
	return missing
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
