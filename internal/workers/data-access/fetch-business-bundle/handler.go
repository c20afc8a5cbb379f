// internal/workers/data-access/fetch-business-bundle/handler.go
package fetchbusinessbundle

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "fetch-business-bundle"
)

var (
	ErrBundleFetchFailed = errors.New("BUNDLE_FETCH_FAILED")
)

func listingCacheKey(businessID string) string {
	return "listing:profile:" + businessID
}

type Handler struct {
	config *Config
	db     *sql.DB
	redis  *redis.Client
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, rdb *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		redis:  rdb,
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
		h.failJob(client, job, "BUNDLE_FETCH_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.BusinessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrBundleFetchFailed)
	}

	bundle := &siteplan.BusinessDataBundle{
		Places:   input.Places,
		Snippets: input.Snippets,
	}
	sources := []string{}

	if input.Places != nil {
		sources = append(sources, "places")
	}
	if input.Snippets != nil {
		sources = append(sources, "snippets")
	}

	if listing := h.loadListing(ctx, input.BusinessID); listing != nil {
		bundle.Listing = listing
		sources = append(sources, "listing")
	}

	manual, err := h.loadManualAnswers(ctx, input.BusinessID)
	if err != nil {
		return nil, err
	}
	if manual != nil {
		bundle.Manual = manual
		sources = append(sources, "manual")
	}

	h.logger.Info("business bundle assembled", map[string]interface{}{
		"businessId": input.BusinessID,
		"sources":    sources,
	})

	return &Output{Bundle: bundle, Sources: sources}, nil
}

// loadListing reads the profile cached by the listing sync worker. A cache miss
// is not an error: scoring handles partial bundles.
func (h *Handler) loadListing(ctx context.Context, businessID string) *siteplan.ListingProfile {
	val, err := h.redis.Get(ctx, listingCacheKey(businessID)).Result()
	if err != nil {
		if err != redis.Nil {
			h.logger.Warn("listing cache read failed", map[string]interface{}{
				"businessId": businessID,
				"error":      err,
			})
		}
		return nil
	}

	var listing siteplan.ListingProfile
	if err := json.Unmarshal([]byte(val), &listing); err != nil {
		h.logger.Warn("listing cache entry corrupt", map[string]interface{}{
			"businessId": businessID,
			"error":      err,
		})
		return nil
	}
	return &listing
}

func (h *Handler) loadManualAnswers(ctx context.Context, businessID string) (*siteplan.ManualAnswers, error) {
	row := h.db.QueryRowContext(ctx, `
		SELECT years_in_business, certifications, awards, specializations, team_size, services, service_areas
		FROM onboarding_answers WHERE business_id = $1`, businessID)

	var manual siteplan.ManualAnswers
	var certs, awards, specs, services, areas []byte
	err := row.Scan(&manual.YearsInBusiness, &certs, &awards, &specs, &manual.TeamSize, &services, &areas)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: manual answers query: %v", ErrBundleFetchFailed, err)
	}

	unmarshalList(certs, &manual.Certifications)
	unmarshalList(awards, &manual.Awards)
	unmarshalList(specs, &manual.Specializations)
	unmarshalList(services, &manual.Services)
	unmarshalList(areas, &manual.ServiceAreas)

	return &manual, nil
}

func unmarshalList(data []byte, dst *[]string) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		*dst = nil
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
