// internal/workers/data-access/sync-listing-profile/handler.go
package synclistingprofile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	commonhttp "sitegen-workers/internal/common/http"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "sync-listing-profile"
)

var (
	ErrListingNotFound = errors.New("LISTING_NOT_FOUND")
	ErrListingFetch    = errors.New("BUNDLE_FETCH_FAILED")
)

func cacheKey(businessID string) string {
	return "listing:profile:" + businessID
}

type Handler struct {
	config     *Config
	httpClient *commonhttp.Client
	redis      *redis.Client
	logger     logger.Logger
}

func NewHandler(config *Config, httpClient *commonhttp.Client, rdb *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		httpClient: httpClient,
		redis:      rdb,
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		code := "BUNDLE_FETCH_FAILED"
		if errors.Is(err, ErrListingNotFound) {
			code = "LISTING_NOT_FOUND"
		}
		h.failJob(client, job, code, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.BusinessID == "" {
		return nil, fmt.Errorf("%w: businessId is required", ErrListingFetch)
	}

	if !input.ForceSync {
		if cached, err := h.redis.Get(ctx, cacheKey(input.BusinessID)).Result(); err == nil {
			var listing siteplan.ListingProfile
			if err := json.Unmarshal([]byte(cached), &listing); err == nil {
				h.logger.Debug("listing served from cache", map[string]interface{}{
					"businessId": input.BusinessID,
				})
				return &Output{Listing: &listing, FromCache: true}, nil
			}
		}
	}

	listing, err := h.fetchListing(ctx, input.ListingRef)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(listing); err == nil {
		h.redis.Set(ctx, cacheKey(input.BusinessID), data, h.config.CacheTTL)
	}

	h.logger.Info("listing profile synced", map[string]interface{}{
		"businessId": input.BusinessID,
		"listingRef": input.ListingRef,
		"photos":     len(listing.Photos),
	})

	return &Output{Listing: listing, FromCache: false}, nil
}

func (h *Handler) fetchListing(ctx context.Context, listingRef string) (*siteplan.ListingProfile, error) {
	url := fmt.Sprintf("%s/v1/listings/%s", h.config.BaseURL, listingRef)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListingFetch, err)
	}
	req.Header.Set("Authorization", "Bearer "+h.config.APIKey)

	resp, err := h.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: listing api: %v", ErrListingFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: listingRef %s", ErrListingNotFound, listingRef)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: listing api status %d", ErrListingFetch, resp.StatusCode)
	}

	var apiResp listingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %v", ErrListingFetch, err)
	}

	return normalizeListing(&apiResp), nil
}

// normalizeListing maps the provider payload onto the platform profile shape.
func normalizeListing(resp *listingAPIResponse) *siteplan.ListingProfile {
	listing := &siteplan.ListingProfile{
		Name:        resp.Name,
		Categories:  resp.Categories,
		Phone:       resp.Phone,
		Description: resp.Description,
		Attributes:  resp.Attributes,
		Services:    resp.Services,
		ServiceArea: resp.ServiceArea,
	}

	for _, p := range resp.Hours {
		listing.Hours = append(listing.Hours, siteplan.HoursPeriod{Day: p.Day, Open: p.Open, Close: p.Close})
	}
	for _, p := range resp.Photos {
		listing.Photos = append(listing.Photos, siteplan.Photo{URL: p.URL, Caption: p.Caption})
	}
	if resp.ReviewCount > 0 || resp.Rating > 0 {
		listing.Reviews = &siteplan.ReviewAggregate{Rating: resp.Rating, Count: resp.ReviewCount}
	}

	return listing
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
