// internal/workers/data-access/fetch-search-snippets/handler.go
package fetchsearchsnippets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	commonhttp "sitegen-workers/internal/common/http"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"
	"sitegen-workers/internal/siteplan/industry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "fetch-search-snippets"
)

var (
	ErrSnippetFetch     = errors.New("SNIPPET_FETCH_FAILED")
	ErrWebSearchTimeout = errors.New("WEB_SEARCH_TIMEOUT")
)

type Handler struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
}

func NewHandler(config *Config, client *commonhttp.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		client: client,
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
		if errors.Is(err, ErrWebSearchTimeout) {
			// Snippets are enrichment only. A slow or unreachable provider
			// degrades to an empty set instead of failing the process.
			h.logger.Warn("web search unavailable, continuing without snippets", map[string]interface{}{
				"businessId": input.BusinessID,
				"error":      err,
			})
			h.completeJob(client, job, &Output{
				Snippets: &siteplan.SearchSnippets{
					PeopleAlsoAsk:      []siteplan.QAPair{},
					CompetitorServices: []string{},
				},
				Degraded: true,
			})
			return
		}
		h.failJob(client, job, "SNIPPET_FETCH_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.BusinessName == "" {
		return nil, fmt.Errorf("%w: businessName is required", ErrSnippetFetch)
	}

	searchURL := h.buildSearchURL(h.buildQuery(input))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnippetFetch, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded ||
			strings.Contains(err.Error(), "timeout") ||
			strings.Contains(err.Error(), "deadline") ||
			strings.Contains(err.Error(), "connection refused") {
			return nil, ErrWebSearchTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrSnippetFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: search API returned %d", ErrSnippetFetch, resp.StatusCode)
	}

	var apiResponse searchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrSnippetFetch, err)
	}

	snippets := h.extractSnippets(apiResponse.Items, input.Industry)

	h.logger.Info("search snippets collected", map[string]interface{}{
		"businessId":         input.BusinessID,
		"peopleAlsoAsk":      len(snippets.PeopleAlsoAsk),
		"competitorServices": len(snippets.CompetitorServices),
	})

	return &Output{Snippets: snippets}, nil
}

func (h *Handler) buildQuery(input *Input) string {
	parts := []string{input.BusinessName}
	if input.Industry != "" {
		parts = append(parts, strings.ReplaceAll(input.Industry, "-", " "))
	}
	if input.City != "" {
		parts = append(parts, input.City)
	}
	return strings.Join(parts, " ")
}

func (h *Handler) buildSearchURL(query string) string {
	baseURL, _ := url.Parse(h.config.SearchAPIBaseURL)
	params := url.Values{}
	params.Add("key", h.config.SearchAPIKey)
	params.Add("cx", h.config.SearchEngineID)
	params.Add("q", query)
	params.Add("num", fmt.Sprintf("%d", h.config.MaxResults))
	baseURL.RawQuery = params.Encode()
	return baseURL.String()
}

// extractSnippets splits raw search items into question/answer pairs and
// mentions of services competitors advertise for the same industry.
func (h *Handler) extractSnippets(items []searchItem, industryKey string) *siteplan.SearchSnippets {
	snippets := &siteplan.SearchSnippets{
		PeopleAlsoAsk:      []siteplan.QAPair{},
		CompetitorServices: []string{},
	}

	vocab := industry.ServiceOptions(industryKey)
	seenService := make(map[string]bool)
	seenQuestion := make(map[string]bool)

	for _, item := range items {
		if item.Mime != "" && !strings.Contains(item.Mime, "html") {
			continue
		}

		title := strings.TrimSpace(item.Title)
		if strings.HasSuffix(title, "?") && !seenQuestion[title] {
			seenQuestion[title] = true
			snippets.PeopleAlsoAsk = append(snippets.PeopleAlsoAsk, siteplan.QAPair{
				Question: title,
				Answer:   strings.TrimSpace(item.Snippet),
			})
		}

		text := strings.ToLower(title + " " + item.Snippet)
		for _, opt := range vocab {
			if seenService[opt.Value] {
				continue
			}
			phrase := strings.ReplaceAll(opt.Value, "-", " ")
			if strings.Contains(text, phrase) || strings.Contains(text, strings.ToLower(opt.Label)) {
				seenService[opt.Value] = true
				snippets.CompetitorServices = append(snippets.CompetitorServices, opt.Value)
			}
		}
	}

	return snippets
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
