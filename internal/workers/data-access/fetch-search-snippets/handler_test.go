// internal/workers/data-access/fetch-search-snippets/handler_test.go
package fetchsearchsnippets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	commonhttp "sitegen-workers/internal/common/http"
	"sitegen-workers/internal/common/logger"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

func searchServer(t *testing.T, items []searchItem) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.URL.Query().Get("q"))
		_ = json.NewEncoder(w).Encode(searchAPIResponse{Items: items})
	}))
}

func createHandler(t *testing.T, baseURL string) *Handler {
	cfg := LoadConfig()
	cfg.SearchAPIBaseURL = baseURL
	cfg.SearchAPIKey = "test-key"
	cfg.SearchEngineID = "test-engine"
	return NewHandler(cfg, commonhttp.NewClient(2*time.Second), newTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_ExtractsQuestionsAndServices(t *testing.T) {
	server := searchServer(t, []searchItem{
		{
			Title:   "How much does drain cleaning cost?",
			Snippet: "Most drain cleaning visits run between $150 and $300.",
			Link:    "https://example.com/faq",
		},
		{
			Title:   "City Plumbing Services",
			Snippet: "We offer water heater repair, leak repair, and sewer line service.",
			Link:    "https://competitor.example.com",
		},
		{
			Title:   "Pricing sheet",
			Snippet: "",
			Link:    "https://example.com/pricing.pdf",
			Mime:    "application/pdf",
		},
	})
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		BusinessID:   "biz-001",
		BusinessName: "Valley Plumbing Pros",
		Industry:     "plumbing",
		City:         "Phoenix",
	})

	assert.NoError(t, err)
	assert.False(t, output.Degraded)
	assert.Len(t, output.Snippets.PeopleAlsoAsk, 1)
	assert.Equal(t, "How much does drain cleaning cost?", output.Snippets.PeopleAlsoAsk[0].Question)
	assert.Contains(t, output.Snippets.CompetitorServices, "drain-cleaning")
	assert.Contains(t, output.Snippets.CompetitorServices, "water-heater")
	assert.Contains(t, output.Snippets.CompetitorServices, "leak-repair")
	assert.Contains(t, output.Snippets.CompetitorServices, "sewer-repair")
}

func TestHandler_Execute_DeduplicatesServices(t *testing.T) {
	server := searchServer(t, []searchItem{
		{Title: "A", Snippet: "drain cleaning experts", Link: "https://a.example.com"},
		{Title: "B", Snippet: "drain cleaning specials", Link: "https://b.example.com"},
	})
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		BusinessName: "Valley Plumbing Pros",
		Industry:     "plumbing",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"drain-cleaning"}, output.Snippets.CompetitorServices)
}

func TestHandler_Execute_UnknownIndustryStillCollectsQuestions(t *testing.T) {
	server := searchServer(t, []searchItem{
		{Title: "Do notaries travel to clients?", Snippet: "Many offer mobile service.", Link: "https://example.com"},
	})
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		BusinessName: "Downtown Notary",
		Industry:     "notary",
	})

	assert.NoError(t, err)
	assert.Len(t, output.Snippets.PeopleAlsoAsk, 1)
	assert.Empty(t, output.Snippets.CompetitorServices)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_UnreachableProviderIsTimeout(t *testing.T) {
	handler := createHandler(t, "http://127.0.0.1:1")

	output, err := handler.Execute(context.Background(), &Input{
		BusinessName: "Valley Plumbing Pros",
		Industry:     "plumbing",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrWebSearchTimeout)
}

func TestHandler_Execute_ProviderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		BusinessName: "Valley Plumbing Pros",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSnippetFetch)
}

func TestHandler_Execute_MissingBusinessName(t *testing.T) {
	handler := createHandler(t, "http://127.0.0.1:1")

	output, err := handler.Execute(context.Background(), &Input{BusinessID: "biz-002"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSnippetFetch)
}
