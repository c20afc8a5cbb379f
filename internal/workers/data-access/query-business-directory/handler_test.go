// internal/workers/data-access/query-business-directory/handler_test.go
package querybusinessdirectory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
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

type esHit struct {
	Score  float64                `json:"_score"`
	Source map[string]interface{} `json:"_source"`
}

func esResponse(hits []esHit) map[string]interface{} {
	maxScore := 0.0
	for _, h := range hits {
		if h.Score > maxScore {
			maxScore = h.Score
		}
	}
	return map[string]interface{}{
		"took": 7,
		"hits": map[string]interface{}{
			"total":     map[string]interface{}{"value": len(hits)},
			"max_score": maxScore,
			"hits":      hits,
		},
	}
}

// esServer emulates the search endpoint and captures the last request body.
func esServer(t *testing.T, status int, response interface{}, lastBody *[]byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if lastBody != nil && len(body) > 0 {
			*lastBody = body
		}
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
}

func createHandler(t *testing.T, serverURL string) *Handler {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{serverURL},
	})
	assert.NoError(t, err)
	return NewHandler(LoadConfig(), client, newTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_ByIndustry(t *testing.T) {
	server := esServer(t, http.StatusOK, esResponse([]esHit{
		{Score: 2.5, Source: map[string]interface{}{
			"businessId": "biz-100",
			"name":       "Desert Air HVAC",
			"industry":   "hvac",
			"city":       "Phoenix",
			"rating":     4.8,
			"reviews":    127,
			"services":   []string{"ac-repair"},
		}},
		{Score: 1.1, Source: map[string]interface{}{
			"businessId": "biz-101",
			"name":       "Cool Breeze",
			"industry":   "hvac",
			"city":       "Phoenix",
			"rating":     4.2,
		}},
	}), nil)
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryTypeBusinessByIndustry,
		Filters:   Filters{Industry: "hvac", City: "Phoenix"},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), output.TotalHits)
	assert.Len(t, output.Entries, 2)
	assert.Equal(t, "biz-100", output.Entries[0].BusinessID)
	assert.Equal(t, 4.8, output.Entries[0].Rating)
	assert.Equal(t, []string{"ac-repair"}, output.Entries[0].Services)
	assert.Equal(t, 2.5, output.Entries[0].Score)
}

func TestHandler_Execute_CompetitorLookupExcludesSubject(t *testing.T) {
	var lastBody []byte
	server := esServer(t, http.StatusOK, esResponse(nil), &lastBody)
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryTypeCompetitorLookup,
		Filters: Filters{
			Industry:          "plumbing",
			City:              "Phoenix",
			ExcludeBusinessID: "biz-001",
		},
	})

	assert.NoError(t, err)
	assert.Empty(t, output.Entries)
	assert.Contains(t, string(lastBody), "must_not")
	assert.Contains(t, string(lastBody), "biz-001")
}

func TestHandler_Execute_FullTextQueryBody(t *testing.T) {
	var lastBody []byte
	server := esServer(t, http.StatusOK, esResponse(nil), &lastBody)
	defer server.Close()

	handler := createHandler(t, server.URL)
	_, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryTypeBusinessFullText,
		Filters:   Filters{Text: "emergency drain cleaning"},
	})

	assert.NoError(t, err)
	assert.Contains(t, string(lastBody), "multi_match")
	assert.Contains(t, string(lastBody), "emergency drain cleaning")
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_UnknownQueryType(t *testing.T) {
	server := esServer(t, http.StatusOK, esResponse(nil), nil)
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryType("business_by_vibes"),
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrInvalidFilterFormat)
}

func TestHandler_Execute_MissingRequiredFilter(t *testing.T) {
	server := esServer(t, http.StatusOK, esResponse(nil), nil)
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryTypeBusinessByIndustry,
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrInvalidFilterFormat)
}

func TestHandler_Execute_IndexNotFound(t *testing.T) {
	server := esServer(t, http.StatusNotFound, map[string]interface{}{
		"error": map[string]interface{}{"type": "index_not_found_exception"},
	}, nil)
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryTypeBusinessByIndustry,
		Filters:   Filters{Industry: "hvac"},
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrIndexNotFound)
}

func TestHandler_Execute_ServerError(t *testing.T) {
	server := esServer(t, http.StatusInternalServerError, map[string]interface{}{
		"error": map[string]interface{}{"type": "search_phase_execution_exception"},
	}, nil)
	defer server.Close()

	handler := createHandler(t, server.URL)
	output, err := handler.Execute(context.Background(), &Input{
		QueryType: models.QueryTypeBusinessByLocation,
		Filters:   Filters{City: "Phoenix"},
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSearchQueryFailed)
}
