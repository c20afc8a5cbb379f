// internal/workers/sitegen/generate-smart-questions/handler_test.go
package generatesmartquestions

import (
	"context"
	"testing"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"

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

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_EmptyBundle(t *testing.T) {
	handler := NewHandler(LoadConfig(), newTestLogger(t))

	bundle := &siteplan.BusinessDataBundle{}
	output, err := handler.Execute(context.Background(), &Input{
		BusinessID: "biz-001",
		Industry:   "landscaping",
		DataScore:  siteplan.Score(bundle),
		Bundle:     bundle,
	})

	assert.NoError(t, err)
	assert.Len(t, output.Questions, 5)
	assert.Equal(t, len(output.Questions), output.QuestionCount)
	assert.Equal(t, "services", output.Questions[0].ID)
}

func TestHandler_Execute_UnknownIndustryFallsBack(t *testing.T) {
	handler := NewHandler(LoadConfig(), newTestLogger(t))

	bundle := &siteplan.BusinessDataBundle{}
	output, err := handler.Execute(context.Background(), &Input{
		BusinessID: "biz-002",
		Industry:   "taxidermy",
		DataScore:  siteplan.Score(bundle),
		Bundle:     bundle,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.Questions)
	// No vocabulary for unknown industries, but the question is still asked.
	assert.Equal(t, "services", output.Questions[0].ID)
	assert.Empty(t, output.Questions[0].Options)
}

func TestHandler_Execute_RichDataAsksFewer(t *testing.T) {
	handler := NewHandler(LoadConfig(), newTestLogger(t))

	bundle := &siteplan.BusinessDataBundle{
		Listing: &siteplan.ListingProfile{Services: []string{"ac-repair"}},
		Manual: &siteplan.ManualAnswers{
			YearsInBusiness: 20,
			Certifications:  []string{"NATE Certified"},
		},
	}
	output, err := handler.Execute(context.Background(), &Input{
		BusinessID: "biz-003",
		Industry:   "hvac",
		DataScore:  siteplan.DataScore{Total: 75, Differentiation: 15},
		Bundle:     bundle,
	})

	assert.NoError(t, err)
	assert.Empty(t, output.Questions)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_MissingBundle(t *testing.T) {
	handler := NewHandler(LoadConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{BusinessID: "biz-004"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrQuestionGenFailed)
}
