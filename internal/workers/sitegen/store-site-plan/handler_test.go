// internal/workers/sitegen/store-site-plan/handler_test.go
package storesiteplan

import (
	"context"
	"testing"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func createTestInput() *Input {
	return &Input{
		TenantID:   "tenant-001",
		BusinessID: "biz-001",
		Industry:   "landscaping",
		TemplateID: "trades-standard-01",
		DataScore:  siteplan.DataScore{Total: 55, ContentTier: siteplan.TierStandard},
		Questions: []siteplan.SmartQuestion{
			{ID: "services", Priority: 1, Category: siteplan.CategoryCritical},
		},
		Sections: []siteplan.SectionRecommendation{
			{Section: siteplan.SectionHero, Priority: siteplan.PriorityRequired, DataAvailable: true},
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO site_plans").
		WillReturnResult(sqlmock.NewResult(1, 1))

	handler := NewHandler(LoadConfig(), db, newTestLogger(t))
	output, err := handler.Execute(context.Background(), createTestInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.PlanID)
	assert.Equal(t, "pending_answers", output.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_NoQuestionsMeansReady(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO site_plans").
		WillReturnResult(sqlmock.NewResult(1, 1))

	input := createTestInput()
	input.Questions = nil

	handler := NewHandler(LoadConfig(), db, newTestLogger(t))
	output, err := handler.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "ready", output.Status)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_DuplicatePlan(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO site_plans").
		WillReturnError(&pq.Error{Code: "23505"})

	handler := NewHandler(LoadConfig(), db, newTestLogger(t))
	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestHandler_Execute_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO site_plans").
		WillReturnError(assert.AnError)

	handler := NewHandler(LoadConfig(), db, newTestLogger(t))
	output, err := handler.Execute(context.Background(), createTestInput())

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrInsertFailed)
}

func TestHandler_Execute_MissingBusinessID(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	input := createTestInput()
	input.BusinessID = ""

	handler := NewHandler(LoadConfig(), db, newTestLogger(t))
	output, err := handler.Execute(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
}
