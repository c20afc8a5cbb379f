// internal/workers/infrastructure/validate-tenant-subscription/handler_test.go
package validatetenantsubscription

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
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

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func subscriptionColumns() []string {
	return []string{"id", "tenant_id", "plan", "status", "expires_at", "created_at"}
}

func createHandler(t *testing.T, db *sql.DB) *Handler {
	handler := NewHandler(LoadConfig(), db, newTestLogger(t))
	handler.now = func() time.Time { return testNow }
	return handler
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_ActiveSubscription(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expires := testNow.Add(30 * 24 * time.Hour)
	mock.ExpectQuery("SELECT id, tenant_id, plan").
		WithArgs("tenant-001").
		WillReturnRows(sqlmock.NewRows(subscriptionColumns()).
			AddRow("sub-1", "tenant-001", "professional", "active", expires, testNow.Add(-time.Hour)))

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{TenantID: "tenant-001"})

	assert.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, models.PlanProfessional, output.Plan)
	assert.Equal(t, expires.Format(time.RFC3339), output.ExpiresAt)
}

func TestHandler_Execute_ActiveWithoutExpiry(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, tenant_id, plan").
		WithArgs("tenant-002").
		WillReturnRows(sqlmock.NewRows(subscriptionColumns()).
			AddRow("sub-2", "tenant-002", "enterprise", "active", nil, testNow.Add(-time.Hour)))

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{TenantID: "tenant-002"})

	assert.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, models.PlanEnterprise, output.Plan)
	assert.Empty(t, output.ExpiresAt)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_ExpiredSubscription(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	expired := testNow.Add(-24 * time.Hour)
	mock.ExpectQuery("SELECT id, tenant_id, plan").
		WithArgs("tenant-003").
		WillReturnRows(sqlmock.NewRows(subscriptionColumns()).
			AddRow("sub-3", "tenant-003", "starter", "active", expired, testNow.Add(-time.Hour)))

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{TenantID: "tenant-003"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSubscriptionExpired)
}

func TestHandler_Execute_CancelledSubscription(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, tenant_id, plan").
		WithArgs("tenant-004").
		WillReturnRows(sqlmock.NewRows(subscriptionColumns()).
			AddRow("sub-4", "tenant-004", "starter", "cancelled", nil, testNow.Add(-time.Hour)))

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{TenantID: "tenant-004"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSubscriptionInvalid)
}

func TestHandler_Execute_NoSubscription(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, tenant_id, plan").
		WithArgs("tenant-005").
		WillReturnError(sql.ErrNoRows)

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{TenantID: "tenant-005"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSubscriptionInvalid)
}

func TestHandler_Execute_QueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, tenant_id, plan").
		WithArgs("tenant-006").
		WillReturnError(assert.AnError)

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{TenantID: "tenant-006"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSubscriptionCheckFailed)
}

func TestHandler_Execute_MissingTenantID(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	handler := createHandler(t, db)
	output, err := handler.Execute(context.Background(), &Input{})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrSubscriptionInvalid)
}
