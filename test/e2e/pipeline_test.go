// test/e2e/pipeline_test.go
package e2e

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/siteplan"
	"sitegen-workers/pkg/registry"

	fbb "sitegen-workers/internal/workers/data-access/fetch-business-bundle"
	gsq "sitegen-workers/internal/workers/sitegen/generate-smart-questions"
	rps "sitegen-workers/internal/workers/sitegen/recommend-page-sections"
	sbd "sitegen-workers/internal/workers/sitegen/score-business-data"
	spt "sitegen-workers/internal/workers/sitegen/select-page-template"
	ssp "sitegen-workers/internal/workers/sitegen/store-site-plan"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registryPath = "../../configs/template-registry.json"

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

func newTestRedis(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func loadTestRegistry(t *testing.T) *registry.TemplateRegistry {
	reg, err := registry.LoadRegistry(registryPath)
	require.NoError(t, err)
	require.NotEmpty(t, reg.Templates)
	return reg
}

func seedListing(t *testing.T, rdb *redis.Client, businessID string, listing *siteplan.ListingProfile) {
	data, err := json.Marshal(listing)
	require.NoError(t, err)
	require.NoError(t, rdb.Set(context.Background(), "listing:profile:"+businessID, data, time.Minute).Err())
}

func richListing() *siteplan.ListingProfile {
	return &siteplan.ListingProfile{
		Name:       "Valley Plumbing Pros",
		Categories: []string{"plumbing"},
		Phone:      "+14805550142",
		Description: "Family-owned plumbing company serving the Phoenix metro since 2012. " +
			"We handle drain cleaning, water heater replacement, trenchless sewer repair and " +
			"24/7 emergency calls, with upfront pricing and a workmanship guarantee on every job.",
		Hours: []siteplan.HoursPeriod{
			{Day: "monday", Open: "07:00", Close: "18:00"},
			{Day: "tuesday", Open: "07:00", Close: "18:00"},
		},
		Photos: []siteplan.Photo{
			{URL: "https://cdn.example.com/p1.jpg"}, {URL: "https://cdn.example.com/p2.jpg"},
			{URL: "https://cdn.example.com/p3.jpg"}, {URL: "https://cdn.example.com/p4.jpg"},
			{URL: "https://cdn.example.com/p5.jpg"}, {URL: "https://cdn.example.com/p6.jpg"},
		},
		Reviews:     &siteplan.ReviewAggregate{Rating: 4.8, Count: 120},
		Services:    []string{"drain-cleaning", "water-heater", "sewer-repair"},
		ServiceArea: []string{"Phoenix", "Tempe", "Mesa"},
	}
}

func richPlaces() *siteplan.PlacesResult {
	return &siteplan.PlacesResult{
		Reviews: &siteplan.PlacesReviews{
			Rating:     4.7,
			Total:      300,
			Highlights: []string{"fast response", "fair pricing", "clean work", "friendly techs"},
		},
		Photos: []siteplan.Photo{
			{URL: "https://cdn.example.com/g1.jpg"}, {URL: "https://cdn.example.com/g2.jpg"},
			{URL: "https://cdn.example.com/g3.jpg"}, {URL: "https://cdn.example.com/g4.jpg"},
			{URL: "https://cdn.example.com/g5.jpg"},
		},
	}
}

func richSnippets() *siteplan.SearchSnippets {
	return &siteplan.SearchSnippets{
		PeopleAlsoAsk: []siteplan.QAPair{
			{Question: "How much does drain cleaning cost in Phoenix?"},
			{Question: "Do plumbers offer free estimates?"},
		},
		CompetitorServices: []string{"hydro-jetting", "leak repair"},
	}
}

func manualAnswerColumns() []string {
	return []string{"years_in_business", "certifications", "awards", "specializations", "team_size", "services", "service_areas"}
}

// ==========================
// Pipeline Tests
// ==========================

// TestPipeline_RichBusiness walks a fully populated business through every
// worker between data collection and persistence, the same order the BPMN
// process executes them in.
func TestPipeline_RichBusiness(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT years_in_business").
		WithArgs("biz-e2e-001").
		WillReturnRows(sqlmock.NewRows(manualAnswerColumns()).
			AddRow(12,
				[]byte(`["Licensed Master Plumber"]`),
				[]byte(`["Best of Phoenix 2024"]`),
				[]byte(`["trenchless sewer repair"]`),
				6,
				[]byte(`["drain-cleaning","water-heater"]`),
				[]byte(`["Phoenix","Tempe"]`)))

	rdb := newTestRedis(t)
	seedListing(t, rdb, "biz-e2e-001", richListing())

	// Stage 1: assemble the bundle.
	bundleOut, err := fbb.NewHandler(fbb.LoadConfig(), db, rdb, log).Execute(ctx, &fbb.Input{
		BusinessID: "biz-e2e-001",
		Places:     richPlaces(),
		Snippets:   richSnippets(),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"listing", "places", "snippets", "manual"}, bundleOut.Sources)

	// Stage 2: score it.
	scoreOut, err := sbd.NewHandler(sbd.LoadConfig(), log).Execute(ctx, &sbd.Input{
		BusinessID: "biz-e2e-001",
		Industry:   "plumbing",
		Bundle:     bundleOut.Bundle,
	})
	require.NoError(t, err)
	assert.Equal(t, siteplan.TierPremium, scoreOut.ContentTier)
	assert.Empty(t, scoreOut.DataScore.MissingCritical)
	assert.GreaterOrEqual(t, scoreOut.DataScore.Total, 70)

	// Stage 3: owner questions.
	questionsOut, err := gsq.NewHandler(gsq.LoadConfig(), log).Execute(ctx, &gsq.Input{
		BusinessID: "biz-e2e-001",
		Industry:   "plumbing",
		DataScore:  scoreOut.DataScore,
		Bundle:     bundleOut.Bundle,
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(questionsOut.Questions), 5)

	// Stage 4: section plan.
	sectionsOut, err := rps.NewHandler(rps.LoadConfig(), log).Execute(ctx, &rps.Input{
		BusinessID: "biz-e2e-001",
		Industry:   "plumbing",
		DataScore:  scoreOut.DataScore,
		Bundle:     bundleOut.Bundle,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sectionsOut.Sections)

	// Stage 5: template selection against the shipped registry.
	templateOut, err := spt.NewHandler(spt.LoadConfig(), loadTestRegistry(t), log).Execute(ctx, &spt.Input{
		BusinessID:  "biz-e2e-001",
		Industry:    "plumbing",
		ContentTier: scoreOut.ContentTier,
		Sections:    sectionsOut.Sections,
	})
	require.NoError(t, err)
	assert.Equal(t, "trades-premium-01", templateOut.TemplateID)

	// Stage 6: persist the plan.
	mock.ExpectExec("INSERT INTO site_plans").
		WillReturnResult(sqlmock.NewResult(1, 1))

	storeOut, err := ssp.NewHandler(ssp.LoadConfig(), db, log).Execute(ctx, &ssp.Input{
		TenantID:   "tenant-e2e-001",
		BusinessID: "biz-e2e-001",
		Industry:   "plumbing",
		TemplateID: templateOut.TemplateID,
		DataScore:  scoreOut.DataScore,
		Questions:  questionsOut.Questions,
		Sections:   sectionsOut.Sections,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, storeOut.PlanID)
	if len(questionsOut.Questions) > 0 {
		assert.Equal(t, "pending_answers", storeOut.Status)
	} else {
		assert.Equal(t, "ready", storeOut.Status)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestPipeline_SparseBusiness runs the same chain for a business the platform
// knows nothing about. Scoring must degrade to minimal, questions must be
// asked, and template selection must land on the wildcard fallback.
func TestPipeline_SparseBusiness(t *testing.T) {
	ctx := context.Background()
	log := newTestLogger(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT years_in_business").
		WithArgs("biz-e2e-002").
		WillReturnError(sql.ErrNoRows)

	bundleOut, err := fbb.NewHandler(fbb.LoadConfig(), db, newTestRedis(t), log).Execute(ctx, &fbb.Input{
		BusinessID: "biz-e2e-002",
	})
	require.NoError(t, err)
	assert.Empty(t, bundleOut.Sources)

	scoreOut, err := sbd.NewHandler(sbd.LoadConfig(), log).Execute(ctx, &sbd.Input{
		BusinessID: "biz-e2e-002",
		Industry:   "taxidermy",
		Bundle:     bundleOut.Bundle,
	})
	require.NoError(t, err)
	assert.Equal(t, siteplan.TierMinimal, scoreOut.ContentTier)
	assert.Contains(t, scoreOut.DataScore.MissingCritical, siteplan.FieldBusinessName)
	assert.Contains(t, scoreOut.DataScore.MissingCritical, siteplan.FieldPhotos)

	questionsOut, err := gsq.NewHandler(gsq.LoadConfig(), log).Execute(ctx, &gsq.Input{
		BusinessID: "biz-e2e-002",
		Industry:   "taxidermy",
		DataScore:  scoreOut.DataScore,
		Bundle:     bundleOut.Bundle,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, questionsOut.Questions)
	assert.LessOrEqual(t, len(questionsOut.Questions), 5)
	for i := 1; i < len(questionsOut.Questions); i++ {
		assert.LessOrEqual(t, questionsOut.Questions[i-1].Priority, questionsOut.Questions[i].Priority)
	}

	sectionsOut, err := rps.NewHandler(rps.LoadConfig(), log).Execute(ctx, &rps.Input{
		BusinessID: "biz-e2e-002",
		Industry:   "taxidermy",
		DataScore:  scoreOut.DataScore,
		Bundle:     bundleOut.Bundle,
	})
	require.NoError(t, err)
	for _, rec := range sectionsOut.Sections {
		assert.Equal(t, siteplan.PriorityRequired, rec.Priority)
	}

	templateOut, err := spt.NewHandler(spt.LoadConfig(), loadTestRegistry(t), log).Execute(ctx, &spt.Input{
		BusinessID:  "biz-e2e-002",
		Industry:    "taxidermy",
		ContentTier: scoreOut.ContentTier,
		Sections:    sectionsOut.Sections,
	})
	require.NoError(t, err)
	assert.Equal(t, "general-minimal-01", templateOut.TemplateID)

	mock.ExpectExec("INSERT INTO site_plans").
		WillReturnResult(sqlmock.NewResult(1, 1))

	storeOut, err := ssp.NewHandler(ssp.LoadConfig(), db, log).Execute(ctx, &ssp.Input{
		TenantID:   "tenant-e2e-002",
		BusinessID: "biz-e2e-002",
		Industry:   "taxidermy",
		TemplateID: templateOut.TemplateID,
		DataScore:  scoreOut.DataScore,
		Questions:  questionsOut.Questions,
		Sections:   sectionsOut.Sections,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending_answers", storeOut.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Registry Seed Tests
// ==========================

func TestShippedRegistryCoversEveryTier(t *testing.T) {
	reg := loadTestRegistry(t)

	for _, tier := range []string{"premium", "standard", "minimal"} {
		assert.NotNilf(t, reg.FindTemplate("general", tier), "no wildcard template for tier %s", tier)
	}

	for _, industry := range []string{"plumbing", "hvac", "electrical", "landscaping", "roofing", "painting", "cleaning"} {
		for _, tier := range []string{"premium", "standard", "minimal"} {
			assert.NotNilf(t, reg.FindTemplate(industry, tier), "no template for %s at tier %s", industry, tier)
		}
	}
}
