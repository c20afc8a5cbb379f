// internal/siteplan/scoring_test.go
package siteplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createCompleteListing() *ListingProfile {
	return &ListingProfile{
		Name:        "Test Phoenix Landscaping",
		Categories:  []string{"Landscaper", "Lawn Care Service"},
		Phone:       "+1 602 555 0147",
		Description: strings.Repeat("Full service landscaping for the Phoenix metro area. ", 5),
		Hours: []HoursPeriod{
			{Day: "monday", Open: "08:00", Close: "17:00"},
			{Day: "tuesday", Open: "08:00", Close: "17:00"},
			{Day: "wednesday", Open: "08:00", Close: "17:00"},
			{Day: "thursday", Open: "08:00", Close: "17:00"},
			{Day: "friday", Open: "08:00", Close: "17:00"},
		},
		Photos:   makePhotos(12),
		Reviews:  &ReviewAggregate{Rating: 4.8, Count: 127},
		Services: []string{"lawn-mowing", "irrigation"},
	}
}

func makePhotos(n int) []Photo {
	photos := make([]Photo, n)
	for i := range photos {
		photos[i] = Photo{URL: "https://cdn.example.com/p.jpg"}
	}
	return photos
}

func subScores(score DataScore) []int {
	return []int{score.BasicInfo, score.Content, score.Visuals, score.Trust, score.Differentiation}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestScore_EmptyBundle(t *testing.T) {
	score := Score(&BusinessDataBundle{})

	assert.Equal(t, 0, score.Total)
	assert.Equal(t, TierMinimal, score.ContentTier)
	assert.Contains(t, score.MissingCritical, FieldBusinessName)
	assert.Contains(t, score.MissingCritical, FieldBusinessCategory)
	assert.Contains(t, score.MissingCritical, FieldPhoneNumber)
	assert.Contains(t, score.MissingCritical, FieldPhotos)
}

func TestScore_NilBundle(t *testing.T) {
	score := Score(nil)

	assert.Equal(t, 0, score.Total)
	assert.Equal(t, TierMinimal, score.ContentTier)
}

func TestScore_TotalIsSumAndBounded(t *testing.T) {
	bundles := []*BusinessDataBundle{
		{},
		{Listing: createCompleteListing()},
		{
			Listing: createCompleteListing(),
			Places: &PlacesResult{
				Reviews: &PlacesReviews{Rating: 4.9, Total: 300, Highlights: []string{"a", "b", "c", "d"}},
				Photos:  makePhotos(6),
			},
			Snippets: &SearchSnippets{PeopleAlsoAsk: []QAPair{{Question: "q", Answer: "a"}}},
			Manual: &ManualAnswers{
				YearsInBusiness: 12,
				Certifications:  []string{"ICPI Certified"},
				Awards:          []string{"Best of 2024"},
				Specializations: []string{"xeriscaping"},
			},
		},
	}

	for _, bundle := range bundles {
		score := Score(bundle)

		sum := 0
		for _, sub := range subScores(score) {
			assert.GreaterOrEqual(t, sub, 0)
			assert.LessOrEqual(t, sub, 20)
			sum += sub
		}
		assert.Equal(t, sum, score.Total)
		assert.GreaterOrEqual(t, score.Total, 0)
		assert.LessOrEqual(t, score.Total, 100)
	}
}

func TestScore_LandscapingWithoutPhotos(t *testing.T) {
	listing := createCompleteListing()
	listing.Photos = nil
	listing.Reviews = nil
	bundle := &BusinessDataBundle{Listing: listing}

	score := Score(bundle)

	assert.Contains(t, score.MissingCritical, FieldPhotos)
	assert.NotContains(t, score.MissingCritical, FieldBusinessName)
	assert.Equal(t, 20, score.BasicInfo)
	assert.Equal(t, 0, score.Visuals)
	assert.Equal(t, 0, score.Trust)
	assert.Equal(t, 0, score.Differentiation)
	// Basic info maxed, long description, nothing else.
	assert.True(t, score.Total >= 25 && score.Total <= 35, "total %d outside expected band", score.Total)
}

func TestScore_HVACHighTrust(t *testing.T) {
	bundle := &BusinessDataBundle{
		Listing: &ListingProfile{
			Name:       "Desert Air HVAC",
			Categories: []string{"HVAC Contractor"},
			Phone:      "+1 480 555 0110",
			Hours:      []HoursPeriod{{Day: "monday", Open: "07:00", Close: "18:00"}},
			Photos:     makePhotos(10),
			Reviews:    &ReviewAggregate{Rating: 4.8, Count: 127},
		},
	}

	score := Score(bundle)

	assert.Equal(t, 15, score.Trust)
	assert.Equal(t, 20, score.Visuals)
	assert.NotEqual(t, TierMinimal, score.ContentTier)
}

// ==========================
// Unit Tests
// ==========================

func TestScoreBasicInfo(t *testing.T) {
	tests := []struct {
		name            string
		listing         *ListingProfile
		expectedScore   int
		expectedMissing []string
	}{
		{
			name:            "nil listing misses everything",
			listing:         nil,
			expectedScore:   0,
			expectedMissing: []string{FieldBusinessName, FieldBusinessCategory, FieldPhoneNumber},
		},
		{
			name: "phone via attributes map",
			listing: &ListingProfile{
				Name:       "Acme",
				Categories: []string{"Plumber"},
				Attributes: map[string]string{"phone": "+1 555 000 1111"},
			},
			expectedScore:   15,
			expectedMissing: []string{},
		},
		{
			name: "hours only",
			listing: &ListingProfile{
				Hours: []HoursPeriod{{Day: "monday"}},
			},
			expectedScore:   5,
			expectedMissing: []string{FieldBusinessName, FieldBusinessCategory, FieldPhoneNumber},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, missing := scoreBasicInfo(tt.listing)
			assert.Equal(t, tt.expectedScore, score)
			assert.Equal(t, tt.expectedMissing, missing)
		})
	}
}

func TestScoreContent_DescriptionTiersAreExclusive(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		expectedScore int
	}{
		{"short description", strings.Repeat("x", 80), 0},
		{"medium description", strings.Repeat("x", 150), 5},
		{"boundary 200 stays in medium tier", strings.Repeat("x", 200), 5},
		{"long description", strings.Repeat("x", 201), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scoreContent(&ListingProfile{Description: tt.description}, nil, nil)
			assert.Equal(t, tt.expectedScore, score)
		})
	}
}

func TestScoreVisuals_ThresholdsAreCumulative(t *testing.T) {
	tests := []struct {
		name           string
		listingPhotos  int
		placesPhotos   int
		expectedScore  int
		expectedFlag   bool
	}{
		{"no photos", 0, 0, 0, true},
		{"one photo", 1, 0, 5, false},
		{"four photos", 2, 2, 15, false},
		{"twelve photos", 12, 0, 20, false},
		{"places only still flags listing", 0, 12, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, missing := scoreVisuals(
				&ListingProfile{Photos: makePhotos(tt.listingPhotos)},
				&PlacesResult{Photos: makePhotos(tt.placesPhotos)},
			)
			assert.Equal(t, tt.expectedScore, score)
			assert.Equal(t, tt.expectedFlag, missing)
		})
	}
}

func TestScoreTrust_TiersAreExclusive(t *testing.T) {
	tests := []struct {
		name          string
		rating        float64
		count         int
		expectedScore int
	}{
		{"top tier", 4.8, 127, 15},
		{"top rating low count", 4.9, 12, 10},
		{"mid tier", 4.2, 15, 10},
		{"low tier", 3.6, 6, 5},
		{"below every tier", 3.0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listing := &ListingProfile{Reviews: &ReviewAggregate{Rating: tt.rating, Count: tt.count}}
			assert.Equal(t, tt.expectedScore, scoreTrust(listing, nil, nil))
		})
	}
}

func TestScoreTrust_PlacesFallbackAndCertBonus(t *testing.T) {
	places := &PlacesResult{Reviews: &PlacesReviews{Rating: 4.6, Total: 40}}
	manual := &ManualAnswers{Certifications: []string{"NATE Certified"}}

	assert.Equal(t, 15, scoreTrust(nil, places, nil))
	assert.Equal(t, 20, scoreTrust(nil, places, manual))
	assert.Equal(t, 5, scoreTrust(nil, nil, manual))
}

func TestScoreDifferentiation(t *testing.T) {
	tests := []struct {
		name          string
		manual        *ManualAnswers
		places        *PlacesResult
		expectedScore int
	}{
		{"nothing", nil, nil, 0},
		{"awards only", &ManualAnswers{Awards: []string{"Best of 2024"}}, nil, 10},
		{"ten years", &ManualAnswers{YearsInBusiness: 10}, nil, 5},
		{"five years", &ManualAnswers{YearsInBusiness: 7}, nil, 3},
		{
			"highlights over threshold",
			nil,
			&PlacesResult{Reviews: &PlacesReviews{Highlights: []string{"a", "b", "c", "d"}}},
			5,
		},
		{
			"everything",
			&ManualAnswers{Awards: []string{"x"}, YearsInBusiness: 15},
			&PlacesResult{Reviews: &PlacesReviews{Highlights: []string{"a", "b", "c", "d"}}},
			20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedScore, scoreDifferentiation(tt.manual, tt.places))
		})
	}
}

// ==========================
// Property Tests
// ==========================

func TestScore_Monotonicity(t *testing.T) {
	// Each step adds a previously-absent piece of data; no sub-score may drop.
	steps := []struct {
		name  string
		apply func(b *BusinessDataBundle)
	}{
		{"add name", func(b *BusinessDataBundle) { b.Listing = &ListingProfile{Name: "Acme"} }},
		{"add category", func(b *BusinessDataBundle) { b.Listing.Categories = []string{"Plumber"} }},
		{"add phone", func(b *BusinessDataBundle) { b.Listing.Phone = "+1 555 000 1111" }},
		{"add hours", func(b *BusinessDataBundle) { b.Listing.Hours = []HoursPeriod{{Day: "monday"}} }},
		{"add description", func(b *BusinessDataBundle) { b.Listing.Description = strings.Repeat("x", 250) }},
		{"add photos", func(b *BusinessDataBundle) { b.Listing.Photos = makePhotos(4) }},
		{"add reviews", func(b *BusinessDataBundle) { b.Listing.Reviews = &ReviewAggregate{Rating: 4.7, Count: 30} }},
		{"add places photos", func(b *BusinessDataBundle) { b.Places = &PlacesResult{Photos: makePhotos(6)} }},
		{"add snippets", func(b *BusinessDataBundle) {
			b.Snippets = &SearchSnippets{PeopleAlsoAsk: []QAPair{{Question: "q", Answer: "a"}}}
		}},
		{"add manual answers", func(b *BusinessDataBundle) {
			b.Manual = &ManualAnswers{YearsInBusiness: 12, Certifications: []string{"c"}, Awards: []string{"a"}, Specializations: []string{"s"}}
		}},
	}

	bundle := &BusinessDataBundle{}
	previous := Score(bundle)

	for _, step := range steps {
		step.apply(bundle)
		current := Score(bundle)

		prevSubs := subScores(previous)
		currSubs := subScores(current)
		for i := range currSubs {
			assert.GreaterOrEqual(t, currSubs[i], prevSubs[i], "sub-score %d dropped after %q", i, step.name)
		}
		previous = current
	}

	assert.Equal(t, TierPremium, previous.ContentTier)
}

func TestScore_Idempotent(t *testing.T) {
	bundle := &BusinessDataBundle{Listing: createCompleteListing()}

	first := Score(bundle)
	second := Score(bundle)

	assert.Equal(t, first, second)
}
