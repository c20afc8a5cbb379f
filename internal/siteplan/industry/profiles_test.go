// internal/siteplan/industry/profiles_test.go
package industry

import (
	"testing"

	"sitegen-workers/internal/siteplan"

	"github.com/stretchr/testify/assert"
)

func TestProfileFor_KnownIndustries(t *testing.T) {
	for _, key := range Keys() {
		profile := ProfileFor(key)
		assert.Equal(t, key, profile.Key)
		assert.NotEmpty(t, profile.CriticalSections, "industry %s", key)
		assert.Contains(t, profile.CriticalSections, siteplan.SectionHero)
		assert.Contains(t, profile.CriticalSections, siteplan.SectionContact)
	}
}

func TestProfileFor_FallsBackToGeneral(t *testing.T) {
	tests := []string{"", "nonexistent-industry-xyz", "LANDSCAPING ", "  Hvac", "crypto-mining"}

	for _, key := range tests {
		profile := ProfileFor(key)
		switch key {
		case "LANDSCAPING ":
			assert.Equal(t, "landscaping", profile.Key)
		case "  Hvac":
			assert.Equal(t, "hvac", profile.Key)
		default:
			assert.Equal(t, GeneralKey, profile.Key, "key %q", key)
		}
	}
}

func TestProfileFor_GeneralIsNeutral(t *testing.T) {
	profile := ProfileFor(GeneralKey)

	assert.Empty(t, profile.ServiceCategories)
	assert.Empty(t, profile.CommonCertifications)
	assert.Empty(t, profile.UrgencyTriggers)
	assert.NotEmpty(t, profile.Conversion.PrimaryCTA)
}

func TestProfileFor_PhoneFirstVerticals(t *testing.T) {
	// Emergency trades convert over the phone; project trades over forms.
	assert.Equal(t, "phone", ProfileFor("plumbing").PreferredContact)
	assert.Equal(t, "phone", ProfileFor("hvac").PreferredContact)
	assert.Equal(t, "form", ProfileFor("landscaping").PreferredContact)
}

func TestServiceOptions(t *testing.T) {
	options := ServiceOptions("landscaping")
	assert.NotEmpty(t, options)
	for _, opt := range options {
		assert.NotEmpty(t, opt.Value)
		assert.NotEmpty(t, opt.Label)
	}

	assert.Empty(t, ServiceOptions("nonexistent-industry-xyz"))
	assert.Empty(t, ServiceOptions(GeneralKey))

	// Same normalization as ProfileFor.
	assert.Equal(t, ServiceOptions("hvac"), ServiceOptions(" HVAC "))
}

func TestServiceOptions_ReturnsCopy(t *testing.T) {
	first := ServiceOptions("hvac")
	first[0].Label = "mutated"

	second := ServiceOptions("hvac")
	assert.NotEqual(t, "mutated", second[0].Label)
}
