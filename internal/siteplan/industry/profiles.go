// internal/siteplan/industry/profiles.go
package industry

import (
	"strings"

	"sitegen-workers/internal/siteplan"
)

// GeneralKey is the fallback vertical used for any unrecognized industry.
const GeneralKey = "general"

// ConversionCopy holds the vertical's conversion-oriented phrases used by the
// page generator.
type ConversionCopy struct {
	PrimaryCTA      string   `json:"primaryCta"`
	SecondaryCTA    string   `json:"secondaryCta"`
	UrgencyTriggers []string `json:"urgencyTriggers"`
	TrustElements   []string `json:"trustElements"`
}

// Profile is the static per-vertical configuration. Profiles are built once at
// init and never mutated; callers must treat them as read-only.
type Profile struct {
	Key                  string                 `json:"key"`
	PreferredContact     string                 `json:"preferredContact"` // "phone" or "form"
	UrgencyTriggers      []string               `json:"urgencyTriggers"`
	CriticalSections     []siteplan.SectionType `json:"criticalSections"`
	OptionalSections     []siteplan.SectionType `json:"optionalSections"`
	MaxServices          int                    `json:"maxServices"`
	ServiceCategories    []string               `json:"serviceCategories"`
	SEOKeywords          map[string][]string    `json:"seoKeywords"`
	Conversion           ConversionCopy         `json:"conversion"`
	CommonCertifications []string               `json:"commonCertifications"`
}

var defaultCriticalSections = []siteplan.SectionType{
	siteplan.SectionHero,
	siteplan.SectionServices,
	siteplan.SectionContact,
}

var profiles = map[string]Profile{
	"landscaping": {
		Key:              "landscaping",
		PreferredContact: "form",
		UrgencyTriggers:  []string{"spring booking", "seasonal cleanup"},
		CriticalSections: append(defaultCriticalSections, siteplan.SectionServiceAreas),
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionGallery, siteplan.SectionAbout, siteplan.SectionTestimonials,
		},
		MaxServices: 8,
		ServiceCategories: []string{
			"lawn-care", "landscape-design", "hardscaping", "irrigation",
			"tree-service", "seasonal-cleanup", "snow-removal", "mulching",
		},
		SEOKeywords: map[string][]string{
			"service":  {"lawn care", "landscaping services", "landscape design"},
			"local":    {"landscaper near me", "local lawn service"},
			"seasonal": {"spring cleanup", "fall cleanup", "snow removal"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Get a Free Quote",
			SecondaryCTA:    "See Our Work",
			UrgencyTriggers: []string{"Book before the season fills up"},
			TrustElements:   []string{"Licensed & Insured", "Satisfaction Guaranteed"},
		},
		CommonCertifications: []string{
			"ICPI Certified", "NALP Certified", "Licensed Pesticide Applicator",
		},
	},
	"hvac": {
		Key:              "hvac",
		PreferredContact: "phone",
		UrgencyTriggers:  []string{"no heat", "no cooling", "emergency repair"},
		CriticalSections: append(defaultCriticalSections, siteplan.SectionServiceAreas),
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionAbout, siteplan.SectionTestimonials, siteplan.SectionTrustBar,
		},
		MaxServices: 6,
		ServiceCategories: []string{
			"ac-repair", "ac-installation", "furnace-repair", "furnace-installation",
			"duct-cleaning", "maintenance-plans", "heat-pumps",
		},
		SEOKeywords: map[string][]string{
			"service":   {"hvac repair", "air conditioning repair", "furnace installation"},
			"local":     {"hvac company near me", "emergency ac repair"},
			"emergency": {"24/7 hvac", "emergency furnace repair"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Call Now",
			SecondaryCTA:    "Schedule Service",
			UrgencyTriggers: []string{"Same-day service available"},
			TrustElements:   []string{"NATE Certified Technicians", "Upfront Pricing"},
		},
		CommonCertifications: []string{
			"NATE Certified", "EPA 608 Certified", "ACCA Member",
		},
	},
	"plumbing": {
		Key:              "plumbing",
		PreferredContact: "phone",
		UrgencyTriggers:  []string{"burst pipe", "water leak", "clogged drain"},
		CriticalSections: append(defaultCriticalSections, siteplan.SectionServiceAreas),
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionAbout, siteplan.SectionTestimonials, siteplan.SectionTrustBar,
		},
		MaxServices: 6,
		ServiceCategories: []string{
			"drain-cleaning", "water-heater", "leak-repair", "pipe-replacement",
			"fixture-installation", "sewer-repair", "emergency-plumbing",
		},
		SEOKeywords: map[string][]string{
			"service":   {"plumber", "plumbing repair", "water heater installation"},
			"local":     {"plumber near me", "local plumbing company"},
			"emergency": {"24 hour plumber", "emergency plumbing"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Call for Emergency Service",
			SecondaryCTA:    "Request an Estimate",
			UrgencyTriggers: []string{"Emergency? We answer 24/7"},
			TrustElements:   []string{"Licensed Master Plumber", "No Overtime Charges"},
		},
		CommonCertifications: []string{
			"Master Plumber License", "Journeyman Plumber License", "Backflow Certified",
		},
	},
	"electrical": {
		Key:              "electrical",
		PreferredContact: "phone",
		UrgencyTriggers:  []string{"power outage", "electrical fault"},
		CriticalSections: defaultCriticalSections,
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionAbout, siteplan.SectionTestimonials,
		},
		MaxServices: 6,
		ServiceCategories: []string{
			"panel-upgrades", "wiring", "lighting-installation", "ev-chargers",
			"generator-installation", "electrical-inspection",
		},
		SEOKeywords: map[string][]string{
			"service": {"electrician", "electrical repair", "panel upgrade"},
			"local":   {"electrician near me", "licensed electrician"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Call a Licensed Electrician",
			SecondaryCTA:    "Book an Inspection",
			UrgencyTriggers: []string{"Same-day appointments"},
			TrustElements:   []string{"Licensed & Bonded", "Code-Compliant Work"},
		},
		CommonCertifications: []string{
			"Master Electrician License", "Journeyman Electrician License",
		},
	},
	"cleaning": {
		Key:              "cleaning",
		PreferredContact: "form",
		UrgencyTriggers:  []string{"move-out deadline"},
		CriticalSections: defaultCriticalSections,
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionGallery, siteplan.SectionAbout, siteplan.SectionTestimonials,
		},
		MaxServices: 6,
		ServiceCategories: []string{
			"residential-cleaning", "deep-cleaning", "move-in-move-out",
			"office-cleaning", "carpet-cleaning", "window-cleaning",
		},
		SEOKeywords: map[string][]string{
			"service": {"house cleaning", "maid service", "deep cleaning"},
			"local":   {"cleaning service near me", "house cleaners"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Get an Instant Quote",
			SecondaryCTA:    "Book Online",
			UrgencyTriggers: []string{"Openings this week"},
			TrustElements:   []string{"Bonded & Insured", "Background-Checked Staff"},
		},
		CommonCertifications: []string{
			"ISSA Member", "IICRC Certified", "Green Seal Certified",
		},
	},
	"roofing": {
		Key:              "roofing",
		PreferredContact: "phone",
		UrgencyTriggers:  []string{"storm damage", "active leak"},
		CriticalSections: append(defaultCriticalSections, siteplan.SectionServiceAreas),
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionGallery, siteplan.SectionAbout, siteplan.SectionTestimonials,
		},
		MaxServices: 5,
		ServiceCategories: []string{
			"roof-replacement", "roof-repair", "storm-damage", "gutter-installation",
			"roof-inspection",
		},
		SEOKeywords: map[string][]string{
			"service":   {"roofing contractor", "roof replacement", "roof repair"},
			"local":     {"roofer near me", "local roofing company"},
			"emergency": {"emergency roof repair", "storm damage repair"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Get a Free Roof Inspection",
			SecondaryCTA:    "See Recent Projects",
			UrgencyTriggers: []string{"Storm damage? Call today"},
			TrustElements:   []string{"GAF Certified", "Insurance Claims Assistance"},
		},
		CommonCertifications: []string{
			"GAF Master Elite", "Owens Corning Preferred", "CertainTeed SELECT ShingleMaster",
		},
	},
	"painting": {
		Key:              "painting",
		PreferredContact: "form",
		UrgencyTriggers:  []string{},
		CriticalSections: defaultCriticalSections,
		OptionalSections: []siteplan.SectionType{
			siteplan.SectionGallery, siteplan.SectionAbout, siteplan.SectionTestimonials,
		},
		MaxServices: 5,
		ServiceCategories: []string{
			"interior-painting", "exterior-painting", "cabinet-refinishing",
			"deck-staining", "commercial-painting",
		},
		SEOKeywords: map[string][]string{
			"service": {"house painters", "interior painting", "exterior painting"},
			"local":   {"painters near me", "local painting company"},
		},
		Conversion: ConversionCopy{
			PrimaryCTA:      "Request a Free Estimate",
			SecondaryCTA:    "Browse Our Gallery",
			UrgencyTriggers: []string{},
			TrustElements:   []string{"2-Year Workmanship Warranty"},
		},
		CommonCertifications: []string{
			"PDCA Member", "EPA Lead-Safe Certified",
		},
	},
	GeneralKey: {
		Key:                  GeneralKey,
		PreferredContact:     "form",
		UrgencyTriggers:      []string{},
		CriticalSections:     defaultCriticalSections,
		OptionalSections:     []siteplan.SectionType{siteplan.SectionAbout},
		MaxServices:          6,
		ServiceCategories:    []string{},
		SEOKeywords:          map[string][]string{},
		Conversion:           ConversionCopy{PrimaryCTA: "Contact Us", SecondaryCTA: "Learn More"},
		CommonCertifications: []string{},
	},
}

// ProfileFor resolves an industry key to its profile. Unknown, empty or
// differently-cased keys resolve to the general profile; this never fails.
func ProfileFor(key string) Profile {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if p, ok := profiles[normalized]; ok {
		return p
	}
	return profiles[GeneralKey]
}

// Keys returns the supported industry keys, fallback included.
func Keys() []string {
	keys := make([]string, 0, len(profiles))
	for k := range profiles {
		keys = append(keys, k)
	}
	return keys
}
