// internal/siteplan/industry/services.go
package industry

import (
	"strings"

	"sitegen-workers/internal/siteplan"
)

// serviceVocab maps industry keys to the common services offered in that
// vertical, used to pre-populate the services onboarding question. Keyed the
// same as the profile table, but maintained separately: not every vertical
// with a profile has a curated service list.
var serviceVocab = map[string][]siteplan.QuestionOption{
	"landscaping": {
		{Value: "lawn-mowing", Label: "Lawn Mowing & Maintenance", Popular: true},
		{Value: "landscape-design", Label: "Landscape Design", Popular: true},
		{Value: "hardscaping", Label: "Patios & Hardscaping"},
		{Value: "irrigation", Label: "Irrigation Systems"},
		{Value: "tree-service", Label: "Tree Trimming & Removal"},
		{Value: "seasonal-cleanup", Label: "Spring/Fall Cleanup", Popular: true},
		{Value: "snow-removal", Label: "Snow Removal"},
		{Value: "mulching", Label: "Mulching & Edging"},
	},
	"hvac": {
		{Value: "ac-repair", Label: "AC Repair", Popular: true},
		{Value: "ac-installation", Label: "AC Installation", Popular: true},
		{Value: "furnace-repair", Label: "Furnace Repair", Popular: true},
		{Value: "furnace-installation", Label: "Furnace Installation"},
		{Value: "duct-cleaning", Label: "Duct Cleaning"},
		{Value: "maintenance-plans", Label: "Maintenance Plans"},
		{Value: "heat-pumps", Label: "Heat Pump Service"},
	},
	"plumbing": {
		{Value: "drain-cleaning", Label: "Drain Cleaning", Popular: true},
		{Value: "water-heater", Label: "Water Heater Repair & Installation", Popular: true},
		{Value: "leak-repair", Label: "Leak Detection & Repair", Popular: true},
		{Value: "pipe-replacement", Label: "Pipe Repair & Replacement"},
		{Value: "fixture-installation", Label: "Fixture Installation"},
		{Value: "sewer-repair", Label: "Sewer Line Service"},
		{Value: "emergency-plumbing", Label: "24/7 Emergency Plumbing"},
	},
	"electrical": {
		{Value: "panel-upgrades", Label: "Panel Upgrades", Popular: true},
		{Value: "wiring", Label: "Wiring & Rewiring"},
		{Value: "lighting-installation", Label: "Lighting Installation", Popular: true},
		{Value: "ev-chargers", Label: "EV Charger Installation"},
		{Value: "generator-installation", Label: "Generator Installation"},
		{Value: "electrical-inspection", Label: "Electrical Inspections"},
	},
	"cleaning": {
		{Value: "residential-cleaning", Label: "Recurring House Cleaning", Popular: true},
		{Value: "deep-cleaning", Label: "Deep Cleaning", Popular: true},
		{Value: "move-in-move-out", Label: "Move-In / Move-Out Cleaning"},
		{Value: "office-cleaning", Label: "Office Cleaning"},
		{Value: "carpet-cleaning", Label: "Carpet Cleaning"},
		{Value: "window-cleaning", Label: "Window Cleaning"},
	},
	"roofing": {
		{Value: "roof-replacement", Label: "Roof Replacement", Popular: true},
		{Value: "roof-repair", Label: "Roof Repair", Popular: true},
		{Value: "storm-damage", Label: "Storm Damage Restoration"},
		{Value: "gutter-installation", Label: "Gutter Installation"},
		{Value: "roof-inspection", Label: "Roof Inspections"},
	},
	"painting": {
		{Value: "interior-painting", Label: "Interior Painting", Popular: true},
		{Value: "exterior-painting", Label: "Exterior Painting", Popular: true},
		{Value: "cabinet-refinishing", Label: "Cabinet Refinishing"},
		{Value: "deck-staining", Label: "Deck & Fence Staining"},
		{Value: "commercial-painting", Label: "Commercial Painting"},
	},
}

// ServiceOptions returns the curated service options for an industry. Unknown
// industries yield an empty list; callers still ask the services question,
// just without suggestions.
func ServiceOptions(key string) []siteplan.QuestionOption {
	normalized := strings.ToLower(strings.TrimSpace(key))
	options := serviceVocab[normalized]
	out := make([]siteplan.QuestionOption, len(options))
	copy(out, options)
	return out
}
