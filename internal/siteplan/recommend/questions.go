// internal/siteplan/recommend/questions.go
package recommend

import (
	"sort"

	"sitegen-workers/internal/siteplan"
	"sitegen-workers/internal/siteplan/industry"
)

// MaxQuestions caps how many clarifying questions the onboarding flow shows
// per round.
const MaxQuestions = 5

// questionCandidate pairs a skip predicate with a question builder. Candidates
// are evaluated in declaration order; a candidate is emitted unless skip
// returns true. Keeping predicate and builder side by side keeps the priority
// ordering auditable when new question types are added.
type questionCandidate struct {
	skip  func(score siteplan.DataScore, bundle *siteplan.BusinessDataBundle) bool
	build func(profile industry.Profile) siteplan.SmartQuestion
}

var universalDifferentiators = []siteplan.QuestionOption{
	{Value: "family-owned", Label: "Family Owned & Operated"},
	{Value: "eco-friendly", Label: "Eco-Friendly Practices"},
	{Value: "award-winning", Label: "Award Winning"},
	{Value: "woman-owned", Label: "Woman Owned"},
	{Value: "veteran-owned", Label: "Veteran Owned"},
	{Value: "locally-owned", Label: "Locally Owned"},
	{Value: "certified-professional", Label: "Certified Professionals"},
	{Value: "price-match-guarantee", Label: "Price Match Guarantee"},
	{Value: "free-estimates", Label: "Free Estimates"},
	{Value: "24-7-emergency", Label: "24/7 Emergency Service"},
}

// serviceStylePrompts carries the industry-specific framing of the service
// style question. Verticals without an entry get the generic framing.
var serviceStylePrompts = map[string]struct {
	prompt  string
	options []siteplan.QuestionOption
}{
	"plumbing": {
		prompt: "Do you offer 24/7 emergency plumbing service?",
		options: []siteplan.QuestionOption{
			{Value: "emergency-24-7", Label: "Yes, 24/7 emergencies", Popular: true},
			{Value: "business-hours", Label: "Business hours only"},
		},
	},
	"hvac": {
		prompt: "Do you offer maintenance agreements or tune-up plans?",
		options: []siteplan.QuestionOption{
			{Value: "maintenance-plans", Label: "Yes, maintenance plans", Popular: true},
			{Value: "repairs-only", Label: "Repairs and installs only"},
		},
	},
	"landscaping": {
		prompt: "Do you offer annual maintenance plans?",
		options: []siteplan.QuestionOption{
			{Value: "annual-plans", Label: "Yes, annual plans", Popular: true},
			{Value: "one-time", Label: "One-time projects only"},
		},
	},
}

var questionCandidates = []questionCandidate{
	{
		// Services: the single most important fact for page generation. Only
		// skipped when a service list already exists from any source.
		skip: func(_ siteplan.DataScore, bundle *siteplan.BusinessDataBundle) bool {
			return hasServices(bundle)
		},
		build: func(profile industry.Profile) siteplan.SmartQuestion {
			return siteplan.SmartQuestion{
				ID:       "services",
				Type:     "multi-select",
				Priority: 1,
				Category: siteplan.CategoryCritical,
				Prompt:   "Which services do you offer?",
				Options:  industry.ServiceOptions(profile.Key),
			}
		},
	},
	{
		skip: func(score siteplan.DataScore, _ *siteplan.BusinessDataBundle) bool {
			return score.Differentiation >= 10
		},
		build: func(_ industry.Profile) siteplan.SmartQuestion {
			return siteplan.SmartQuestion{
				ID:       "differentiators",
				Type:     "multi-select",
				Priority: 2,
				Category: siteplan.CategoryEnhancement,
				Prompt:   "What sets your business apart?",
				Options:  universalDifferentiators,
			}
		},
	},
	{
		skip: func(_ siteplan.DataScore, bundle *siteplan.BusinessDataBundle) bool {
			return bundle.Manual != nil && bundle.Manual.YearsInBusiness > 0
		},
		build: func(_ industry.Profile) siteplan.SmartQuestion {
			return siteplan.SmartQuestion{
				ID:       "business-stage",
				Type:     "single-select",
				Priority: 3,
				Category: siteplan.CategoryPersonalization,
				Prompt:   "How long have you been in business?",
				Options: []siteplan.QuestionOption{
					{Value: "0-1", Label: "Just getting started (under 1 year)"},
					{Value: "1-5", Label: "1-5 years"},
					{Value: "5-10", Label: "5-10 years"},
					{Value: "10-plus", Label: "More than 10 years", Popular: true},
				},
			}
		},
	},
	{
		skip: func(score siteplan.DataScore, _ *siteplan.BusinessDataBundle) bool {
			return score.Total >= 60
		},
		build: buildServiceStyleQuestion,
	},
	{
		skip: func(_ siteplan.DataScore, bundle *siteplan.BusinessDataBundle) bool {
			return bundle.Manual != nil && len(bundle.Manual.Certifications) > 0
		},
		build: func(profile industry.Profile) siteplan.SmartQuestion {
			return siteplan.SmartQuestion{
				ID:       "certifications",
				Type:     "multi-select",
				Priority: 3,
				Category: siteplan.CategoryEnhancement,
				Prompt:   "Do you hold any of these certifications?",
				Options:  certificationOptions(profile),
			}
		},
	},
}

// GenerateQuestions produces the prioritized clarifying questions for the
// owner: at most MaxQuestions entries, sorted by ascending priority with the
// candidate evaluation order preserved on ties. Works for any bundle and any
// industry key, including an entirely empty bundle.
func GenerateQuestions(score siteplan.DataScore, profile industry.Profile, bundle *siteplan.BusinessDataBundle) []siteplan.SmartQuestion {
	if bundle == nil {
		bundle = &siteplan.BusinessDataBundle{}
	}

	questions := make([]siteplan.SmartQuestion, 0, len(questionCandidates))
	for _, candidate := range questionCandidates {
		if candidate.skip(score, bundle) {
			continue
		}
		questions = append(questions, candidate.build(profile))
	}

	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Priority < questions[j].Priority
	})

	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}
	return questions
}

func hasServices(bundle *siteplan.BusinessDataBundle) bool {
	if bundle.Listing != nil && len(bundle.Listing.Services) > 0 {
		return true
	}
	return bundle.Manual != nil && len(bundle.Manual.Services) > 0
}

func buildServiceStyleQuestion(profile industry.Profile) siteplan.SmartQuestion {
	question := siteplan.SmartQuestion{
		ID:       "service-style",
		Type:     "single-select",
		Priority: 3,
		Category: siteplan.CategoryPersonalization,
	}

	if style, ok := serviceStylePrompts[profile.Key]; ok {
		question.Prompt = style.prompt
		question.Options = style.options
		return question
	}

	question.Prompt = "Do you offer emergency or same-day service?"
	question.Options = []siteplan.QuestionOption{
		{Value: "yes", Label: "Yes"},
		{Value: "no", Label: "No"},
	}
	return question
}

func certificationOptions(profile industry.Profile) []siteplan.QuestionOption {
	options := make([]siteplan.QuestionOption, 0, len(profile.CommonCertifications))
	for _, cert := range profile.CommonCertifications {
		options = append(options, siteplan.QuestionOption{Value: cert, Label: cert})
	}
	return options
}
