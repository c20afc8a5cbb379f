// internal/siteplan/recommend/sections.go
package recommend

import (
	"sitegen-workers/internal/siteplan"
	"sitegen-workers/internal/siteplan/industry"
)

// Score thresholds that gate the recommended and enhancement section groups.
const (
	recommendedThreshold = 40
	enhancementThreshold = 70
	testimonialTrustMin  = 10
)

var sectionReasons = map[siteplan.SectionType]string{
	siteplan.SectionHero:         "Every page needs a headline and primary call to action",
	siteplan.SectionServices:     "Visitors look for a service list before anything else",
	siteplan.SectionGallery:      "Photos are the strongest conversion signal for service work",
	siteplan.SectionAbout:        "A business story builds familiarity and trust",
	siteplan.SectionTestimonials: "Reviews convert undecided visitors",
	siteplan.SectionContact:      "Contact details must be reachable from every page",
	siteplan.SectionServiceAreas: "Service-area coverage drives local search traffic",
	siteplan.SectionTrustBar:     "Strong ratings are worth surfacing above the fold",
	siteplan.SectionAwards:       "Awards differentiate against local competitors",
	siteplan.SectionFAQ:          "FAQ content captures long-tail search queries",
}

// RecommendSections builds the page plan for a business: one required entry
// per critical section of the industry profile, then recommended and
// enhancement sections unlocked by the score. Never fails; sparse data only
// degrades the DataAvailable flags.
func RecommendSections(score siteplan.DataScore, profile industry.Profile, bundle *siteplan.BusinessDataBundle) []siteplan.SectionRecommendation {
	if bundle == nil {
		bundle = &siteplan.BusinessDataBundle{}
	}

	recommendations := make([]siteplan.SectionRecommendation, 0, len(profile.CriticalSections)+5)

	for _, section := range profile.CriticalSections {
		recommendations = append(recommendations, siteplan.SectionRecommendation{
			Section:       section,
			Priority:      siteplan.PriorityRequired,
			DataAvailable: SectionDataAvailable(section, bundle),
			Reason:        reasonFor(section),
		})
	}

	if score.Total >= recommendedThreshold {
		if SectionDataAvailable(siteplan.SectionAbout, bundle) {
			recommendations = append(recommendations, siteplan.SectionRecommendation{
				Section:       siteplan.SectionAbout,
				Priority:      siteplan.PriorityRecommended,
				DataAvailable: true,
				Reason:        reasonFor(siteplan.SectionAbout),
			})
		}
		if score.Trust >= testimonialTrustMin {
			recommendations = append(recommendations, siteplan.SectionRecommendation{
				Section:       siteplan.SectionTestimonials,
				Priority:      siteplan.PriorityRecommended,
				DataAvailable: SectionDataAvailable(siteplan.SectionTestimonials, bundle),
				Reason:        reasonFor(siteplan.SectionTestimonials),
			})
		}
	}

	if score.Total >= enhancementThreshold {
		// A premium-tier trust score always has something to show.
		recommendations = append(recommendations, siteplan.SectionRecommendation{
			Section:       siteplan.SectionTrustBar,
			Priority:      siteplan.PriorityEnhancement,
			DataAvailable: true,
			Reason:        reasonFor(siteplan.SectionTrustBar),
		})
		if bundle.Manual != nil && len(bundle.Manual.Awards) > 0 {
			recommendations = append(recommendations, siteplan.SectionRecommendation{
				Section:       siteplan.SectionAwards,
				Priority:      siteplan.PriorityEnhancement,
				DataAvailable: true,
				Reason:        reasonFor(siteplan.SectionAwards),
			})
		}
		// No bundle source carries FAQ material; it always needs authoring.
		recommendations = append(recommendations, siteplan.SectionRecommendation{
			Section:       siteplan.SectionFAQ,
			Priority:      siteplan.PriorityEnhancement,
			DataAvailable: false,
			Reason:        reasonFor(siteplan.SectionFAQ),
		})
	}

	return recommendations
}

// SectionDataAvailable reports whether the bundle holds enough material to
// populate a section without asking the owner for more. Unknown section types
// are conservatively unavailable.
func SectionDataAvailable(section siteplan.SectionType, bundle *siteplan.BusinessDataBundle) bool {
	if bundle == nil {
		bundle = &siteplan.BusinessDataBundle{}
	}

	switch section {
	case siteplan.SectionHero, siteplan.SectionContact:
		return true
	case siteplan.SectionServices:
		return hasServices(bundle)
	case siteplan.SectionGallery:
		return photoCount(bundle) >= 4
	case siteplan.SectionAbout:
		if bundle.Listing != nil && bundle.Listing.Description != "" {
			return true
		}
		return bundle.Manual != nil && bundle.Manual.YearsInBusiness > 0
	case siteplan.SectionTestimonials:
		return bestReviewCount(bundle) >= 5
	case siteplan.SectionServiceAreas:
		if bundle.Listing != nil && len(bundle.Listing.ServiceArea) > 0 {
			return true
		}
		return bundle.Manual != nil && len(bundle.Manual.ServiceAreas) > 0
	default:
		return false
	}
}

func reasonFor(section siteplan.SectionType) string {
	if reason, ok := sectionReasons[section]; ok {
		return reason
	}
	return "Recommended for this industry"
}

func photoCount(bundle *siteplan.BusinessDataBundle) int {
	count := 0
	if bundle.Listing != nil {
		count += len(bundle.Listing.Photos)
	}
	if bundle.Places != nil {
		count += len(bundle.Places.Photos)
	}
	return count
}

// bestReviewCount returns whichever review count is higher between listing and
// places, since either source alone can populate a testimonial section.
func bestReviewCount(bundle *siteplan.BusinessDataBundle) int {
	count := 0
	if bundle.Listing != nil && bundle.Listing.Reviews != nil {
		count = bundle.Listing.Reviews.Count
	}
	if bundle.Places != nil && bundle.Places.Reviews != nil && bundle.Places.Reviews.Total > count {
		count = bundle.Places.Reviews.Total
	}
	return count
}
