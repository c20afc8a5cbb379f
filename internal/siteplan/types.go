// internal/siteplan/types.go
package siteplan

// BusinessDataBundle is the normalized, per-request view of everything the
// platform currently knows about a business. Every part is optional: upstream
// collectors (listing sync, places lookup, snippet scraper, onboarding answers)
// each may or may not have run yet.
type BusinessDataBundle struct {
	Listing  *ListingProfile `json:"listing,omitempty"`
	Places   *PlacesResult   `json:"placesResult,omitempty"`
	Snippets *SearchSnippets `json:"searchSnippets,omitempty"`
	Manual   *ManualAnswers  `json:"manualAnswers,omitempty"`
}

// ListingProfile is the owner-managed business-listing profile.
type ListingProfile struct {
	Name        string            `json:"name"`
	Categories  []string          `json:"categories"`
	Phone       string            `json:"phone"`
	Description string            `json:"description"`
	Hours       []HoursPeriod     `json:"hours"`
	Photos      []Photo           `json:"photos"`
	Reviews     *ReviewAggregate  `json:"reviews,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Services    []string          `json:"services"`
	ServiceArea []string          `json:"serviceArea"`
}

// HoursPeriod is one open/close period on a weekday.
type HoursPeriod struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Photo is a reference to an uploaded or crawled image.
type Photo struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// ReviewAggregate is a rating/count pair from the listing platform.
type ReviewAggregate struct {
	Rating float64 `json:"rating"`
	Count  int     `json:"count"`
}

// PlacesResult is the maps/places API view of the business, distinct from the
// owner-managed listing.
type PlacesResult struct {
	Reviews    *PlacesReviews `json:"reviews,omitempty"`
	PriceLevel int            `json:"priceLevel"`
	Photos     []Photo        `json:"photos"`
}

// PlacesReviews carries the places review aggregate plus highlight snippets and
// sentiment buckets extracted from review text.
type PlacesReviews struct {
	Rating     float64        `json:"rating"`
	Total      int            `json:"total"`
	Highlights []string       `json:"highlights"`
	Sentiment  map[string]int `json:"sentiment,omitempty"`
}

// SearchSnippets holds unstructured signals scraped from search result pages.
type SearchSnippets struct {
	PeopleAlsoAsk      []QAPair `json:"peopleAlsoAsk"`
	CompetitorServices []string `json:"competitorServices"`
}

// QAPair is one people-also-ask question/answer pair.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ManualAnswers are facts the owner confirmed through the onboarding flow.
type ManualAnswers struct {
	YearsInBusiness int      `json:"yearsInBusiness"`
	Certifications  []string `json:"certifications"`
	Awards          []string `json:"awards"`
	Specializations []string `json:"specializations"`
	TeamSize        int      `json:"teamSize"`
	Services        []string `json:"services"`
	ServiceAreas    []string `json:"serviceAreas"`
}

// ContentTier gates how rich a generated page can be.
type ContentTier string

const (
	TierPremium  ContentTier = "premium"
	TierStandard ContentTier = "standard"
	TierMinimal  ContentTier = "minimal"
)

// Identifiers reported in DataScore.MissingCritical.
const (
	FieldBusinessName     = "businessName"
	FieldBusinessCategory = "businessCategory"
	FieldPhoneNumber      = "phoneNumber"
	FieldPhotos           = "photos"
)

// DataScore is the completeness evaluation of a BusinessDataBundle. Sub-scores
// are capped at 20 points each; Total is their sum (0-100).
type DataScore struct {
	BasicInfo       int         `json:"basicInfo"`
	Content         int         `json:"content"`
	Visuals         int         `json:"visuals"`
	Trust           int         `json:"trust"`
	Differentiation int         `json:"differentiation"`
	Total           int         `json:"total"`
	MissingCritical []string    `json:"missingCritical"`
	ContentTier     ContentTier `json:"contentTier"`
}

// QuestionCategory classifies why a question is being asked.
type QuestionCategory string

const (
	CategoryCritical        QuestionCategory = "critical"
	CategoryEnhancement     QuestionCategory = "enhancement"
	CategoryPersonalization QuestionCategory = "personalization"
)

// QuestionOption is one selectable answer for a SmartQuestion.
type QuestionOption struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Popular bool   `json:"popular,omitempty"`
}

// SmartQuestion is one prioritized clarifying question for the business owner.
type SmartQuestion struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Priority int              `json:"priority"`
	Category QuestionCategory `json:"category"`
	Prompt   string           `json:"prompt"`
	Options  []QuestionOption `json:"options"`
}

// SectionType names a block of a generated marketing page.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionServices     SectionType = "services"
	SectionGallery      SectionType = "gallery"
	SectionAbout        SectionType = "about"
	SectionTestimonials SectionType = "testimonials"
	SectionContact      SectionType = "contact"
	SectionServiceAreas SectionType = "service-areas"
	SectionTrustBar     SectionType = "trust-bar"
	SectionAwards       SectionType = "awards"
	SectionFAQ          SectionType = "faq"
)

// SectionPriority tags how strongly a section is recommended.
type SectionPriority string

const (
	PriorityRequired    SectionPriority = "required"
	PriorityRecommended SectionPriority = "recommended"
	PriorityEnhancement SectionPriority = "enhancement"
)

// SectionRecommendation is one entry of the generated page plan.
type SectionRecommendation struct {
	Section       SectionType     `json:"section"`
	Priority      SectionPriority `json:"priority"`
	DataAvailable bool            `json:"dataAvailable"`
	Reason        string          `json:"reason"`
}
