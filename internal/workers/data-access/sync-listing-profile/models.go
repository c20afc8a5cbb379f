// internal/workers/data-access/sync-listing-profile/models.go
package synclistingprofile

import "sitegen-workers/internal/siteplan"

type Input struct {
	BusinessID string `json:"businessId"`
	ListingRef string `json:"listingRef"`
	ForceSync  bool   `json:"forceSync,omitempty"`
}

type Output struct {
	Listing   *siteplan.ListingProfile `json:"listing"`
	FromCache bool                     `json:"fromCache"`
}

// listingAPIResponse mirrors the listing provider's profile payload.
type listingAPIResponse struct {
	Name        string            `json:"name"`
	Categories  []string          `json:"categories"`
	Phone       string            `json:"phoneNumber"`
	Description string            `json:"description"`
	Hours       []apiHoursPeriod  `json:"openingHours"`
	Photos      []apiPhoto        `json:"photos"`
	Rating      float64           `json:"averageRating"`
	ReviewCount int               `json:"reviewCount"`
	Attributes  map[string]string `json:"attributes"`
	Services    []string          `json:"services"`
	ServiceArea []string          `json:"serviceArea"`
}

type apiHoursPeriod struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type apiPhoto struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}
