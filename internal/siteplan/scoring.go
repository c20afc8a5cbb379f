// internal/siteplan/scoring.go
package siteplan

// Score evaluates how complete the collected business data is. It is a total
// function: an empty bundle produces a zero score, never an error. The point
// values are product-tuned constants; do not "round them off".
func Score(bundle *BusinessDataBundle) DataScore {
	if bundle == nil {
		bundle = &BusinessDataBundle{}
	}

	score := DataScore{
		MissingCritical: []string{},
	}

	var missing []string
	score.BasicInfo, missing = scoreBasicInfo(bundle.Listing)
	score.MissingCritical = append(score.MissingCritical, missing...)

	score.Content = scoreContent(bundle.Listing, bundle.Manual, bundle.Snippets)

	var photosMissing bool
	score.Visuals, photosMissing = scoreVisuals(bundle.Listing, bundle.Places)
	if photosMissing {
		score.MissingCritical = append(score.MissingCritical, FieldPhotos)
	}

	score.Trust = scoreTrust(bundle.Listing, bundle.Places, bundle.Manual)
	score.Differentiation = scoreDifferentiation(bundle.Manual, bundle.Places)

	score.Total = score.BasicInfo + score.Content + score.Visuals + score.Trust + score.Differentiation
	score.ContentTier = classifyTier(score.Total)

	return score
}

// scoreBasicInfo awards 5 points each for name, category, hours and phone.
// Name, category and phone are required signals; their absence is reported.
func scoreBasicInfo(listing *ListingProfile) (int, []string) {
	missing := []string{}

	if listing == nil {
		return 0, []string{FieldBusinessName, FieldBusinessCategory, FieldPhoneNumber}
	}

	score := 0

	if listing.Name != "" {
		score += 5
	} else {
		missing = append(missing, FieldBusinessName)
	}

	if len(listing.Categories) > 0 {
		score += 5
	} else {
		missing = append(missing, FieldBusinessCategory)
	}

	if len(listing.Hours) > 0 {
		score += 5
	}

	// Phone may live in the main field or in the attributes map, depending on
	// which collector populated the listing.
	if listing.Phone != "" || listing.Attributes["phone"] != "" {
		score += 5
	} else {
		missing = append(missing, FieldPhoneNumber)
	}

	return score, missing
}

// scoreContent awards exclusive description-length tiers plus flat bonuses for
// manual specializations and people-also-ask coverage.
func scoreContent(listing *ListingProfile, manual *ManualAnswers, snippets *SearchSnippets) int {
	score := 0

	if listing != nil {
		// Strictly one tier, not cumulative.
		if len(listing.Description) > 200 {
			score += 10
		} else if len(listing.Description) > 100 {
			score += 5
		}
	}

	if manual != nil && len(manual.Specializations) > 0 {
		score += 5
	}

	if snippets != nil && len(snippets.PeopleAlsoAsk) > 0 {
		score += 5
	}

	return score
}

// scoreVisuals counts photos across listing and places. The thresholds are
// additive: 1+ photos earns 5, 4+ earns another 10, 10+ another 5. Listing
// photos specifically are the required signal, so an empty listing gallery is
// flagged even when places has photos.
func scoreVisuals(listing *ListingProfile, places *PlacesResult) (int, bool) {
	listingPhotos := 0
	if listing != nil {
		listingPhotos = len(listing.Photos)
	}
	placesPhotos := 0
	if places != nil {
		placesPhotos = len(places.Photos)
	}
	total := listingPhotos + placesPhotos

	score := 0
	if total >= 1 {
		score += 5
	}
	if total >= 4 {
		score += 10
	}
	if total >= 10 {
		score += 5
	}

	return score, listingPhotos == 0
}

// scoreTrust picks the best available rating/count pair (listing preferred,
// places as fallback) and awards a single exclusive tier, plus a flat bonus
// for confirmed certifications.
func scoreTrust(listing *ListingProfile, places *PlacesResult, manual *ManualAnswers) int {
	var rating float64
	var count int

	if listing != nil && listing.Reviews != nil && listing.Reviews.Count > 0 {
		rating = listing.Reviews.Rating
		count = listing.Reviews.Count
	} else if places != nil && places.Reviews != nil {
		rating = places.Reviews.Rating
		count = places.Reviews.Total
	}

	score := 0
	switch {
	case rating >= 4.5 && count >= 20:
		score += 15
	case rating >= 4.0 && count >= 10:
		score += 10
	case rating >= 3.5 && count >= 5:
		score += 5
	}

	if manual != nil && len(manual.Certifications) > 0 {
		score += 5
	}

	return score
}

// scoreDifferentiation rewards awards, tenure and review highlights.
func scoreDifferentiation(manual *ManualAnswers, places *PlacesResult) int {
	score := 0

	if manual != nil {
		if len(manual.Awards) > 0 {
			score += 10
		}
		// Exclusive tenure tiers.
		if manual.YearsInBusiness >= 10 {
			score += 5
		} else if manual.YearsInBusiness >= 5 {
			score += 3
		}
	}

	if places != nil && places.Reviews != nil && len(places.Reviews.Highlights) > 3 {
		score += 5
	}

	return score
}

func classifyTier(total int) ContentTier {
	switch {
	case total >= 70:
		return TierPremium
	case total >= 40:
		return TierStandard
	default:
		return TierMinimal
	}
}
