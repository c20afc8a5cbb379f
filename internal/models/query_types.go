// internal/models/query_types.go
package models

type QueryType string

const (
	QueryTypeBusinessByIndustry QueryType = "business_by_industry"
	QueryTypeBusinessByLocation QueryType = "business_by_location"
	QueryTypeBusinessFullText   QueryType = "business_full_text"
	QueryTypeCompetitorLookup   QueryType = "competitor_lookup"
)
