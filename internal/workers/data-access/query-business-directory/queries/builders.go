// internal/workers/data-access/query-business-directory/queries/builders.go
package queries

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"sitegen-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8/esapi"
)

var (
	ErrUnknownQueryType = errors.New("unknown query type")
	ErrMissingIndex     = errors.New("index name is required")
	ErrInvalidFilters   = errors.New("invalid filters for query type")
)

// DirectoryQuery describes one search against the business directory index.
type DirectoryQuery struct {
	Index             string
	Type              models.QueryType
	Industry          string
	City              string
	Region            string
	Text              string
	ExcludeBusinessID string
	MinRating         float64
	From              int
	Size              int
}

// BuildRequest assembles the search request for a directory query.
func BuildRequest(q DirectoryQuery) (*esapi.SearchRequest, error) {
	if q.Index == "" {
		return nil, ErrMissingIndex
	}

	var body map[string]interface{}
	var err error

	switch q.Type {
	case models.QueryTypeBusinessByIndustry:
		body, err = buildByIndustry(q)
	case models.QueryTypeBusinessByLocation:
		body, err = buildByLocation(q)
	case models.QueryTypeBusinessFullText:
		body, err = buildFullText(q)
	case models.QueryTypeCompetitorLookup:
		body, err = buildCompetitorLookup(q)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownQueryType, q.Type)
	}
	if err != nil {
		return nil, err
	}

	encoded, _ := json.Marshal(body)

	from := q.From
	size := q.Size
	return &esapi.SearchRequest{
		Index: []string{q.Index},
		Body:  bytes.NewReader(encoded),
		From:  &from,
		Size:  &size,
	}, nil
}

func buildByIndustry(q DirectoryQuery) (map[string]interface{}, error) {
	if q.Industry == "" {
		return nil, fmt.Errorf("%w: industry is required for %s", ErrInvalidFilters, q.Type)
	}

	filters := []interface{}{
		map[string]interface{}{"term": map[string]interface{}{"industry": q.Industry}},
	}
	if q.City != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"city": q.City},
		})
	}
	filters = appendRatingFilter(filters, q.MinRating)

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"filter": filters},
		},
		"sort": []interface{}{
			map[string]interface{}{"rating": map[string]interface{}{"order": "desc"}},
		},
	}, nil
}

func buildByLocation(q DirectoryQuery) (map[string]interface{}, error) {
	if q.City == "" && q.Region == "" {
		return nil, fmt.Errorf("%w: city or region is required for %s", ErrInvalidFilters, q.Type)
	}

	filters := []interface{}{}
	if q.City != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"city": q.City},
		})
	}
	if q.Region != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"region": q.Region},
		})
	}
	if q.Industry != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"industry": q.Industry},
		})
	}
	filters = appendRatingFilter(filters, q.MinRating)

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"filter": filters},
		},
	}, nil
}

func buildFullText(q DirectoryQuery) (map[string]interface{}, error) {
	if q.Text == "" {
		return nil, fmt.Errorf("%w: text is required for %s", ErrInvalidFilters, q.Type)
	}

	boolQuery := map[string]interface{}{
		"must": []interface{}{
			map[string]interface{}{
				"multi_match": map[string]interface{}{
					"query":  q.Text,
					"fields": []string{"name^3", "services^2", "description"},
					"type":   "best_fields",
				},
			},
		},
	}
	if q.Industry != "" {
		boolQuery["filter"] = []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"industry": q.Industry}},
		}
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	}, nil
}

// buildCompetitorLookup finds same-industry businesses near the subject while
// excluding the subject itself.
func buildCompetitorLookup(q DirectoryQuery) (map[string]interface{}, error) {
	if q.Industry == "" || q.City == "" {
		return nil, fmt.Errorf("%w: industry and city are required for %s", ErrInvalidFilters, q.Type)
	}

	boolQuery := map[string]interface{}{
		"filter": []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"industry": q.Industry}},
			map[string]interface{}{"term": map[string]interface{}{"city": q.City}},
		},
	}
	if q.ExcludeBusinessID != "" {
		boolQuery["must_not"] = []interface{}{
			map[string]interface{}{"term": map[string]interface{}{"businessId": q.ExcludeBusinessID}},
		}
	}

	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort": []interface{}{
			map[string]interface{}{"reviews": map[string]interface{}{"order": "desc"}},
		},
	}, nil
}

func appendRatingFilter(filters []interface{}, minRating float64) []interface{} {
	if minRating <= 0 {
		return filters
	}
	return append(filters, map[string]interface{}{
		"range": map[string]interface{}{
			"rating": map[string]interface{}{"gte": minRating},
		},
	})
}
