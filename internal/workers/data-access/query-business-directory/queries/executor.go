// internal/workers/data-access/query-business-directory/queries/executor.go
package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"sitegen-workers/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

type QueryResult struct {
	Entries   []models.DirectoryEntry
	TotalHits int64
	MaxScore  float64
	Took      int64
}

type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		MaxScore float64 `json:"max_score"`
		Hits     []struct {
			Score  float64         `json:"_score"`
			Source directorySource `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

type directorySource struct {
	BusinessID string   `json:"businessId"`
	Name       string   `json:"name"`
	Industry   string   `json:"industry"`
	City       string   `json:"city"`
	Region     string   `json:"region"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Services   []string `json:"services"`
}

// Execute runs a directory query and maps hits into directory entries.
func Execute(ctx context.Context, esClient *elasticsearch.Client, q DirectoryQuery) (*QueryResult, error) {
	req, err := BuildRequest(q)
	if err != nil {
		return nil, err
	}

	res, err := req.Do(ctx, esClient)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 || strings.Contains(res.String(), "index_not_found") {
			return nil, fmt.Errorf("%w: %s", ErrMissingIndex, q.Index)
		}
		return nil, fmt.Errorf("search returned %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	entries := make([]models.DirectoryEntry, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		entries = append(entries, models.DirectoryEntry{
			BusinessID: hit.Source.BusinessID,
			Name:       hit.Source.Name,
			Industry:   hit.Source.Industry,
			City:       hit.Source.City,
			Region:     hit.Source.Region,
			Rating:     hit.Source.Rating,
			Reviews:    hit.Source.Reviews,
			Services:   hit.Source.Services,
			Score:      hit.Score,
		})
	}

	return &QueryResult{
		Entries:   entries,
		TotalHits: parsed.Hits.Total.Value,
		MaxScore:  parsed.Hits.MaxScore,
		Took:      parsed.Took,
	}, nil
}
