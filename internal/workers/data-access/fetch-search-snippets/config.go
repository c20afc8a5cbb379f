// internal/workers/data-access/fetch-search-snippets/config.go
package fetchsearchsnippets

import "time"

type Config struct {
	SearchAPIBaseURL string
	SearchAPIKey     string
	SearchEngineID   string
	MaxResults       int
	Timeout          time.Duration
}

func LoadConfig() *Config {
	return &Config{
		SearchAPIBaseURL: "https://www.googleapis.com/customsearch/v1",
		MaxResults:       10,
		Timeout:          10 * time.Second,
	}
}
