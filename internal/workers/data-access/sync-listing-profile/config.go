// internal/workers/data-access/sync-listing-profile/config.go
package synclistingprofile

import "time"

type Config struct {
	BaseURL  string
	APIKey   string
	CacheTTL time.Duration
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 15 * time.Minute,
		Timeout:  15 * time.Second,
	}
}
