// internal/workers/sitegen/recommend-page-sections/config.go
package recommendpagesections

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
