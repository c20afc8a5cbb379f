// internal/workers/sitegen/score-business-data/config.go
package scorebusinessdata

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
