// internal/workers/sitegen/generate-smart-questions/config.go
package generatesmartquestions

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
