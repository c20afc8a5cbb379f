// internal/workers/data-access/fetch-business-bundle/config.go
package fetchbusinessbundle

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
