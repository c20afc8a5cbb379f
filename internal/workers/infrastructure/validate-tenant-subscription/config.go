// internal/workers/infrastructure/validate-tenant-subscription/config.go
package validatetenantsubscription

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
