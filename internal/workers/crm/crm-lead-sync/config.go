// internal/workers/crm/crm-lead-sync/config.go
package crmleadsync

import "time"

type Config struct {
	LeadSource string
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		LeadSource: "Site Generation Platform",
		Timeout:    30 * time.Second,
	}
}
