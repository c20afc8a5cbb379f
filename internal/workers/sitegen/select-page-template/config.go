// internal/workers/sitegen/select-page-template/config.go
package selectpagetemplate

import "time"

type Config struct {
	RegistryPath string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		RegistryPath: "configs/template-registry.json",
		Timeout:      30 * time.Second,
	}
}
