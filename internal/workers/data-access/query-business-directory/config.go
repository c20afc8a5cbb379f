// internal/workers/data-access/query-business-directory/config.go
package querybusinessdirectory

import "time"

type Config struct {
	IndexName string
	Timeout   time.Duration
}

func LoadConfig() *Config {
	return &Config{
		IndexName: "business-directory",
		Timeout:   10 * time.Second,
	}
}
