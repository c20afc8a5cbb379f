// internal/workers/communication/send-owner-questions/config.go
package sendownerquestions

import "time"

type Config struct {
	FromEmail    string
	EmailEnabled bool
	SMSEnabled   bool
	SMSSenderID  string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		FromEmail:    "no-reply@sitegen.example.com",
		EmailEnabled: true,
		SMSEnabled:   false,
		Timeout:      20 * time.Second,
	}
}
