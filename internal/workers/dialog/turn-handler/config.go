// internal/workers/dialog/turn-handler/config.go
package turnhandler

import "time"

type Config struct {
	Timezone string
	Timeout  time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timezone: "America/New_York",
		Timeout:  10 * time.Second,
	}
}
