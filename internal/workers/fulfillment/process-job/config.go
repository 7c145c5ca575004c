// internal/workers/fulfillment/process-job/config.go
package processjob

type Config struct {
	MaxResults int
}

func LoadConfig() *Config {
	return &Config{
		MaxResults: 5,
	}
}
