// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	AWS           AWSConfig           `mapstructure:"aws"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Search        SearchConfig        `mapstructure:"search"`
	Dialog        DialogConfig        `mapstructure:"dialog"`
	Dedup         DedupConfig         `mapstructure:"dedup"`
	Worker        WorkerConfig        `mapstructure:"worker"`
	Server        ServerConfig        `mapstructure:"server"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// AWSConfig covers every AWS-backed collaborator: the job queue, the details
// store and the notification channel.
type AWSConfig struct {
	Region string `mapstructure:"region"`

	SQS struct {
		QueueURL string `mapstructure:"queue_url"`
	} `mapstructure:"sqs"`

	SES struct {
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"ses"`

	DynamoDB struct {
		RestaurantsTable string `mapstructure:"restaurants_table"`
	} `mapstructure:"dynamodb"`
}

type DatabaseConfig struct {
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SearchConfig controls the restaurant index query.
type SearchConfig struct {
	Index      string `mapstructure:"index"`
	MaxResults int    `mapstructure:"max_results"`
}

// DialogConfig holds the reference time zone for all "today"/"current hour"
// comparisons in slot validation.
type DialogConfig struct {
	Timezone string `mapstructure:"timezone"`
}

// DedupConfig gates the optional duplicate-job guard. Disabled by default so
// the queue keeps plain at-least-once semantics.
type DedupConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds"`
}

type WorkerConfig struct {
	PollIntervalMS int `mapstructure:"poll_interval"` // milliseconds
	TimeoutMS      int `mapstructure:"timeout"`       // milliseconds per run
}

type ServerConfig struct {
	Addr        string `mapstructure:"addr"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ObservabilityConfig enables trace export when an endpoint is set.
type ObservabilityConfig struct {
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}
