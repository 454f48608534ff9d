// Package config defines service settings and their loading.
//
// Settings layer in increasing precedence: compiled defaults, an optional
// YAML file named by RACEETL_CONFIG, then RACEETL_-prefixed environment
// variables (RACEETL_HTTP_ADDR, RACEETL_KAFKA_BROKERS, ...).
package config

import "time"

// Config holds all service settings.
type Config struct {
	// Data inputs.
	ResultsCSV string `koanf:"results_csv"` // canonical CSV path; empty selects the bundled sample
	CountryCSV string `koanf:"country_csv"` // country reference CSV path; empty selects the bundled copy
	RawInput   string `koanf:"raw_input"`   // raw capture path for the etl command
	RawFormat  string `koanf:"raw_format"`  // "copypaste" or "csv"
	RetainDNF  bool   `koanf:"retain_dnf"`
	DNFBibs    []int  `koanf:"dnf_bibs"` // bibs force-tagged DNF during copy-paste ingestion

	// Service surface.
	HTTPAddr        string        `koanf:"http_addr"`
	LogLevel        string        `koanf:"log_level"`
	LogFormat       string        `koanf:"log_format"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Kafka sink, used by the etl command when enabled.
	KafkaEnabled bool     `koanf:"kafka_enabled"`
	KafkaBrokers []string `koanf:"kafka_brokers"`
	KafkaTopic   string   `koanf:"kafka_topic"`

	// Analysis tuning.
	OutlierThreshold float64 `koanf:"outlier_threshold"`
	MinParticipants  int     `koanf:"min_participants"`
	MaxParticipants  int     `koanf:"max_participants"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		RawFormat:        "copypaste",
		DNFBibs:          []int{434},
		HTTPAddr:         ":8080",
		LogLevel:         "info",
		LogFormat:        "json",
		ShutdownTimeout:  10 * time.Second,
		KafkaBrokers:     []string{"localhost:9092"},
		KafkaTopic:       "race-results",
		OutlierThreshold: 3.0,
		MinParticipants:  5,
		MaxParticipants:  5,
	}
}
