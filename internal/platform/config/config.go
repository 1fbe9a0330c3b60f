package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config captures everything main needs to wire the service.
type Config struct {
	Addr string `yaml:"addr"`

	Redis    Redis    `yaml:"redis"`
	Postgres Postgres `yaml:"postgres"`
	Kafka    Kafka    `yaml:"kafka"`
	Catalog  Catalog  `yaml:"catalog"`
	Contacts Contacts `yaml:"contacts"`
	Search   Search   `yaml:"search"`
	Session  Session  `yaml:"session"`
}

type Redis struct {
	URL string `yaml:"url"`
}

type Postgres struct {
	URL string `yaml:"url"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type Catalog struct {
	URL      string        `yaml:"url"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type Contacts struct {
	URL string `yaml:"url"`
}

type Search struct {
	QuietPeriod    time.Duration `yaml:"quiet_period"`
	MinQueryLength int           `yaml:"min_query_length"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:    ":8080",
		Kafka:   Kafka{Topic: "giftwell.campaign.events"},
		Catalog: Catalog{CacheTTL: 10 * time.Minute},
		Search: Search{
			QuietPeriod:    500 * time.Millisecond,
			MinQueryLength: 3,
		},
		Session: Session{TTL: 24 * time.Hour},
	}
}

// Load builds the config from an optional YAML file, then applies
// environment overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// FromEnv builds the config from environment variables alone.
func FromEnv() Config {
	cfg := Default()
	applyEnv(&cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	setString(&cfg.Addr, "GIFTWELL_ADDR")
	setString(&cfg.Redis.URL, "GIFTWELL_REDIS_URL")
	setString(&cfg.Postgres.URL, "GIFTWELL_DATABASE_URL")
	setString(&cfg.Kafka.Topic, "GIFTWELL_KAFKA_TOPIC")
	setString(&cfg.Catalog.URL, "GIFTWELL_CATALOG_URL")
	setString(&cfg.Contacts.URL, "GIFTWELL_CONTACTS_URL")

	if v := os.Getenv("GIFTWELL_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	setDuration(&cfg.Catalog.CacheTTL, "GIFTWELL_CATALOG_CACHE_TTL")
	setDuration(&cfg.Search.QuietPeriod, "GIFTWELL_SEARCH_QUIET_PERIOD")
	setDuration(&cfg.Session.TTL, "GIFTWELL_SESSION_TTL")
	setInt(&cfg.Search.MinQueryLength, "GIFTWELL_SEARCH_MIN_QUERY_LENGTH")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
