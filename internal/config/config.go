package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores preference-event consumer settings. Empty brokers or topic
// disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimit stores settings for the resolve-endpoint limiter.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Resolver stores assignment-resolution settings.
type Resolver struct {
	SnapshotTimeout time.Duration
	MemoEntries     int
}

// TenantGateway stores settings for the external tenant-registry client.
// An empty BaseURL disables the tenant check.
type TenantGateway struct {
	BaseURL     string
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Ops stores settings for the metrics/pprof sidecar handler.
type Ops struct {
	Port int
	User string
	Pass string
}

// Config stores all service settings.
type Config struct {
	Port          int
	DB            DB
	Kafka         Kafka
	RateLimit     RateLimit
	Resolver      Resolver
	TenantGateway TenantGateway
	Ops           Ops
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:          defaultPort,
		DB:            DefaultDB(),
		Kafka:         DefaultKafka(),
		RateLimit:     DefaultRateLimit(),
		Resolver:      DefaultResolver(),
		TenantGateway: DefaultTenantGateway(),
		Ops:           DefaultOps(),
	}

	cfg.Port = envInt("PORT", cfg.Port)

	cfg.DB.Host = envStr("POSTGRES_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("POSTGRES_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("POSTGRES_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("POSTGRES_PASSWORD", cfg.DB.Pass)
	cfg.DB.Name = envStr("POSTGRES_DB", cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	cfg.Kafka.Topic = envStr("KAFKA_TOPIC", cfg.Kafka.Topic)
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)

	cfg.RateLimit.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = envFloat("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	cfg.Resolver.SnapshotTimeout = envDuration("RESOLVER_SNAPSHOT_TIMEOUT", cfg.Resolver.SnapshotTimeout)
	cfg.Resolver.MemoEntries = envInt("RESOLVER_MEMO_ENTRIES", cfg.Resolver.MemoEntries)

	cfg.TenantGateway.BaseURL = envStr("TENANT_REGISTRY_URL", cfg.TenantGateway.BaseURL)
	cfg.TenantGateway.MaxAttempts = envInt("TENANT_REGISTRY_MAX_ATTEMPTS", cfg.TenantGateway.MaxAttempts)
	cfg.TenantGateway.BaseDelay = envDuration("TENANT_REGISTRY_BASE_DELAY", cfg.TenantGateway.BaseDelay)
	cfg.TenantGateway.MaxDelay = envDuration("TENANT_REGISTRY_MAX_DELAY", cfg.TenantGateway.MaxDelay)

	cfg.Ops.Port = envInt("OPS_PORT", cfg.Ops.Port)
	cfg.Ops.User = envStr("OPS_USER", cfg.Ops.User)
	cfg.Ops.Pass = envStr("OPS_PASSWORD", cfg.Ops.Pass)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Ops.Port < 0 || cfg.Ops.Port > 65535 {
		return nil, fmt.Errorf("invalid ops port: %d", cfg.Ops.Port)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
