package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "rosterbid",
	Pass: "rosterbid",
	Name: "rosterbid_db",
}

var defaultKafka = Kafka{
	Topic:   "preference-submitted",
	GroupID: "rosterbid-worker",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       2,
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultResolver = Resolver{
	SnapshotTimeout: 3 * time.Second,
	MemoEntries:     64,
}

var defaultTenantGateway = TenantGateway{
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultOps = Ops{
	Port: 6060,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default preference-consumer settings.
func DefaultKafka() Kafka {
	k := defaultKafka
	k.Brokers = append([]string(nil), defaultKafka.Brokers...)
	return k
}

// DefaultRateLimit returns the default resolve-endpoint limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultResolver returns the default resolver settings.
func DefaultResolver() Resolver {
	return defaultResolver
}

// DefaultTenantGateway returns the default tenant-registry client settings.
func DefaultTenantGateway() TenantGateway {
	return defaultTenantGateway
}

// DefaultOps returns the default ops handler settings.
func DefaultOps() Ops {
	return defaultOps
}
