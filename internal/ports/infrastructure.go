package ports

import (
	"time"
)

// CacheConfig represents the cache settings consumed by use cases
type CacheConfig struct {
	Type      string
	TTL       time.Duration
	OpTimeout time.Duration
}

// AuthConfig represents token settings
type AuthConfig struct {
	Issuer     string
	TokenTTL   time.Duration
	BcryptCost int
}

// OrderConfig represents checkout pricing settings
type OrderConfig struct {
	TaxRate      float64
	ShippingCost float64
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
	GetAuthConfig() AuthConfig
	GetOrderConfig() OrderConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
