package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"shopapi.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLSeconds  = 86400
	maxCacheOpTimeoutMS = 5000
	maxPortNumber       = 65535
	minBcryptCost       = 4
	maxBcryptCost       = 31
	minJWTSecretLength  = 16
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Auth     AuthConfig     `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
	Order    OrderConfig    `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"shop"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeNone
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeNone:
		return "none"
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeNone || c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "none":
		return CacheTypeNone
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type        CacheType     `envconfig:"CACHE_TYPE" default:"redis"`
	TTLSeconds  int           `envconfig:"CACHE_TTL_SECONDS" default:"3600"`
	OpTimeoutMS int           `envconfig:"CACHE_OP_TIMEOUT_MS" default:"250"`
	Breaker     BreakerConfig `split_words:"true"`
	Redis       RedisConfig   `split_words:"true"`
}

// BreakerConfig controls the circuit breaker placed in front of the cache backend
type BreakerConfig struct {
	Enabled          bool `envconfig:"CACHE_BREAKER_ENABLED" default:"true"`
	FailureThreshold int  `envconfig:"CACHE_BREAKER_FAILURES" default:"5"`
	OpenSeconds      int  `envconfig:"CACHE_BREAKER_OPEN_SECONDS" default:"30"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type AuthConfig struct {
	JWTSecret      string `envconfig:"JWT_SECRET" required:"true"`
	JWTIssuer      string `envconfig:"JWT_ISSUER" default:"shopapi"`
	JWTExpireHours int    `envconfig:"JWT_EXPIRE_HOURS" default:"720"`
	BcryptCost     int    `envconfig:"BCRYPT_COST" default:"10"`
}

type LoggingConfig struct {
	Backend string `envconfig:"LOG_BACKEND" default:"slog"`
	Level   string `envconfig:"LOG_LEVEL" default:"info"`
	File    string `envconfig:"LOG_FILE" default:""`
}

type OrderConfig struct {
	TaxRate      float64 `envconfig:"ORDER_TAX_RATE" default:"0.18"`
	ShippingCost float64 `envconfig:"ORDER_SHIPPING_COST" default:"50"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Order.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: none, memory, redis", nil)
	}
	if c.TTLSeconds < 1 || c.TTLSeconds > maxCacheTTLSeconds {
		return errors.NewConfigurationError("CACHE_TTL_SECONDS must be between 1 and 86400", nil)
	}
	if c.OpTimeoutMS < 1 || c.OpTimeoutMS > maxCacheOpTimeoutMS {
		return errors.NewConfigurationError("CACHE_OP_TIMEOUT_MS must be between 1 and 5000", nil)
	}
	if err := c.Breaker.Validate(); err != nil {
		return err
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (b *BreakerConfig) Validate() error {
	if !b.Enabled {
		return nil
	}
	if b.FailureThreshold < 1 {
		return errors.NewConfigurationError("CACHE_BREAKER_FAILURES must be at least 1", nil)
	}
	if b.OpenSeconds < 1 {
		return errors.NewConfigurationError("CACHE_BREAKER_OPEN_SECONDS must be at least 1 second", nil)
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (a *AuthConfig) Validate() error {
	if len(a.JWTSecret) < minJWTSecretLength {
		return errors.NewConfigurationError("JWT_SECRET must be at least 16 characters", nil)
	}
	if a.JWTExpireHours < 1 {
		return errors.NewConfigurationError("JWT_EXPIRE_HOURS must be at least 1 hour", nil)
	}
	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		return errors.NewConfigurationError("BCRYPT_COST must be between 4 and 31", nil)
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	switch l.Backend {
	case "slog", "zap":
	default:
		return errors.NewConfigurationError("LOG_BACKEND must be one of: slog, zap", nil)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewConfigurationError("LOG_LEVEL must be one of: debug, info, warn, error", nil)
	}
	return nil
}

func (o *OrderConfig) Validate() error {
	if o.TaxRate < 0 || o.TaxRate > 1 {
		return errors.NewConfigurationError("ORDER_TAX_RATE must be between 0 and 1", nil)
	}
	if o.ShippingCost < 0 {
		return errors.NewConfigurationError("ORDER_SHIPPING_COST cannot be negative", nil)
	}
	return nil
}
