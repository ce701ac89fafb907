package infrastructure

import (
	"time"

	"shopapi.app/internal/config"
	"shopapi.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:      c.config.Cache.Type.String(),
		TTL:       time.Duration(c.config.Cache.TTLSeconds) * time.Second,
		OpTimeout: time.Duration(c.config.Cache.OpTimeoutMS) * time.Millisecond,
	}
}

// GetAuthConfig returns token and password hashing configuration
func (c *ConfigProviderAdapter) GetAuthConfig() ports.AuthConfig {
	return ports.AuthConfig{
		Issuer:     c.config.Auth.JWTIssuer,
		TokenTTL:   time.Duration(c.config.Auth.JWTExpireHours) * time.Hour,
		BcryptCost: c.config.Auth.BcryptCost,
	}
}

// GetOrderConfig returns checkout pricing configuration
func (c *ConfigProviderAdapter) GetOrderConfig() ports.OrderConfig {
	return ports.OrderConfig{
		TaxRate:      c.config.Order.TaxRate,
		ShippingCost: c.config.Order.ShippingCost,
	}
}
