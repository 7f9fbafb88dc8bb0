package port

import "witnet_addresses/internal/config"

// ConfigProvider defines the interface for accessing application configuration.
type ConfigProvider interface {
	GetConfig() *config.Config
}
