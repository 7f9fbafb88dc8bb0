package provider

import (
	"context"
	"fmt"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/app/service"
	"witnet_addresses/internal/config"
	"witnet_addresses/internal/infrastructure/tablesource"
)

// NewReloadableRegistry builds the configured table source and performs the initial load.
func NewReloadableRegistry(ctx context.Context, cfg config.RegistryConfig, sourceLogger, registryLogger port.Logger) (*service.ReloadableRegistry, port.TableSource, error) {
	src, err := tablesource.New(cfg, sourceLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("configure address table source: %w", err)
	}
	reg, err := service.NewReloadableRegistry(ctx, src, cfg.RequestTimeout(), registryLogger)
	if err != nil {
		return nil, nil, err
	}
	return reg, src, nil
}

// LoadRegistry loads the configured table once, bounded by cfg's request timeout.
func LoadRegistry(ctx context.Context, cfg config.RegistryConfig, sourceLogger, registryLogger port.Logger) (*service.AddressRegistry, error) {
	src, err := tablesource.New(cfg, sourceLogger)
	if err != nil {
		return nil, fmt.Errorf("configure address table source: %w", err)
	}

	if timeout := cfg.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	table, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load address table from %s: %w", src.Name(), err)
	}
	return service.NewAddressRegistry(table, registryLogger)
}
