package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/singleflight"
)

// ReloadableRegistry serves lookups from the most recently published AddressRegistry.
// A reload builds a complete new registry and swaps it in with a single atomic store,
// so readers see either the old table or the new one, never a mix.
type ReloadableRegistry struct {
	source      port.TableSource
	loadTimeout time.Duration
	logger      port.Logger
	current     atomic.Pointer[AddressRegistry]
	group       singleflight.Group
}

var _ port.AddressRegistry = (*ReloadableRegistry)(nil)

// NewReloadableRegistry performs the initial load from source. A positive loadTimeout
// bounds every load, including reloads that outlive the caller that started them.
func NewReloadableRegistry(ctx context.Context, source port.TableSource, loadTimeout time.Duration, logger port.Logger) (*ReloadableRegistry, error) {
	if logger == nil {
		logger = port.NopLogger{}
	}
	r := &ReloadableRegistry{source: source, loadTimeout: loadTimeout, logger: logger}
	if loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, loadTimeout)
		defer cancel()
	}
	if err := r.load(ctx); err != nil {
		return nil, fmt.Errorf("initial load from %s: %w", source.Name(), err)
	}
	logger.Info("Address registry initialized", "source", source.Name(), "networks", r.current.Load().NetworkCount())
	return r, nil
}

// Reload fetches the table again and publishes it. On failure the previous table stays active.
// Concurrent calls share one load. The shared load does not inherit the caller's cancellation:
// a caller whose ctx ends stops waiting, while the load completes for everyone else.
func (r *ReloadableRegistry) Reload(ctx context.Context) error {
	ch := r.group.DoChan("reload", func() (interface{}, error) {
		loadCtx := context.WithoutCancel(ctx)
		if r.loadTimeout > 0 {
			var cancel context.CancelFunc
			loadCtx, cancel = context.WithTimeout(loadCtx, r.loadTimeout)
			defer cancel()
		}
		return nil, r.load(loadCtx)
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			r.logger.Debug("Reload joined an in-flight load", "source", r.source.Name())
		}
		return res.Err
	}
}

func (r *ReloadableRegistry) load(ctx context.Context) error {
	table, err := r.source.Load(ctx)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues(metrics.ReloadFailure).Inc()
		r.logger.Error("Failed to load address table", "source", r.source.Name(), "error", err)
		return fmt.Errorf("load address table: %w", err)
	}
	next, err := NewAddressRegistry(table, r.logger)
	if err != nil {
		metrics.ReloadsTotal.WithLabelValues(metrics.ReloadFailure).Inc()
		return fmt.Errorf("build address registry: %w", err)
	}
	r.current.Store(next)
	metrics.ReloadsTotal.WithLabelValues(metrics.ReloadSuccess).Inc()
	metrics.ActiveNetworks.Set(float64(next.NetworkCount()))
	r.logger.Debug("Address table published", "source", r.source.Name(), "networks", next.NetworkCount())
	return nil
}

// Run reloads every interval until ctx is done. A non-positive interval returns immediately.
func (r *ReloadableRegistry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Info("Periodic address table reload started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Periodic address table reload stopped")
			return nil
		case <-ticker.C:
			if err := r.Reload(ctx); err != nil {
				r.logger.Warn("Periodic reload failed, keeping previous table", "error", err)
			}
		}
	}
}

// Current returns the registry published last.
func (r *ReloadableRegistry) Current() *AddressRegistry {
	return r.current.Load()
}

func (r *ReloadableRegistry) Lookup(ecosystem, network string, contract entity.ContractName) (string, error) {
	return r.Current().Lookup(ecosystem, network, contract)
}

func (r *ReloadableRegistry) LookupAddress(ecosystem, network string, contract entity.ContractName) (common.Address, error) {
	return r.Current().LookupAddress(ecosystem, network, contract)
}

func (r *ReloadableRegistry) ListNetworks(ecosystem string) ([]string, error) {
	return r.Current().ListNetworks(ecosystem)
}

func (r *ReloadableRegistry) ListEcosystems() []string {
	return r.Current().ListEcosystems()
}

func (r *ReloadableRegistry) Contracts(ecosystem, network string) (entity.ContractAddressSet, error) {
	return r.Current().Contracts(ecosystem, network)
}

func (r *ReloadableRegistry) FindNetwork(network string) (string, bool) {
	return r.Current().FindNetwork(network)
}

func (r *ReloadableRegistry) Snapshot() entity.AddressTable {
	return r.Current().Snapshot()
}
