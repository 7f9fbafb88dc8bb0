package service

import (
	"fmt"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
)

// AddressRegistry is an immutable, validated address table. All methods are
// pure reads and safe for concurrent use without locking.
type AddressRegistry struct {
	table      entity.AddressTable
	ecosystems []string
	networks   map[string][]string // ecosystem -> sorted network names
	owners     map[string]string   // network -> ecosystem
}

var _ port.AddressRegistry = (*AddressRegistry)(nil)

// NewAddressRegistry validates table and returns a registry over a private copy of it.
func NewAddressRegistry(table entity.AddressTable, logger port.Logger) (*AddressRegistry, error) {
	if logger == nil {
		logger = port.NopLogger{}
	}
	if err := ValidateTable(table); err != nil {
		logger.Error("Address table rejected", "error", err)
		return nil, err
	}

	r := &AddressRegistry{
		table:    table.Clone(),
		networks: make(map[string][]string, len(table)),
		owners:   make(map[string]string),
	}
	r.ecosystems = utils.SortedKeys(r.table)
	for _, ecosystem := range r.ecosystems {
		names := utils.SortedKeys(r.table[ecosystem])
		r.networks[ecosystem] = names
		for _, network := range names {
			if owner, dup := r.owners[network]; dup {
				// Names are globally qualified in practice; first ecosystem in sort order wins FindNetwork.
				logger.Warn("Network name registered under several ecosystems", "network", network, "ecosystem", ecosystem, "first_ecosystem", owner)
				continue
			}
			r.owners[network] = ecosystem
		}
	}

	logger.Debug("Address registry built", "ecosystems", len(r.ecosystems), "networks", r.table.NetworkCount())
	return r, nil
}

// ValidateTable checks the structural shape of a table: non-empty keys, contract
// names from the known vocabulary and well-formed non-empty addresses.
func ValidateTable(table entity.AddressTable) error {
	if len(table) == 0 {
		return fmt.Errorf("address table is empty")
	}
	for ecosystem, networks := range table {
		if ecosystem == "" {
			return fmt.Errorf("address table has an empty ecosystem key")
		}
		for network, set := range networks {
			if network == "" {
				return fmt.Errorf("ecosystem %q has an empty network key", ecosystem)
			}
			for name, addr := range set {
				if !name.IsKnown() {
					return fmt.Errorf("network %q in ecosystem %q lists unknown contract %q", network, ecosystem, name)
				}
				if addr != "" && !utils.IsAddress(addr) {
					return &entity.AddressError{Ecosystem: ecosystem, Network: network, Contract: name, Value: addr}
				}
			}
		}
	}
	return nil
}

// Lookup returns the address of contract on network within ecosystem.
func (r *AddressRegistry) Lookup(ecosystem, network string, contract entity.ContractName) (string, error) {
	networks, ok := r.table[ecosystem]
	if !ok {
		return "", &entity.LookupError{Ecosystem: ecosystem, Network: network, Contract: contract, Reason: entity.ReasonUnknownEcosystem}
	}
	set, ok := networks[network]
	if !ok {
		return "", &entity.LookupError{Ecosystem: ecosystem, Network: network, Contract: contract, Reason: entity.ReasonUnknownNetwork}
	}
	addr, ok := set[contract]
	if !ok {
		return "", &entity.LookupError{Ecosystem: ecosystem, Network: network, Contract: contract, Reason: entity.ReasonUnknownContract}
	}
	if addr == "" {
		return "", &entity.LookupError{Ecosystem: ecosystem, Network: network, Contract: contract, Reason: entity.ReasonNotDeployed}
	}
	return addr, nil
}

// LookupAddress is Lookup decoded into a common.Address.
func (r *AddressRegistry) LookupAddress(ecosystem, network string, contract entity.ContractName) (common.Address, error) {
	addr, err := r.Lookup(ecosystem, network, contract)
	if err != nil {
		return common.Address{}, err
	}
	decoded, ok := utils.ToAddress(addr)
	if !ok {
		return common.Address{}, &entity.AddressError{Ecosystem: ecosystem, Network: network, Contract: contract, Value: addr}
	}
	return decoded, nil
}

// ListNetworks returns the sorted network names of ecosystem.
func (r *AddressRegistry) ListNetworks(ecosystem string) ([]string, error) {
	names, ok := r.networks[ecosystem]
	if !ok {
		return nil, fmt.Errorf("list networks of %q: %w", ecosystem, entity.ErrUnknownEcosystem)
	}
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// ListEcosystems returns all ecosystem names, sorted.
func (r *AddressRegistry) ListEcosystems() []string {
	out := make([]string, len(r.ecosystems))
	copy(out, r.ecosystems)
	return out
}

// Contracts returns the contracts deployed on network. Not-deployed placeholders are omitted.
func (r *AddressRegistry) Contracts(ecosystem, network string) (entity.ContractAddressSet, error) {
	networks, ok := r.table[ecosystem]
	if !ok {
		return nil, &entity.LookupError{Ecosystem: ecosystem, Network: network, Reason: entity.ReasonUnknownEcosystem}
	}
	set, ok := networks[network]
	if !ok {
		return nil, &entity.LookupError{Ecosystem: ecosystem, Network: network, Reason: entity.ReasonUnknownNetwork}
	}
	out := make(entity.ContractAddressSet, len(set))
	for name, addr := range set {
		if addr != "" {
			out[name] = addr
		}
	}
	return out, nil
}

// FindNetwork returns the ecosystem that owns network.
func (r *AddressRegistry) FindNetwork(network string) (string, bool) {
	ecosystem, ok := r.owners[network]
	return ecosystem, ok
}

// Snapshot returns a deep copy of the table, not-deployed placeholders included.
func (r *AddressRegistry) Snapshot() entity.AddressTable {
	return r.table.Clone()
}

// NetworkCount returns the number of networks in the table.
func (r *AddressRegistry) NetworkCount() int {
	return r.table.NetworkCount()
}
