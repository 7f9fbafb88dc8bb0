package port

import (
	"witnet_addresses/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

// AddressRegistry exposes deployed contract addresses by ecosystem, network and contract name.
// Implementations are safe for concurrent use.
type AddressRegistry interface {
	// Lookup returns the stored address. It fails with an error matching entity.ErrNotFound
	// when any key is absent or the contract is not deployed on the network.
	Lookup(ecosystem, network string, contract entity.ContractName) (string, error)

	// LookupAddress is Lookup decoded into a common.Address.
	LookupAddress(ecosystem, network string, contract entity.ContractName) (common.Address, error)

	// ListNetworks returns the sorted network names of an ecosystem, or entity.ErrUnknownEcosystem.
	ListNetworks(ecosystem string) ([]string, error)

	// ListEcosystems returns all top-level keys, sorted.
	ListEcosystems() []string

	// Contracts returns the deployed (non-empty) contracts of a network.
	Contracts(ecosystem, network string) (entity.ContractAddressSet, error)

	// FindNetwork returns the ecosystem that owns a fully qualified network name.
	FindNetwork(network string) (string, bool)

	// Snapshot returns a deep copy of the whole table.
	Snapshot() entity.AddressTable
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all known network definitions as a slice.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByName returns a specific network definition by its fully qualified name.
	GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool)
}
