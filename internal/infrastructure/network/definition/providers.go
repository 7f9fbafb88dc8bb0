package networkdefinition

import (
	"fmt"
	"sort"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/domain/entity"
)

// NetworkDefinitionProvider provides metadata for the networks of the address table.
type NetworkDefinitionProvider struct {
	logger         port.Logger
	allNetworkDefs map[string]entity.NetworkDefinition
}

var _ port.NetworkDefinitionProvider = (*NetworkDefinitionProvider)(nil)

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	EthereumMainnet = entity.NetworkDefinition{
		Identifier:       "ethereum.mainnet",
		Ecosystem:        "default",
		Name:             "Ethereum Mainnet",
		ChainID:          1,
		NativeSymbol:     "ETH",
		BlockExplorerURL: "https://etherscan.io",
	}
	EthereumGoerli = entity.NetworkDefinition{
		Identifier:       "ethereum.goerli",
		Ecosystem:        "default",
		Name:             "Ethereum Goerli",
		ChainID:          5,
		NativeSymbol:     "ETH",
		Testnet:          true,
		BlockExplorerURL: "https://goerli.etherscan.io",
	}
	EthereumRinkeby = entity.NetworkDefinition{
		Identifier:       "ethereum.rinkeby",
		Ecosystem:        "default",
		Name:             "Ethereum Rinkeby",
		ChainID:          4,
		NativeSymbol:     "ETH",
		Testnet:          true,
		BlockExplorerURL: "https://rinkeby.etherscan.io",
	}
	BobaMainnet = entity.NetworkDefinition{
		Identifier:       "boba.mainnet",
		Ecosystem:        "boba",
		Name:             "Boba Network",
		ChainID:          288,
		NativeSymbol:     "ETH",
		BlockExplorerURL: "https://blockexplorer.boba.network",
	}
	BobaRinkeby = entity.NetworkDefinition{
		Identifier:       "boba.rinkeby",
		Ecosystem:        "boba",
		Name:             "Boba Rinkeby",
		ChainID:          28,
		NativeSymbol:     "ETH",
		Testnet:          true,
		BlockExplorerURL: "https://blockexplorer.rinkeby.boba.network",
	}
	CeloAlfajores = entity.NetworkDefinition{
		Identifier:       "celo.alfajores",
		Ecosystem:        "celo",
		Name:             "Celo Alfajores",
		ChainID:          44787,
		NativeSymbol:     "CELO",
		Testnet:          true,
		BlockExplorerURL: "https://alfajores-blockscout.celo-testnet.org",
	}
	// Conflux entries refer to Core Space, whose chain IDs overlap with Ethereum's.
	ConfluxTestnet = entity.NetworkDefinition{
		Identifier:       "conflux.testnet",
		Ecosystem:        "conflux",
		Name:             "Conflux Core Testnet",
		ChainID:          1,
		NativeSymbol:     "CFX",
		Testnet:          true,
		BlockExplorerURL: "https://testnet.confluxscan.io",
	}
	ConfluxTethys = entity.NetworkDefinition{
		Identifier:       "conflux.tethys",
		Ecosystem:        "conflux",
		Name:             "Conflux Tethys",
		ChainID:          1029,
		NativeSymbol:     "CFX",
		BlockExplorerURL: "https://confluxscan.io",
	}
)

// allKnownDefinitions is a helper to quickly access all hardcoded definitions.
var allKnownDefinitions = map[string]entity.NetworkDefinition{ //nolint:gochecknoglobals
	EthereumMainnet.Identifier: EthereumMainnet,
	EthereumGoerli.Identifier:  EthereumGoerli,
	EthereumRinkeby.Identifier: EthereumRinkeby,
	BobaMainnet.Identifier:     BobaMainnet,
	BobaRinkeby.Identifier:     BobaRinkeby,
	CeloAlfajores.Identifier:   CeloAlfajores,
	ConfluxTestnet.Identifier:  ConfluxTestnet,
	ConfluxTethys.Identifier:   ConfluxTethys,
}

// NewNetworkDefinitionProvider creates a new NetworkDefinitionProvider.
func NewNetworkDefinitionProvider(log port.Logger) *NetworkDefinitionProvider {
	if log == nil {
		log = port.NopLogger{}
	}
	return &NetworkDefinitionProvider{
		logger:         log,
		allNetworkDefs: allKnownDefinitions,
	}
}

// GetAllNetworkDefinitions returns every known definition, sorted by identifier.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defs := make([]entity.NetworkDefinition, 0, len(p.allNetworkDefs))
	for _, def := range p.allNetworkDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Identifier < defs[j].Identifier })
	return defs
}

// GetNetworkDefinitionByName returns the definition for a fully qualified network name.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(identifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	def, ok := p.allNetworkDefs[identifier]
	return def, ok
}

// ActiveDefinitions returns definitions for the networks currently present in registry.
// Networks without hardcoded metadata get a minimal definition carrying only identifier and ecosystem.
func (p *NetworkDefinitionProvider) ActiveDefinitions(registry port.AddressRegistry) []entity.NetworkDefinition {
	var active []entity.NetworkDefinition
	for _, ecosystem := range registry.ListEcosystems() {
		networks, err := registry.ListNetworks(ecosystem)
		if err != nil {
			// Ecosystem vanished between the two calls because of a reload.
			continue
		}
		for _, network := range networks {
			def, ok := p.allNetworkDefs[network]
			if !ok {
				p.logger.Debug(fmt.Sprintf("Network '%s' has addresses but no hardcoded network definition.", network), "ecosystem", ecosystem)
				def = entity.NetworkDefinition{Identifier: network, Ecosystem: ecosystem, Name: network}
			}
			active = append(active, def)
		}
	}
	return active
}
