package entity

// NetworkDefinition holds descriptive metadata for a network present in the address table.
// This structure is defined at the domain level to be used across application and infrastructure layers.
type NetworkDefinition struct {
	Identifier       string `json:"identifier" yaml:"identifier"` // fully qualified name, e.g. "ethereum.mainnet"
	Ecosystem        string `json:"ecosystem" yaml:"ecosystem"`
	Name             string `json:"name" yaml:"name"`
	ChainID          uint64 `json:"chainId" yaml:"chainId"`
	NativeSymbol     string `json:"nativeSymbol" yaml:"nativeSymbol"`
	Testnet          bool   `json:"testnet" yaml:"testnet"`
	BlockExplorerURL string `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
}
