package entity

// ContractName identifies a Witnet contract within a network's address set.
type ContractName string

const (
	// WitnetParserLib is the CBOR/result parsing library linked by the request board.
	WitnetParserLib ContractName = "WitnetParserLib"
	// WitnetRequestBoard is the entry point for posting data requests and reading results.
	WitnetRequestBoard ContractName = "WitnetRequestBoard"
	// WitnetPriceRegistry aggregates price feeds. Not deployed on every network.
	WitnetPriceRegistry ContractName = "WitnetPriceRegistry"
)

var knownContractNames = []ContractName{ //nolint:gochecknoglobals // fixed vocabulary
	WitnetParserLib,
	WitnetRequestBoard,
	WitnetPriceRegistry,
}

// KnownContractNames returns the fixed contract-name vocabulary in declaration order.
func KnownContractNames() []ContractName {
	names := make([]ContractName, len(knownContractNames))
	copy(names, knownContractNames)
	return names
}

// IsKnown reports whether n belongs to the contract-name vocabulary.
func (n ContractName) IsKnown() bool {
	for _, known := range knownContractNames {
		if n == known {
			return true
		}
	}
	return false
}

func (n ContractName) String() string {
	return string(n)
}
