// Package addressbook holds the built-in table of deployed Witnet contract addresses.
package addressbook

import "witnet_addresses/internal/domain/entity"

// Ecosystem keys as they appear in the table. "default" groups the Ethereum family.
const (
	EcosystemDefault = "default"
	EcosystemBoba    = "boba"
	EcosystemCelo    = "celo"
	EcosystemConflux = "conflux"
)

// witnetAddresses is never handed out directly; Default returns a copy.
var witnetAddresses = entity.AddressTable{ //nolint:gochecknoglobals // Global for definitions
	EcosystemDefault: {
		"ethereum.goerli": {
			entity.WitnetParserLib:     "0x7fbFAA0cA6B098e234135a9D813f735762fEF601",
			entity.WitnetRequestBoard:  "0xb58D05247d16b3F1BD6B59c52f7f61fFef02BeC8",
			entity.WitnetPriceRegistry: "0x05091eb0Ea60cDDF36A4360C76D7f0Cb5E956C3F",
		},
		"ethereum.mainnet": {
			entity.WitnetParserLib:    "0xfAB822EcFEdC440D505F731e78786C4a6b39B553",
			entity.WitnetRequestBoard: "0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA",
		},
		"ethereum.rinkeby": {
			entity.WitnetParserLib:     "0x2E499f44d2977945d52B7BD7834B2C5195d9CE84",
			entity.WitnetRequestBoard:  "0x6cE42a35C61ccfb42907EEE57eDF14Bb69C7fEF4",
			entity.WitnetPriceRegistry: "0x75ff327fc00BdF125363C5F6Dc71A566355Fc7B2",
		},
	},
	EcosystemBoba: {
		"boba.mainnet": {
			entity.WitnetParserLib:    "0x886CeCB28b5Cea0602f0B81A541d2e9992055a00",
			entity.WitnetRequestBoard: "0xd3AD9a4b26527E3bA5Fc60B75Eb002D47D98e292",
		},
		"boba.rinkeby": {
			entity.WitnetParserLib:    "0x7D8A488BACB56dA2De17628e26a21fFd97792b81",
			entity.WitnetRequestBoard: "0x58D8ECe142c60f5707594a7C1D90e46eAE5AF431",
		},
	},
	EcosystemCelo: {
		"celo.alfajores": {
			entity.WitnetParserLib:    "0xfBFdDb3FeC361C6179d2A0deFAFD963735669EaA",
			entity.WitnetRequestBoard: "0x1AEC0089168Fd1c70B5df8b590c86FAdD62d0f2d",
		},
	},
	EcosystemConflux: {
		"conflux.testnet": {
			entity.WitnetParserLib:    "0x8d683e88E85f785180c68953933bA7752d1b1Dd3",
			entity.WitnetRequestBoard: "0x8aB653B73a0e0552dDdce8c76F97c6AA826EFbD4",
		},
		// Reserved, not deployed yet.
		"conflux.tethys": {
			entity.WitnetParserLib:    "",
			entity.WitnetRequestBoard: "",
		},
	},
}

// Default returns a fresh copy of the built-in address table.
func Default() entity.AddressTable {
	return witnetAddresses.Clone()
}
