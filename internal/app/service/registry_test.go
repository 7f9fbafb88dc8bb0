package service

import (
	"errors"
	"strings"
	"testing"

	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/infrastructure/addressbook"
	"witnet_addresses/internal/pkg/utils"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultRegistry(t *testing.T) *AddressRegistry {
	t.Helper()
	r, err := NewAddressRegistry(addressbook.Default(), nil)
	require.NoError(t, err)
	return r
}

func TestLookupKnownAddress(t *testing.T) {
	r := newDefaultRegistry(t)

	addr, err := r.Lookup("default", "ethereum.mainnet", entity.WitnetRequestBoard)
	require.NoError(t, err)
	assert.Equal(t, "0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", addr)

	decoded, err := r.LookupAddress("default", "ethereum.mainnet", entity.WitnetRequestBoard)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addr), decoded)
	assert.True(t, strings.EqualFold(addr, decoded.Hex()))
}

func TestLookupNotDeployedIsIdempotent(t *testing.T) {
	r := newDefaultRegistry(t)

	for i := 0; i < 3; i++ {
		addr, err := r.Lookup("conflux", "conflux.tethys", entity.WitnetParserLib)
		require.ErrorIs(t, err, entity.ErrNotFound)
		assert.Empty(t, addr)

		var lookupErr *entity.LookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, entity.ReasonNotDeployed, lookupErr.Reason)
		assert.NotErrorIs(t, err, entity.ErrUnknownEcosystem)
	}
}

func TestLookupAbsentContract(t *testing.T) {
	r := newDefaultRegistry(t)

	_, err := r.Lookup("boba", "boba.mainnet", entity.WitnetPriceRegistry)
	require.ErrorIs(t, err, entity.ErrNotFound)

	var lookupErr *entity.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, entity.ReasonUnknownContract, lookupErr.Reason)
}

func TestLookupMissingKeys(t *testing.T) {
	r := newDefaultRegistry(t)

	tests := []struct {
		name      string
		ecosystem string
		network   string
		contract  entity.ContractName
		reason    entity.LookupReason
	}{
		{"ecosystem", "polkadot", "ethereum.mainnet", entity.WitnetRequestBoard, entity.ReasonUnknownEcosystem},
		{"network", "default", "boba.mainnet", entity.WitnetRequestBoard, entity.ReasonUnknownNetwork},
		{"contract", "celo", "celo.alfajores", entity.ContractName("WitnetRandomness"), entity.ReasonUnknownContract},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Lookup(tt.ecosystem, tt.network, tt.contract)
			require.ErrorIs(t, err, entity.ErrNotFound)
			var lookupErr *entity.LookupError
			require.True(t, errors.As(err, &lookupErr))
			assert.Equal(t, tt.reason, lookupErr.Reason)
		})
	}

	_, err := r.Lookup("polkadot", "x", entity.WitnetParserLib)
	assert.ErrorIs(t, err, entity.ErrUnknownEcosystem)
}

func TestEveryPresentContractIsAddressOrNotDeployed(t *testing.T) {
	r := newDefaultRegistry(t)
	table := r.Snapshot()

	for ecosystem, networks := range table {
		for network, set := range networks {
			for name := range set {
				addr, err := r.Lookup(ecosystem, network, name)
				if err != nil {
					require.ErrorIs(t, err, entity.ErrNotFound)
					continue
				}
				assert.True(t, utils.IsAddress(addr), "%s/%s/%s", ecosystem, network, name)
			}
		}
	}
}

func TestListEcosystems(t *testing.T) {
	r := newDefaultRegistry(t)
	assert.ElementsMatch(t, []string{"default", "boba", "celo", "conflux"}, r.ListEcosystems())
}

func TestListNetworks(t *testing.T) {
	r := newDefaultRegistry(t)

	networks, err := r.ListNetworks("default")
	require.NoError(t, err)
	assert.Equal(t, []string{"ethereum.goerli", "ethereum.mainnet", "ethereum.rinkeby"}, networks)

	for _, ecosystem := range r.ListEcosystems() {
		names, err := r.ListNetworks(ecosystem)
		require.NoError(t, err)
		seen := make(map[string]struct{}, len(names))
		for _, n := range names {
			_, dup := seen[n]
			assert.False(t, dup, "duplicate network %s in %s", n, ecosystem)
			seen[n] = struct{}{}
		}
	}

	_, err = r.ListNetworks("unknownEco")
	assert.ErrorIs(t, err, entity.ErrUnknownEcosystem)
}

func TestListResultsAreCopies(t *testing.T) {
	r := newDefaultRegistry(t)

	ecosystems := r.ListEcosystems()
	ecosystems[0] = "mutated"
	assert.NotContains(t, r.ListEcosystems(), "mutated")

	networks, err := r.ListNetworks("boba")
	require.NoError(t, err)
	networks[0] = "mutated"
	again, err := r.ListNetworks("boba")
	require.NoError(t, err)
	assert.NotContains(t, again, "mutated")
}

func TestContractsOmitsPlaceholders(t *testing.T) {
	r := newDefaultRegistry(t)

	set, err := r.Contracts("conflux", "conflux.tethys")
	require.NoError(t, err)
	assert.Empty(t, set)

	set, err = r.Contracts("default", "ethereum.goerli")
	require.NoError(t, err)
	assert.Len(t, set, 3)

	_, err = r.Contracts("default", "nope")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFindNetwork(t *testing.T) {
	r := newDefaultRegistry(t)

	ecosystem, ok := r.FindNetwork("celo.alfajores")
	require.True(t, ok)
	assert.Equal(t, "celo", ecosystem)

	ecosystem, ok = r.FindNetwork("ethereum.rinkeby")
	require.True(t, ok)
	assert.Equal(t, "default", ecosystem)

	_, ok = r.FindNetwork("celo.mainnet")
	assert.False(t, ok)
}

func TestRegistryIsolatedFromSourceTable(t *testing.T) {
	table := addressbook.Default()
	r, err := NewAddressRegistry(table, nil)
	require.NoError(t, err)

	table["default"]["ethereum.mainnet"][entity.WitnetRequestBoard] = ""
	snap := r.Snapshot()
	snap["default"]["ethereum.mainnet"][entity.WitnetRequestBoard] = ""

	addr, err := r.Lookup("default", "ethereum.mainnet", entity.WitnetRequestBoard)
	require.NoError(t, err)
	assert.Equal(t, "0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", addr)
}

func TestValidateTable(t *testing.T) {
	malformed := entity.AddressTable{
		"default": {"ethereum.mainnet": {entity.WitnetParserLib: "0x1234"}},
	}
	_, err := NewAddressRegistry(malformed, nil)
	require.ErrorIs(t, err, entity.ErrMalformedAddress)
	var addrErr *entity.AddressError
	require.True(t, errors.As(err, &addrErr))
	assert.Equal(t, "0x1234", addrErr.Value)

	unknownContract := entity.AddressTable{
		"default": {"ethereum.mainnet": {entity.ContractName("Other"): ""}},
	}
	assert.Error(t, ValidateTable(unknownContract))

	assert.Error(t, ValidateTable(entity.AddressTable{}))
	assert.Error(t, ValidateTable(entity.AddressTable{"": {"x.y": {}}}))
	assert.Error(t, ValidateTable(entity.AddressTable{"x": {"": {}}}))
	assert.NoError(t, ValidateTable(addressbook.Default()))
}
