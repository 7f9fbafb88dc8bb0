package networkdefinition

import (
	"testing"

	"witnet_addresses/internal/app/service"
	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/infrastructure/addressbook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionsCoverBuiltInTable(t *testing.T) {
	p := NewNetworkDefinitionProvider(nil)

	for ecosystem, networks := range addressbook.Default() {
		for network := range networks {
			def, ok := p.GetNetworkDefinitionByName(network)
			require.True(t, ok, network)
			assert.Equal(t, ecosystem, def.Ecosystem, network)
			assert.NotZero(t, def.ChainID, network)
		}
	}
	assert.Len(t, p.GetAllNetworkDefinitions(), 8)
}

func TestActiveDefinitions(t *testing.T) {
	table := entity.AddressTable{
		"celo": {"celo.alfajores": {entity.WitnetRequestBoard: "0x1AEC0089168Fd1c70B5df8b590c86FAdD62d0f2d"}},
		"moon": {"moon.base": {entity.WitnetRequestBoard: ""}},
	}
	reg, err := service.NewAddressRegistry(table, nil)
	require.NoError(t, err)

	defs := NewNetworkDefinitionProvider(nil).ActiveDefinitions(reg)
	require.Len(t, defs, 2)
	assert.Equal(t, CeloAlfajores, defs[0])
	assert.Equal(t, entity.NetworkDefinition{Identifier: "moon.base", Ecosystem: "moon", Name: "moon.base"}, defs[1])
}

func TestNilProvider(t *testing.T) {
	var p *NetworkDefinitionProvider
	assert.Empty(t, p.GetAllNetworkDefinitions())
	_, ok := p.GetNetworkDefinitionByName("ethereum.mainnet")
	assert.False(t, ok)
}
