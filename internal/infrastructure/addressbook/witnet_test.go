package addressbook

import (
	"testing"

	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultShape(t *testing.T) {
	table := Default()

	assert.ElementsMatch(t,
		[]string{EcosystemDefault, EcosystemBoba, EcosystemCelo, EcosystemConflux},
		utils.SortedKeys(table))
	assert.Equal(t, 8, table.NetworkCount())

	for ecosystem, networks := range table {
		for network, set := range networks {
			for name, addr := range set {
				assert.True(t, name.IsKnown(), "%s/%s: unknown contract %s", ecosystem, network, name)
				if addr != "" {
					assert.True(t, utils.IsAddress(addr), "%s/%s/%s: %q", ecosystem, network, name, addr)
				}
			}
		}
	}
}

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	first[EcosystemDefault]["ethereum.mainnet"][entity.WitnetRequestBoard] = "0x0000000000000000000000000000000000000000"
	delete(first, EcosystemCelo)

	second := Default()
	require.Contains(t, second, EcosystemCelo)
	assert.Equal(t, "0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA",
		second[EcosystemDefault]["ethereum.mainnet"][entity.WitnetRequestBoard])
}
