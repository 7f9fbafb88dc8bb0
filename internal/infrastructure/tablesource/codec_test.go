package tablesource

import (
	"testing"

	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/infrastructure/addressbook"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
default:
  ethereum.mainnet:
    WitnetParserLib: "0xfAB822EcFEdC440D505F731e78786C4a6b39B553"
    WitnetRequestBoard: "0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA"
conflux:
  conflux.tethys:
    WitnetParserLib: ""
    WitnetRequestBoard: ""
`

const sampleJSON = `{
  "boba": {
    "boba.mainnet": {
      "WitnetParserLib": "0x886CeCB28b5Cea0602f0B81A541d2e9992055a00",
      "WitnetRequestBoard": "0xd3AD9a4b26527E3bA5Fc60B75Eb002D47D98e292"
    }
  }
}`

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("addresses.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("/etc/witnet/ADDRESSES.YML"))
	assert.Equal(t, FormatJSON, FormatFromPath("addresses.json"))
	assert.Equal(t, FormatJSON, FormatFromPath("/download"))
}

func TestDecodeYAML(t *testing.T) {
	table, err := Decode([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", table["default"]["ethereum.mainnet"][entity.WitnetRequestBoard])
	tethys := table["conflux"]["conflux.tethys"]
	require.Contains(t, tethys, entity.WitnetParserLib)
	assert.Empty(t, tethys[entity.WitnetParserLib])
}

func TestDecodeJSON(t *testing.T) {
	table, err := Decode([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "0xd3AD9a4b26527E3bA5Fc60B75Eb002D47D98e292", table["boba"]["boba.mainnet"][entity.WitnetRequestBoard])
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("{"), FormatJSON)
	assert.Error(t, err)
	_, err = Decode([]byte("default: [1, 2"), FormatYAML)
	assert.Error(t, err)
	_, err = Decode([]byte(""), FormatYAML)
	assert.Error(t, err)
	_, err = Decode([]byte("{}"), Format("toml"))
	assert.Error(t, err)

	// Duplicate keys are structural errors in YAML.
	_, err = Decode([]byte("boba:\n  boba.mainnet: {}\n  boba.mainnet: {}\n"), FormatYAML)
	assert.Error(t, err)
}

func TestDecodeJSONRejectsDuplicateKeys(t *testing.T) {
	network := `{
  "boba": {
    "boba.mainnet": {"WitnetRequestBoard": "0xd3AD9a4b26527E3bA5Fc60B75Eb002D47D98e292"},
    "boba.mainnet": {"WitnetRequestBoard": "0x58D8ECe142c60f5707594a7C1D90e46eAE5AF431"}
  }
}`
	_, err := Decode([]byte(network), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate key "boba.mainnet"`)

	contract := `{"boba": {"boba.mainnet": {
  "WitnetRequestBoard": "0xd3AD9a4b26527E3bA5Fc60B75Eb002D47D98e292",
  "WitnetRequestBoard": "0x58D8ECe142c60f5707594a7C1D90e46eAE5AF431"
}}}`
	_, err = Decode([]byte(contract), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate key "WitnetRequestBoard" in $.boba.boba.mainnet`)

	ecosystem := `{"celo": {}, "celo": {}}`
	_, err = Decode([]byte(ecosystem), FormatJSON)
	assert.Error(t, err)

	// The same key under different parents is fine.
	_, err = Decode([]byte(`{"boba": {"x": {}}, "celo": {"x": {}}}`), FormatJSON)
	assert.NoError(t, err)
}

func TestEncodeDecodeBuiltInTable(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML} {
		data, err := Encode(addressbook.Default(), format)
		require.NoError(t, err)
		back, err := Decode(data, format)
		require.NoError(t, err)
		assert.Equal(t, addressbook.Default(), back, string(format))
	}
}
