package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAddress(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", true},
		{"0x9e4fae1c7ac543a81e4e2a5486a0ddaad8194bda", true},
		{"9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", false},
		{"0X9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", false},
		{"0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bd", false},
		{"0x9E4fae1c7ac543a81E4E2a5486a0dDaad8194bdAA", false},
		{"0xZZ4fae1c7ac543a81E4E2a5486a0dDaad8194bdA", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAddress(tt.in), tt.in)
	}
}

func TestChecksumHex(t *testing.T) {
	got, ok := ChecksumHex("0x9e4fae1c7ac543a81e4e2a5486a0ddaad8194bda")
	require.True(t, ok)
	assert.Len(t, got, 42)

	again, ok := ChecksumHex(got)
	require.True(t, ok)
	assert.Equal(t, got, again)

	_, ok = ChecksumHex("nope")
	assert.False(t, ok)
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"celo": 1, "boba": 2, "default": 3, "conflux": 4}
	assert.Equal(t, []string{"boba", "celo", "conflux", "default"}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
