package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsAddress reports whether s is a 0x-prefixed, 40 hex character address.
// Case is not checked: mixed-case values are accepted as stored.
func IsAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	return common.IsHexAddress(s)
}

// ToAddress converts a validated address string into a common.Address.
func ToAddress(s string) (common.Address, bool) {
	if !IsAddress(s) {
		return common.Address{}, false
	}
	return common.HexToAddress(s), true
}

// ChecksumHex returns the EIP-55 checksummed form of a valid address.
func ChecksumHex(s string) (string, bool) {
	addr, ok := ToAddress(s)
	if !ok {
		return "", false
	}
	return addr.Hex(), true
}
