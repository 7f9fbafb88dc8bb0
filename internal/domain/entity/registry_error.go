package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an ecosystem, network or contract is absent,
	// or when the stored address is the empty "not deployed" placeholder.
	ErrNotFound = errors.New("address not found")
	// ErrUnknownEcosystem is returned when the requested ecosystem key does not exist.
	ErrUnknownEcosystem = errors.New("unknown ecosystem")
	// ErrMalformedAddress is returned for a non-empty value that is not a 0x-prefixed 20-byte hex string.
	ErrMalformedAddress = errors.New("malformed address")
)

// LookupReason tells which step of a lookup failed.
type LookupReason string

const (
	ReasonUnknownEcosystem LookupReason = "unknown_ecosystem"
	ReasonUnknownNetwork   LookupReason = "unknown_network"
	ReasonUnknownContract  LookupReason = "unknown_contract"
	ReasonNotDeployed      LookupReason = "not_deployed"
)

// LookupError describes a failed lookup. It always matches ErrNotFound, and
// additionally ErrUnknownEcosystem when the ecosystem key is missing.
type LookupError struct {
	Ecosystem string
	Network   string
	Contract  ContractName
	Reason    LookupReason
}

func (e *LookupError) Error() string {
	switch e.Reason {
	case ReasonUnknownEcosystem:
		return fmt.Sprintf("%s: %q", ErrUnknownEcosystem, e.Ecosystem)
	case ReasonUnknownNetwork:
		return fmt.Sprintf("%s: network %q not in ecosystem %q", ErrNotFound, e.Network, e.Ecosystem)
	case ReasonUnknownContract:
		return fmt.Sprintf("%s: contract %s not registered on %s", ErrNotFound, e.Contract, e.Network)
	case ReasonNotDeployed:
		return fmt.Sprintf("%s: contract %s not deployed on %s", ErrNotFound, e.Contract, e.Network)
	default:
		return ErrNotFound.Error()
	}
}

// Is makes errors.Is(err, ErrNotFound) hold for every LookupError.
func (e *LookupError) Is(target error) bool {
	if target == ErrNotFound {
		return true
	}
	return target == ErrUnknownEcosystem && e.Reason == ReasonUnknownEcosystem
}

// AddressError reports a malformed address value found in a table.
type AddressError struct {
	Ecosystem string
	Network   string
	Contract  ContractName
	Value     string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("%s: %s on %s/%s has value %q", ErrMalformedAddress, e.Contract, e.Ecosystem, e.Network, e.Value)
}

func (e *AddressError) Unwrap() error {
	return ErrMalformedAddress
}
