package tablesource

import (
	"context"

	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/infrastructure/addressbook"
)

// EmbeddedSource serves the table compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource returns the built-in table source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

func (*EmbeddedSource) Load(context.Context) (entity.AddressTable, error) {
	return addressbook.Default(), nil
}

func (*EmbeddedSource) Name() string {
	return "embedded"
}
