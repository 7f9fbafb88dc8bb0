package port

import (
	"context"

	"witnet_addresses/internal/domain/entity"
)

// TableSource produces a complete address table. Each call returns a fresh table
// the caller may keep.
type TableSource interface {
	Load(ctx context.Context) (entity.AddressTable, error)
	// Name describes the source in logs, e.g. "embedded" or a file path.
	Name() string
}
