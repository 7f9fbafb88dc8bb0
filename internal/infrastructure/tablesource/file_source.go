package tablesource

import (
	"context"
	"fmt"
	"os"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/domain/entity"
)

// FileSource reads the table from a JSON or YAML file on every Load.
type FileSource struct {
	path   string
	format Format
	logger port.Logger
}

// NewFileSource creates a FileSource; the format follows the file extension.
func NewFileSource(path string, log port.Logger) *FileSource {
	if log == nil {
		log = port.NopLogger{}
	}
	return &FileSource{path: path, format: FormatFromPath(path), logger: log}
}

func (s *FileSource) Load(ctx context.Context) (entity.AddressTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read address table file %s: %w", s.path, err)
	}
	table, err := Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	s.logger.Info("Address table loaded from file", "path", s.path, "format", string(s.format), "ecosystems", len(table))
	return table, nil
}

func (s *FileSource) Name() string {
	return s.path
}
