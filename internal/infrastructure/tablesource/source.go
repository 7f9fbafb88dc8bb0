// Package tablesource loads address tables from the binary, local files or HTTP.
package tablesource

import (
	"strings"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/config"
)

// New picks a source for cfg.Source: "embedded", an http(s) URL, or a file path.
func New(cfg config.RegistryConfig, log port.Logger) (port.TableSource, error) {
	src := strings.TrimSpace(cfg.Source)
	switch {
	case src == "" || src == config.SourceEmbedded:
		return NewEmbeddedSource(), nil
	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		return NewHTTPSource(src, cfg.RequestTimeout(), log)
	default:
		return NewFileSource(src, log), nil
	}
}
