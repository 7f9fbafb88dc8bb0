package logger

import "witnet_addresses/internal/app/port"

// slogAdapter implements port.Logger on top of the package-level functions,
// so services receive a logger without depending on this package.
type slogAdapter struct {
	args []any
}

// NewNamedAdapter returns a port.Logger that tags every entry with component=name.
func NewNamedAdapter(name string) port.Logger {
	return &slogAdapter{args: []any{"component", name}}
}

func (a *slogAdapter) with(args []any) []any {
	if len(a.args) == 0 {
		return args
	}
	return append(append(make([]any, 0, len(a.args)+len(args)), a.args...), args...)
}

func (a *slogAdapter) Info(msg string, args ...any) {
	Info(msg, a.with(args)...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	Debug(msg, a.with(args)...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	Warn(msg, a.with(args)...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	Error(msg, a.with(args)...)
}
