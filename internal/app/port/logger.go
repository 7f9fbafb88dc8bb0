package port

// Logger defines a common logging interface for the application.
type Logger interface {
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NopLogger discards everything. Handy for tests and library callers that bring no logger.
type NopLogger struct{}

func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
