package outcome

import "log/slog"

// LogValue implements slog.LogValuer, allowing an Error to be logged
// directly as a structured value. The package itself never logs.
func (e Error) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("code", e.Value()),
		slog.String("category", e.CategoryName()),
		slog.String("message", e.Message()),
	)
}

// Ensure Error implements slog.LogValuer at compile time.
var _ slog.LogValuer = Error{}
