package stream

import "log/slog"

// ============================================================================
// SYSTEM CONFIGURATION
// ============================================================================

// DefaultStep is the number of insertions between two window emissions once
// a Buffer has filled.
const DefaultStep = 1

// sanitizeStep ensures the window step is a valid positive integer.
//
// Parameters:
//   step: The requested step.
//
// Returns:
//   int: The step, or DefaultStep if the request was not positive.
func sanitizeStep(step int) int {
	if step <= 0 {
		return DefaultStep
	}
	return step
}

// loggerOrDefault returns l, falling back to the process-wide slog logger.
func loggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
