// Package logging constructs the slog loggers used across photofix and
// provides small attribute helpers so call sites stay uniform.
package logging
