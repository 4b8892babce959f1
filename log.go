package panes

import "github.com/rs/zerolog"

// logger receives debug events from the resolver and the frame loop.
// It discards everything until SetLogger is called.
var logger = zerolog.Nop()

// SetLogger routes package diagnostics to l.
// Call it before rendering starts; it is not synchronised.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logger returns the package logger.
func Logger() *zerolog.Logger {
	return &logger
}
