package host

import "errors"

// Common errors.
var (
	ErrModuleNotFound = errors.New("wasm module not found")
	ErrMissingExport  = errors.New("wasm module is missing a required export")
	ErrMemoryAccess   = errors.New("wasm memory access out of range")
	ErrClosed         = errors.New("kernel is closed")
)
