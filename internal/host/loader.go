package host

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// EnvWASMDir overrides Options.BaseDir when set.
const EnvWASMDir = "DSRT_WASM_DIR"

// Defaults for locating the module.
const (
	DefaultBaseDir  = "cdn/v1"
	DefaultFileName = "dsrt.wasm"
)

// Options controls how Load locates and loads the kernel module.
type Options struct {
	BaseDir     string       // Directory holding the module.
	FileName    string       // Module file name inside BaseDir.
	RequireWASM bool         // Fail instead of falling back to the native kernel.
	Logger      *slog.Logger // Defaults to slog.Default().
}

// DefaultOptions returns options for cdn/v1/dsrt.wasm, honouring
// DSRT_WASM_DIR.
func DefaultOptions() Options {
	dir := DefaultBaseDir
	if env := os.Getenv(EnvWASMDir); env != "" {
		dir = env
	}
	return Options{
		BaseDir:  dir,
		FileName: DefaultFileName,
	}
}

// Path returns the module path the options resolve to.
func (o Options) Path() string {
	dir := o.BaseDir
	if dir == "" {
		dir = DefaultBaseDir
	}
	name := o.FileName
	if name == "" {
		name = DefaultFileName
	}
	return filepath.Join(dir, name)
}

// Load returns a WASM-backed kernel, or the native kernel when the module
// cannot be loaded and opts.RequireWASM is false.
func Load(ctx context.Context, opts Options) (Kernel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	path := opts.Path()
	k, err := LoadWASM(ctx, path)
	if err == nil {
		logger.Debug("wasm kernel loaded", "path", path)
		return k, nil
	}

	if opts.RequireWASM {
		return nil, fmt.Errorf("host: load %s: %w", path, err)
	}

	logger.Warn("wasm load failed, using native kernel",
		"path", path,
		"error", err,
	)
	return Native(), nil
}
