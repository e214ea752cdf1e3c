package host

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyModule is the smallest valid WebAssembly binary: magic and version.
var emptyModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestOptionsPath(t *testing.T) {
	assert.Equal(t, filepath.Join("cdn", "v1", "dsrt.wasm"), Options{}.Path())
	assert.Equal(t, filepath.Join("lib", "k.wasm"), Options{BaseDir: "lib", FileName: "k.wasm"}.Path())
}

func TestDefaultOptions_Env(t *testing.T) {
	t.Setenv(EnvWASMDir, "/opt/dsrt")
	opts := DefaultOptions()
	assert.Equal(t, "/opt/dsrt", opts.BaseDir)
	assert.Equal(t, DefaultFileName, opts.FileName)
	assert.False(t, opts.RequireWASM)
}

func TestLoadWASM_NotFound(t *testing.T) {
	_, err := LoadWASM(context.Background(), filepath.Join(t.TempDir(), "missing.wasm"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestLoadWASMBytes_Invalid(t *testing.T) {
	_, err := LoadWASMBytes(context.Background(), []byte("not wasm"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to compile module")
}

func TestLoadWASMBytes_MissingExport(t *testing.T) {
	_, err := LoadWASMBytes(context.Background(), emptyModule)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingExport)
	assert.Contains(t, err.Error(), "add")
}

func TestLoad_FallsBackToNative(t *testing.T) {
	var logs bytes.Buffer
	opts := Options{
		BaseDir: t.TempDir(),
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
	}

	k, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "native", k.Name())
	assert.Contains(t, logs.String(), "using native kernel")
}

func TestLoad_RequireWASM(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFileName), emptyModule, 0o600))

	_, err := Load(context.Background(), Options{BaseDir: dir, RequireWASM: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingExport)
}

// TestWASM runs the conformance suite against a built module. Build it with
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o /tmp/dsrt.wasm ./cmd/dsrt-wasm
//
// and set DSRT_TEST_WASM=/tmp/dsrt.wasm.
func TestWASM(t *testing.T) {
	path := os.Getenv("DSRT_TEST_WASM")
	if path == "" {
		t.Skip("DSRT_TEST_WASM not set")
	}

	ctx := context.Background()
	k, err := LoadWASM(ctx, path)
	require.NoError(t, err)
	defer k.Close(ctx)

	assert.Equal(t, "wasm", k.Name())
	runConformance(t, k)

	require.NoError(t, k.Close(ctx))
	_, err = k.Add(ctx, 1, 2)
	assert.ErrorIs(t, err, ErrClosed)
}
