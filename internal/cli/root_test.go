package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns stdout.
// The kernel directory points at an empty temp dir, so the native kernel is used.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--wasm-dir", t.TempDir()}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "dsrt", cmd.Use)
	assert.Contains(t, cmd.Long, "dsrt.wasm")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"version", "eval", "check", "batch"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("wasm-dir"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("require-wasm"))
}

func TestBatchFlags(t *testing.T) {
	cmd := NewRootCommand()
	batch, _, err := cmd.Find([]string{"batch"})
	require.NoError(t, err)

	count := batch.Flags().Lookup("count")
	require.NotNil(t, count)
	assert.Equal(t, "n", count.Shorthand)
	assert.Equal(t, "1024", count.DefValue)
	assert.Equal(t, BackendCPU, batch.Flags().Lookup("backend").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, err := runCLI(t, "--format", "xml", "version")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRequireWASM(t *testing.T) {
	_, err := runCLI(t, "--require-wasm", "eval", "add", "1", "2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "failed to load kernel")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))

	wrapped := WrapExitError(ExitFailure, "outer", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
	assert.Equal(t, "outer: "+assert.AnError.Error(), wrapped.Error())
}

func TestOutputFormatter_Error(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}
	require.NoError(t, f.Error("E001", "boom", nil))
	assert.JSONEq(t, `{"status":"error","error":{"code":"E001","message":"boom"}}`, buf.String())

	buf.Reset()
	f = &OutputFormatter{Format: "text", Writer: &buf, Verbose: true}
	require.NoError(t, f.Error("E002", "bad input", "detail"))
	assert.Equal(t, "Error [E002]: bad input\nDetails: detail\n", buf.String())
	assert.Equal(t, &buf, f.ErrOutput())
}
