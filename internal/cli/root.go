package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dsrt-go/dsrt/internal/host"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose     bool
	Format      string // "json" | "text"
	WASMDir     string // directory holding dsrt.wasm; empty uses host defaults
	RequireWASM bool

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the DSRT CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "dsrt",
		Short:         "DSRT vector/matrix kernel",
		Long:          "Evaluate and check the DSRT vector and 4x4 matrix kernels, natively or through dsrt.wasm.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.WASMDir, "wasm-dir", "", "directory containing dsrt.wasm (default $"+host.EnvWASMDir+" or "+host.DefaultBaseDir+")")
	cmd.PersistentFlags().BoolVar(&opts.RequireWASM, "require-wasm", false, "fail instead of falling back to the native kernel")

	cmd.AddCommand(NewVersionCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// Logger returns the logger configured by the root command.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// formatter builds an OutputFormatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// loadKernel resolves the kernel according to the global flags.
func (o *RootOptions) loadKernel(ctx context.Context) (host.Kernel, error) {
	hopts := host.DefaultOptions()
	if o.WASMDir != "" {
		hopts.BaseDir = o.WASMDir
	}
	hopts.RequireWASM = o.RequireWASM
	hopts.Logger = o.Logger()

	k, err := host.Load(ctx, hopts)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load kernel", err)
	}
	o.Logger().Debug("kernel ready", "kernel", k.Name())
	return k, nil
}
