package cli

import (
	"github.com/spf13/cobra"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> [numbers...]",
		Short: "Evaluate one kernel operation",
		Long: `Evaluate one kernel operation and print its result.

Vector operations take scalar components (cross takes ax ay az bx by bz).
Matrix operations take 16 row-major values per matrix. Put -- before
the operation when an argument is negative.`,
		Example: `  dsrt eval cross 1 0 0 0 1 0
  dsrt eval mat4Identity --format json
  dsrt eval -- normalize -3 0 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			vals, err := ParseArgs(args[1:])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid arguments", err)
			}

			k, err := opts.loadKernel(ctx)
			if err != nil {
				return err
			}
			defer k.Close(ctx)

			res, err := Evaluate(ctx, k, args[0], vals)
			if err != nil {
				return WrapExitError(ExitCommandError, "evaluation failed", err)
			}
			return opts.formatter(cmd).Success(res)
		},
	}
}
