package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <scenario.yaml>...",
		Short: "Run scenario files against the kernel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := opts.Logger()

			scenarios := make([]*Scenario, 0, len(args))
			for _, path := range args {
				sc, err := LoadScenario(path)
				if err != nil {
					return WrapExitError(ExitCommandError, path, err)
				}
				scenarios = append(scenarios, sc)
			}

			k, err := opts.loadKernel(ctx)
			if err != nil {
				return err
			}
			defer k.Close(ctx)

			var report CheckReport
			for _, sc := range scenarios {
				rep := RunScenario(ctx, k, sc)
				logger.Debug("scenario finished",
					"scenario", sc.Name,
					"passed", rep.Passed,
					"failed", rep.Failed,
				)
				report.Scenarios = append(report.Scenarios, rep)
				report.Passed += rep.Passed
				report.Failed += rep.Failed
			}

			if err := opts.formatter(cmd).Success(report); err != nil {
				return err
			}
			if report.Failed > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d step(s) failed", report.Failed))
			}
			return nil
		},
	}
}
