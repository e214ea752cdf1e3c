package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsrt-go/dsrt/internal/host"
)

// VersionInfo is the payload of the version command.
type VersionInfo struct {
	Version string   `json:"version"`
	Exports []string `json:"exports"`
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("DSRT v%s", v.Version)
}

// NewVersionCommand creates the version command.
func NewVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.formatter(cmd).Success(VersionInfo{
				Version: host.Version,
				Exports: OpNames(),
			})
		},
	}
}
