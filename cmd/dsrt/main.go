// Command dsrt evaluates and checks the DSRT vector/matrix kernel.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dsrt-go/dsrt/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
