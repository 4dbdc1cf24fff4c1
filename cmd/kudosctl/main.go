// Command kudosctl is the operator CLI of the kudos service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "kudosctl",
		Short:         "operate the kudos service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(rosterCmd(), tokenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
