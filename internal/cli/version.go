// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the mpkg release, set with -ldflags at build time
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "mpkg version %s\n", Version)
		fmt.Fprintln(out, "Multi Package Manager")
		fmt.Fprintln(out, "https://github.com/arc-language/mpkg")
	},
}
