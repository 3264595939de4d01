// internal/cli/search.go
package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for packages",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}

		it, err := s.pm.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		return printPackages(s.out, s.id, it)
	},
}
