// internal/cli/list.go
package cli

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed packages",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, false)
		if err != nil {
			return err
		}

		it, err := s.pm.ListInstalled(cmd.Context())
		if err != nil {
			return err
		}
		return printPackages(s.out, s.id, it)
	},
}
