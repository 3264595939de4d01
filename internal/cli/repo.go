// internal/cli/repo.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"refresh"},
	Short:   "Refresh the package index",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, true)
		if err != nil {
			return err
		}

		st, err := s.pm.Sync(cmd.Context())
		return s.finish(st, err, "Package index refreshed")
	},
}

var repoCmd = &cobra.Command{
	Use:   "repo <repository>",
	Short: "Add a package repository",
	Long: `Add a repository. The argument is passed to the manager as is,
e.g. a .repo URL for dnf and yum or a tap for brew.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, true)
		if err != nil {
			return err
		}

		st, err := s.pm.AddRepo(cmd.Context(), args[0])
		return s.finish(st, err, fmt.Sprintf("Repository added: %s", args[0]))
	},
}
