// internal/cli/managers.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/mpkg/pkg/manager"
	"github.com/arc-language/mpkg/pkg/platform"
)

type managerEntry struct {
	Name      string   `json:"name"`
	Binary    string   `json:"binary"`
	Available bool     `json:"available"`
	Preferred bool     `json:"preferred"`
	Path      string   `json:"path,omitempty"`
	Commands  []string `json:"commands"`
}

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "List supported package managers and which are installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plat, err := platform.NewDetector(runner, logger()).Detect(cmd.Context())
		if err != nil {
			return fmt.Errorf("detecting platform: %w", err)
		}

		var entries []managerEntry
		for _, id := range manager.All {
			var cmds []string
			for _, c := range manager.Supported(id) {
				cmds = append(cmds, c.String())
			}
			entries = append(entries, managerEntry{
				Name:      string(id),
				Binary:    id.Binary(),
				Available: plat.Has(id),
				Preferred: plat.Preferred == id,
				Path:      plat.Verified(id).Path(),
				Commands:  cmds,
			})
		}

		out := cmd.OutOrStdout()
		if config.JSON {
			return printJSON(out, entries)
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			status := "-"
			if e.Available {
				status = "✓"
			}
			if e.Preferred {
				status += " *"
			}
			rows = append(rows, []string{e.Name, e.Binary, status, strings.Join(e.Commands, ",")})
		}
		printTable(out, []string{"MANAGER", "BINARY", "AVAILABLE", "COMMANDS"}, rows)
		return nil
	},
}
