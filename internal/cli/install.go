// internal/cli/install.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/mpkg/pkg/core"
)

var (
	installVersion string
	updateAll      bool
)

var installCmd = &cobra.Command{
	Use:   "install <package[@version]>...",
	Short: "Install one or more packages",
	Long: `Install packages using the configured or auto-detected manager.

Examples:
  mpkg install wget
  mpkg install wget -m nix
  mpkg install nginx@1.24.0
  mpkg install jq --version 1.7.1
  mpkg install python3 nodejs golang`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:     "uninstall <package>...",
	Aliases: []string{"remove", "rm"},
	Short:   "Uninstall one or more packages",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPkgCommand(cmd, core.OpUninstall, args, "")
	},
}

var updateCmd = &cobra.Command{
	Use:     "update [package...]",
	Aliases: []string{"upgrade"},
	Short:   "Update packages, or everything with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case updateAll && len(args) > 0:
			return fmt.Errorf("%w: --all takes no packages", core.ErrInvalidArguments)
		case updateAll:
			return runUpdateAll(cmd)
		case len(args) == 0:
			return fmt.Errorf("%w: name a package or pass --all", core.ErrInvalidArguments)
		}
		return runPkgCommand(cmd, core.OpUpdate, args, "")
	},
}

func init() {
	installCmd.Flags().StringVar(&installVersion, "version", "", "specific version to install (single package only)")
	updateCmd.Flags().BoolVar(&updateAll, "all", false, "update every installed package")
}

func runInstall(cmd *cobra.Command, args []string) error {
	if installVersion != "" && len(args) != 1 {
		return fmt.Errorf("%w: --version applies to a single package", core.ErrInvalidArguments)
	}
	return runPkgCommand(cmd, core.OpInstall, args, installVersion)
}

// runPkgCommand applies op to the packages named by specs
func runPkgCommand(cmd *cobra.Command, op core.Operation, specs []string, version string) error {
	pkgs, err := core.ParsePackages(specs)
	if err != nil {
		return err
	}
	if version != "" {
		if pkgs[0].HasVersion() {
			return fmt.Errorf("%w: version given twice for %s", core.ErrInvalidArguments, pkgs[0].Name())
		}
		pkgs[0] = core.NewPackage(pkgs[0].Name(), version)
	}

	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}

	names := make([]string, len(pkgs))
	for i, p := range pkgs {
		names[i] = p.String()
	}
	fmt.Fprintf(s.out, "Running %s with %s: %s\n", op, s.id, strings.Join(names, " "))

	st, err := s.pm.ExecutePkgCommand(cmd.Context(), pkgs, op)
	return s.finish(st, err, fmt.Sprintf("%s: %s", op, strings.Join(names, " ")))
}

func runUpdateAll(cmd *cobra.Command) error {
	s, err := openSession(cmd, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Updating all packages with %s\n", s.id)
	st, err := s.pm.UpdateAll(cmd.Context())
	return s.finish(st, err, "All packages updated")
}
