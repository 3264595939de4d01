// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/arc-language/mpkg"
	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/executor"
	"github.com/arc-language/mpkg/pkg/manager"
	"github.com/arc-language/mpkg/pkg/platform"
	"github.com/arc-language/mpkg/pkg/registry"
	"github.com/arc-language/mpkg/pkg/verify"
)

var (
	cfgFile     string
	managerName string
	jsonOut     bool
	debug       bool
	sudo        bool
	aliasesDir  string
	config      *core.Config

	// runner is the process boundary; nil uses the host
	runner executor.Runner
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "mpkg",
	Short: "One interface for every package manager",
	Long: `mpkg - a single command line over brew, choco, apt, dnf, yum, zypper,
flatpak, nix, pacman, apk and winget.

The package manager is auto-detected unless --manager is given.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return ExitCode(err)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mpkg/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&managerName, "manager", "m", "", "package manager to use ("+joinNames()+")")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&sudo, "sudo", false, "run mutating commands through sudo (Linux, managers that need root)")
	rootCmd.PersistentFlags().StringVar(&aliasesDir, "aliases", "", "alias registry directory")

	// Add commands
	rootCmd.AddCommand(managersCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if managerName != "" {
		config.DefaultManager = managerName
	}
	if debug {
		config.Debug = true
	}
	if sudo {
		config.Sudo = true
	}
	if jsonOut {
		config.JSON = true
	}
	if aliasesDir != "" {
		config.AliasesPath = aliasesDir
	}
}

func logger() *log.Logger {
	if config != nil && config.Debug {
		return log.New(os.Stderr, "[mpkg] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

// session is a resolved manager ready to run commands
type session struct {
	id  manager.ID
	pm  *mpkg.VerifiedPackageManager
	out io.Writer
	err io.Writer
}

// openSession detects the platform, picks the manager and verifies it
func openSession(cmd *cobra.Command, stream bool) (*session, error) {
	ctx := cmd.Context()
	l := logger()

	if config.DefaultManager != "" {
		if _, err := manager.ParseID(config.DefaultManager); err != nil {
			return nil, unknownManager(config.DefaultManager, err)
		}
	}

	plat, err := platform.NewDetector(runner, l).Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detecting platform: %w", err)
	}
	l.Printf("Platform: %s", plat)

	id, err := platform.Resolve(plat, config.DefaultManager)
	if err != nil {
		return nil, err
	}

	token := plat.Verified(id)
	if token == nil {
		var ok bool
		if token, ok = verify.New(runner, l).Verify(ctx, id); !ok {
			return nil, fmt.Errorf("%w: %s", core.ErrManagerNotAvailable, id)
		}
	}

	opts := []mpkg.Option{
		mpkg.WithRunner(runner),
		mpkg.WithLogger(l),
		mpkg.WithSudo(config.Sudo),
	}
	if stream {
		opts = append(opts, mpkg.WithStream(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	}
	for _, c := range core.AllCmds {
		if flags := config.ExtraFlagsFor(string(id), c); len(flags) > 0 {
			opts = append(opts, mpkg.WithExtraFlags(c, flags...))
		}
	}
	if config.AliasesPath != "" {
		if st, err := os.Stat(config.AliasesPath); err == nil && st.IsDir() {
			opts = append(opts, mpkg.WithResolver(registry.New(config.AliasesPath)))
		}
	}

	pm, err := mpkg.NewVerified(token, opts...)
	if err != nil {
		return nil, err
	}
	l.Printf("Using manager: %s (%s)", id, token.Path())

	return &session{id: id, pm: pm, out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}, nil
}

// finish reports the outcome of a mutating command, echoing the command
// line that ran on failure. A non-zero status becomes the process exit code.
func (s *session) finish(st mpkg.Status, err error, done string) error {
	if err != nil {
		if st.Line != "" {
			fmt.Fprintf(s.err, "✗ Failed: %s\n", st.Line)
		}
		return err
	}
	if !st.Success() {
		fmt.Fprintf(s.err, "✗ Failed: %s\n", st.Line)
		return &exitError{code: st.Code, err: fmt.Errorf("%s exited with status %d", s.id, st.Code)}
	}
	if done != "" {
		fmt.Fprintf(s.out, "✓ %s\n", done)
	}
	return nil
}
