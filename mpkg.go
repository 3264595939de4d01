// mpkg.go
package mpkg

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/executor"
	"github.com/arc-language/mpkg/pkg/manager"
	"github.com/arc-language/mpkg/pkg/verify"
)

// Re-export core types for convenience
type (
	Package   = core.Package
	Cmd       = core.Cmd
	Operation = core.Operation
	Status    = executor.Status
	Output    = executor.Output
	Child     = executor.Child
	ManagerID = manager.ID
)

// Re-export operations
const (
	OpInstall       = core.OpInstall
	OpUninstall     = core.OpUninstall
	OpUpdate        = core.OpUpdate
	OpUpdateAll     = core.OpUpdateAll
	OpSearch        = core.OpSearch
	OpListInstalled = core.OpListInstalled
)

// ParsePackage parses "name" or "name@version"
func ParsePackage(s string) (Package, error) {
	return core.ParsePackage(s)
}

// engine carries out operations for both tiers. Every error it returns
// is an *Error.
type engine struct {
	id         manager.ID
	backend    manager.Backend
	exec       *executor.Executor
	extraFlags map[core.Cmd][]string
	resolver   Resolver
	logger     *log.Logger
	version    string
}

func newEngine(id manager.ID, version string, opts []Option) *engine {
	o := buildOptions(opts)
	if o.version != "" {
		version = o.version
	}
	return &engine{
		id:         id,
		backend:    id.Backend(),
		exec:       o.executor,
		extraFlags: o.extraFlags,
		resolver:   o.resolver,
		logger:     o.logger,
		version:    version,
	}
}

// execFor returns the executor for cmd. Only mutating commands of
// managers that need root are elevated.
func (e *engine) execFor(cmd core.Cmd) *executor.Executor {
	if cmd.Mutates() && e.backend.NeedsRoot() {
		return e.exec
	}
	return e.exec.Unprivileged()
}

func (e *engine) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var me *Error
	if errors.As(err, &me) {
		return err
	}
	return &Error{Op: op, Manager: string(e.id), Err: err}
}

func (e *engine) ready(op string) error {
	if e.backend == nil {
		return e.wrap(op, fmt.Errorf("%w: %q", core.ErrUnknownManager, string(e.id)))
	}
	return nil
}

// consolidated builds the full argument list for cmd with args as targets
func (e *engine) consolidated(cmd core.Cmd, args []string) ([]string, error) {
	if err := e.ready(cmd.String()); err != nil {
		return nil, err
	}
	row, err := manager.LookupVersion(e.id, e.version, cmd)
	if err != nil {
		return nil, e.wrap(cmd.String(), err)
	}
	out, err := core.Consolidate(cmd, row, args, e.extraFlags[cmd])
	if err != nil {
		var ue *core.UnsupportedError
		if errors.As(err, &ue) {
			ue.Manager = string(e.id)
		}
		return nil, e.wrap(cmd.String(), err)
	}
	return out, nil
}

func (e *engine) targets(pkgs []core.Package) ([]string, error) {
	for _, p := range pkgs {
		if p.IsZero() {
			return nil, &core.ParseError{Input: "", Reason: "empty package name"}
		}
	}
	resolved := pkgs
	if e.resolver != nil {
		resolved = make([]core.Package, len(pkgs))
		for i, p := range pkgs {
			resolved[i] = e.resolver.ResolvePackage(p, e.id)
			if resolved[i] != p {
				e.logger.Printf("Resolved '%s' -> '%s' (%s)", p, resolved[i], e.id)
			}
		}
	}
	return manager.PackageArgs(e.id, resolved), nil
}

func (e *engine) status(ctx context.Context, cmd core.Cmd, args []string) (Status, error) {
	argv, err := e.consolidated(cmd, args)
	if err != nil {
		return Status{Code: -1}, err
	}
	st, err := e.execFor(cmd).ExecStatus(ctx, e.backend.Binary(), argv)
	if err != nil {
		return st, e.wrap(cmd.String(), err)
	}
	if !st.Success() {
		e.logger.Printf("%s %s exited with %d", e.id, cmd, st.Code)
	}
	return st, nil
}

func (e *engine) pkgCommand(ctx context.Context, cmd core.Cmd, pkgs []core.Package) (Status, error) {
	if err := e.ready(cmd.String()); err != nil {
		return Status{Code: -1}, err
	}
	args, err := e.targets(pkgs)
	if err != nil {
		return Status{Code: -1}, e.wrap(cmd.String(), err)
	}
	return e.status(ctx, cmd, args)
}

func (e *engine) executePkgCommand(ctx context.Context, pkgs []core.Package, op core.Operation) (Status, error) {
	switch op {
	case core.OpInstall, core.OpUninstall, core.OpUpdate:
		return e.pkgCommand(ctx, op.Cmd(), pkgs)
	case core.OpUpdateAll:
		if len(pkgs) > 0 {
			return Status{Code: -1}, e.wrap(op.String(), &core.ArgumentError{Cmd: core.CmdUpdateAll, Reason: "update-all takes no targets"})
		}
		return e.status(ctx, core.CmdUpdateAll, nil)
	case core.OpSearch, core.OpListInstalled:
		return Status{Code: -1}, e.wrap(op.String(), &core.ArgumentError{Cmd: op.Cmd(), Reason: "read operations return packages; use Search or ListInstalled"})
	}
	return Status{Code: -1}, e.wrap(op.String(), fmt.Errorf("%w: unknown operation %d", core.ErrInvalidArguments, int(op)))
}

func (e *engine) query(ctx context.Context, cmd core.Cmd, args []string, parse func([]byte) *core.PackageIter) (*core.PackageIter, error) {
	argv, err := e.consolidated(cmd, args)
	if err != nil {
		return nil, err
	}
	out, err := e.execFor(cmd).Exec(ctx, e.backend.Binary(), argv)
	if err != nil {
		return nil, e.wrap(cmd.String(), err)
	}
	// Several managers exit non-zero for an empty result; the output is
	// parsed either way.
	if !out.Status.Success() {
		e.logger.Printf("%s %s exited with %d", e.id, cmd, out.Status.Code)
	}
	return parse(out.Stdout), nil
}

func (e *engine) search(ctx context.Context, q string) (*core.PackageIter, error) {
	if err := e.ready("search"); err != nil {
		return nil, err
	}
	var args []string
	if q != "" {
		args = []string{q}
	}
	return e.query(ctx, core.CmdSearch, args, e.backend.ParseSearch)
}

func (e *engine) listInstalled(ctx context.Context) (*core.PackageIter, error) {
	if err := e.ready("list-installed"); err != nil {
		return nil, err
	}
	return e.query(ctx, core.CmdListInstalled, nil, e.backend.ParseList)
}

func (e *engine) addRepo(ctx context.Context, repo string) (Status, error) {
	if err := e.ready("add-repo"); err != nil {
		return Status{Code: -1}, err
	}
	// Validate before installing anything
	if _, err := e.consolidated(core.CmdAddRepo, []string{repo}); err != nil {
		return Status{Code: -1}, err
	}
	if rp, ok := e.backend.(manager.RepoPreparer); ok {
		if pre := rp.RepoPrerequisites(); len(pre) > 0 {
			st, err := e.status(ctx, core.CmdInstall, manager.PackageArgs(e.id, pre))
			if err != nil || !st.Success() {
				return st, err
			}
		}
	}
	return e.status(ctx, core.CmdAddRepo, []string{repo})
}

// raw returns the executor for caller-built argument lists, whose
// command kind is unknown; they are elevated whenever the manager needs root
func (e *engine) raw() *executor.Executor {
	if e.backend.NeedsRoot() {
		return e.exec
	}
	return e.exec.Unprivileged()
}

func (e *engine) execCmds(ctx context.Context, args []string) (*Output, error) {
	if err := e.ready("exec"); err != nil {
		return nil, err
	}
	out, err := e.raw().Exec(ctx, e.backend.Binary(), args)
	return out, e.wrap("exec", err)
}

func (e *engine) execCmdsStatus(ctx context.Context, args []string) (Status, error) {
	if err := e.ready("exec"); err != nil {
		return Status{Code: -1}, err
	}
	st, err := e.raw().ExecStatus(ctx, e.backend.Binary(), args)
	return st, e.wrap("exec", err)
}

func (e *engine) execCmdsSpawn(args []string) (*Child, error) {
	if err := e.ready("spawn"); err != nil {
		return nil, err
	}
	child, err := e.raw().Spawn(e.backend.Binary(), args)
	return child, e.wrap("spawn", err)
}

// PackageManager is the trusting tier: it assumes the manager is installed.
// Every method panics if the manager binary cannot be launched, the way
// regexp.MustCompile panics on a bad pattern; all other failures are
// returned. Use NewVerified to get launch failures as errors.
type PackageManager struct {
	e *engine
}

// New creates a trusting PackageManager for id
func New(id manager.ID, opts ...Option) *PackageManager {
	return &PackageManager{e: newEngine(id, "", opts)}
}

// mustLaunch panics on launch failures and passes every other error through
func mustLaunch(err error) error {
	if errors.Is(err, core.ErrLaunchFailed) {
		panic(err)
	}
	return err
}

// Manager returns the manager this PackageManager drives
func (pm *PackageManager) Manager() manager.ID { return pm.e.id }

// Consolidated returns the argument list cmd would run with args
func (pm *PackageManager) Consolidated(cmd Cmd, args ...string) ([]string, error) {
	return pm.e.consolidated(cmd, args)
}

// Install installs pkgs
func (pm *PackageManager) Install(ctx context.Context, pkgs ...Package) (Status, error) {
	st, err := pm.e.pkgCommand(ctx, core.CmdInstall, pkgs)
	return st, mustLaunch(err)
}

// Uninstall removes pkgs
func (pm *PackageManager) Uninstall(ctx context.Context, pkgs ...Package) (Status, error) {
	st, err := pm.e.pkgCommand(ctx, core.CmdUninstall, pkgs)
	return st, mustLaunch(err)
}

// Update upgrades pkgs
func (pm *PackageManager) Update(ctx context.Context, pkgs ...Package) (Status, error) {
	st, err := pm.e.pkgCommand(ctx, core.CmdUpdate, pkgs)
	return st, mustLaunch(err)
}

// UpdateAll upgrades every installed package
func (pm *PackageManager) UpdateAll(ctx context.Context) (Status, error) {
	st, err := pm.e.status(ctx, core.CmdUpdateAll, nil)
	return st, mustLaunch(err)
}

// ExecutePkgCommand runs a mutating operation on pkgs
func (pm *PackageManager) ExecutePkgCommand(ctx context.Context, pkgs []Package, op Operation) (Status, error) {
	st, err := pm.e.executePkgCommand(ctx, pkgs, op)
	return st, mustLaunch(err)
}

// Search queries the manager's repositories
func (pm *PackageManager) Search(ctx context.Context, query string) (*core.PackageIter, error) {
	it, err := pm.e.search(ctx, query)
	return it, mustLaunch(err)
}

// ListInstalled lists installed packages
func (pm *PackageManager) ListInstalled(ctx context.Context) (*core.PackageIter, error) {
	it, err := pm.e.listInstalled(ctx)
	return it, mustLaunch(err)
}

// Sync refreshes repository metadata
func (pm *PackageManager) Sync(ctx context.Context) (Status, error) {
	st, err := pm.e.status(ctx, core.CmdSync, nil)
	return st, mustLaunch(err)
}

// AddRepo registers a repository
func (pm *PackageManager) AddRepo(ctx context.Context, repo string) (Status, error) {
	st, err := pm.e.addRepo(ctx, repo)
	return st, mustLaunch(err)
}

// ExecCmds runs the manager with args and captures its output
func (pm *PackageManager) ExecCmds(ctx context.Context, args []string) (*Output, error) {
	out, err := pm.e.execCmds(ctx, args)
	return out, mustLaunch(err)
}

// ExecCmdsStatus runs the manager with args and returns its status
func (pm *PackageManager) ExecCmdsStatus(ctx context.Context, args []string) (Status, error) {
	st, err := pm.e.execCmdsStatus(ctx, args)
	return st, mustLaunch(err)
}

// ExecCmdsSpawn starts the manager with args without waiting
func (pm *PackageManager) ExecCmdsSpawn(args []string) (*Child, error) {
	child, err := pm.e.execCmdsSpawn(args)
	return child, mustLaunch(err)
}

// VerifiedPackageManager is the verified tier. It can only be built from a
// token issued by verify.Verifier and returns launch failures as errors.
type VerifiedPackageManager struct {
	e     *engine
	token *verify.Verified
}

// NewVerified creates a VerifiedPackageManager for the manager v vouches for
func NewVerified(v *verify.Verified, opts ...Option) (*VerifiedPackageManager, error) {
	if !v.Valid() {
		return nil, &Error{Op: "verify", Manager: string(v.Manager()), Err: core.ErrNotVerified}
	}
	return &VerifiedPackageManager{e: newEngine(v.Manager(), v.Version(), opts), token: v}, nil
}

// Manager returns the manager this VerifiedPackageManager drives
func (vm *VerifiedPackageManager) Manager() manager.ID { return vm.e.id }

// Verified returns the token the manager was built from
func (vm *VerifiedPackageManager) Verified() *verify.Verified { return vm.token }

// Consolidated returns the argument list cmd would run with args
func (vm *VerifiedPackageManager) Consolidated(cmd Cmd, args ...string) ([]string, error) {
	return vm.e.consolidated(cmd, args)
}

// Install installs pkgs
func (vm *VerifiedPackageManager) Install(ctx context.Context, pkgs ...Package) (Status, error) {
	return vm.e.pkgCommand(ctx, core.CmdInstall, pkgs)
}

// Uninstall removes pkgs
func (vm *VerifiedPackageManager) Uninstall(ctx context.Context, pkgs ...Package) (Status, error) {
	return vm.e.pkgCommand(ctx, core.CmdUninstall, pkgs)
}

// Update upgrades pkgs
func (vm *VerifiedPackageManager) Update(ctx context.Context, pkgs ...Package) (Status, error) {
	return vm.e.pkgCommand(ctx, core.CmdUpdate, pkgs)
}

// UpdateAll upgrades every installed package
func (vm *VerifiedPackageManager) UpdateAll(ctx context.Context) (Status, error) {
	return vm.e.status(ctx, core.CmdUpdateAll, nil)
}

// ExecutePkgCommand runs a mutating operation on pkgs
func (vm *VerifiedPackageManager) ExecutePkgCommand(ctx context.Context, pkgs []Package, op Operation) (Status, error) {
	return vm.e.executePkgCommand(ctx, pkgs, op)
}

// Search queries the manager's repositories
func (vm *VerifiedPackageManager) Search(ctx context.Context, query string) (*core.PackageIter, error) {
	return vm.e.search(ctx, query)
}

// ListInstalled lists installed packages
func (vm *VerifiedPackageManager) ListInstalled(ctx context.Context) (*core.PackageIter, error) {
	return vm.e.listInstalled(ctx)
}

// Sync refreshes repository metadata
func (vm *VerifiedPackageManager) Sync(ctx context.Context) (Status, error) {
	return vm.e.status(ctx, core.CmdSync, nil)
}

// AddRepo registers a repository
func (vm *VerifiedPackageManager) AddRepo(ctx context.Context, repo string) (Status, error) {
	return vm.e.addRepo(ctx, repo)
}

// ExecCmds runs the manager with args and captures its output
func (vm *VerifiedPackageManager) ExecCmds(ctx context.Context, args []string) (*Output, error) {
	return vm.e.execCmds(ctx, args)
}

// ExecCmdsStatus runs the manager with args and returns its status
func (vm *VerifiedPackageManager) ExecCmdsStatus(ctx context.Context, args []string) (Status, error) {
	return vm.e.execCmdsStatus(ctx, args)
}

// ExecCmdsSpawn starts the manager with args without waiting
func (vm *VerifiedPackageManager) ExecCmdsSpawn(args []string) (*Child, error) {
	return vm.e.execCmdsSpawn(args)
}
