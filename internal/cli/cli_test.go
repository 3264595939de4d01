package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/executor"
)

// run executes the root command against mock with fresh globals
func run(t *testing.T, mock *executor.Mock, args ...string) (string, string, error) {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("fixtures use linux managers")
	}

	dir := t.TempDir()
	t.Setenv("MPKG_ALIASES_PATH", filepath.Join(dir, "aliases"))

	runner = mock
	cfgFile, managerName, aliasesDir = "", "", ""
	jsonOut, debug, sudo = false, false, false
	installVersion, updateAll = "", false
	t.Cleanup(func() { runner = nil })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yaml")}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func launched(mock *executor.Mock) []string {
	var lines []string
	for _, c := range mock.Calls() {
		if len(c.Args) == 1 && c.Args[0] == "--version" {
			continue
		}
		lines = append(lines, c.Line())
	}
	return lines
}

func TestInstall(t *testing.T) {
	mock := executor.NewMock("apt")
	out, _, err := run(t, mock, "-m", "apt", "install", "git", "jq@1.6")
	if err != nil {
		t.Fatalf("install error = %v", err)
	}

	lines := launched(mock)
	if len(lines) != 1 || lines[0] != "apt install git jq=1.6 -y" {
		t.Errorf("launched = %q", lines)
	}
	if !strings.Contains(out, "✓ install: git jq@1.6") {
		t.Errorf("output = %q", out)
	}
}

func TestInstall_VersionFlag(t *testing.T) {
	mock := executor.NewMock("brew")
	if _, _, err := run(t, mock, "-m", "brew", "install", "node", "--version", "20"); err != nil {
		t.Fatal(err)
	}
	if lines := launched(mock); len(lines) != 1 || lines[0] != "brew install node@20" {
		t.Errorf("launched = %q", lines)
	}
}

func TestInstall_ManagerExitCode(t *testing.T) {
	mock := executor.NewMock("apt")
	mock.Responses["apt install"] = executor.Response{Code: 100}

	_, stderr, err := run(t, mock, "-m", "apt", "install", "nope")
	if got := ExitCode(err); got != 100 {
		t.Errorf("ExitCode = %d, want 100 (err %v)", got, err)
	}
	if !strings.Contains(stderr, "✗ Failed: apt install nope -y") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestInstall_FailureEchoesResolvedCommand(t *testing.T) {
	aliases := t.TempDir()
	if err := os.MkdirAll(filepath.Join(aliases, "sqlite3"), 0755); err != nil {
		t.Fatal(err)
	}
	index := "name = \"sqlite3\"\n\n[backends]\napt = \"libsqlite3-dev\"\n"
	if err := os.WriteFile(filepath.Join(aliases, "sqlite3", "index.toml"), []byte(index), 0644); err != nil {
		t.Fatal(err)
	}

	mock := executor.NewMock("apt")
	mock.Responses["apt install"] = executor.Response{Code: 100}

	_, stderr, err := run(t, mock, "--aliases", aliases, "-m", "apt", "install", "sqlite3")
	if got := ExitCode(err); got != 100 {
		t.Errorf("ExitCode = %d, want 100 (err %v)", got, err)
	}
	if lines := launched(mock); len(lines) != 1 || lines[0] != "apt install libsqlite3-dev -y" {
		t.Errorf("launched = %q", lines)
	}
	if !strings.Contains(stderr, "✗ Failed: apt install libsqlite3-dev -y") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestInstall_InvalidPackage(t *testing.T) {
	mock := executor.NewMock("apt")
	_, _, err := run(t, mock, "-m", "apt", "install", "foo@")
	if got := ExitCode(err); got != ExitInvalid {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, ExitInvalid, err)
	}
	if len(mock.Calls()) != 0 {
		t.Errorf("calls = %+v", mock.Calls())
	}
}

func TestUnknownManager_Suggests(t *testing.T) {
	_, _, err := run(t, executor.NewMock(), "-m", "pacmn", "list")
	if !errors.Is(err, core.ErrUnknownManager) {
		t.Fatalf("error = %v, want ErrUnknownManager", err)
	}
	if !strings.Contains(err.Error(), `did you mean "pacman"?`) {
		t.Errorf("error = %q", err)
	}
	if got := ExitCode(err); got != ExitInvalid {
		t.Errorf("ExitCode = %d", got)
	}
}

func TestManagerNotAvailable(t *testing.T) {
	_, _, err := run(t, executor.NewMock("apt"), "-m", "dnf", "list")
	if got := ExitCode(err); got != ExitNotAvailable {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, ExitNotAvailable, err)
	}
}

func TestRepoAdd_Unsupported(t *testing.T) {
	mock := executor.NewMock("pacman")
	_, _, err := run(t, mock, "-m", "pacman", "repo", "chaotic-aur")
	if got := ExitCode(err); got != ExitUnsupported {
		t.Errorf("ExitCode = %d, want %d (err %v)", got, ExitUnsupported, err)
	}
	if lines := launched(mock); len(lines) != 0 {
		t.Errorf("launched = %q", lines)
	}
}

func TestSearch_JSON(t *testing.T) {
	mock := executor.NewMock("pacman")
	mock.Responses["pacman -Ss ripgrep"] = executor.Response{
		Stdout: "extra/ripgrep 14.1.0-1\n    A search tool\n",
	}

	out, _, err := run(t, mock, "-m", "pacman", "--json", "search", "ripgrep")
	if err != nil {
		t.Fatal(err)
	}

	var entries []packageEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	want := packageEntry{Name: "ripgrep", Version: "14.1.0-1", PURL: "pkg:alpm/ripgrep@14.1.0-1", Manager: "pacman"}
	if len(entries) != 1 || entries[0] != want {
		t.Errorf("entries = %+v, want %+v", entries, want)
	}
}

func TestList_Plain(t *testing.T) {
	mock := executor.NewMock("apt")
	mock.Responses["apt list --installed"] = executor.Response{
		Stdout: "Listing... Done\n" +
			"git/jammy-updates,now 1:2.34.1-1ubuntu1.10 amd64 [installed]\n" +
			"jq/jammy,now 1.6-2.1ubuntu3 amd64 [installed]\n",
	}

	out, _, err := run(t, mock, "-m", "apt", "list")
	if err != nil {
		t.Fatal(err)
	}
	want := "git\t1:2.34.1-1ubuntu1.10\njq\t1.6-2.1ubuntu3\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantRun  []string
	}{
		{name: "all", args: []string{"update", "--all"}, wantRun: []string{"apk upgrade"}},
		{name: "package", args: []string{"update", "curl"}, wantRun: []string{"apk add curl --upgrade"}},
		{name: "all with packages", args: []string{"update", "--all", "curl"}, wantCode: ExitInvalid},
		{name: "nothing", args: []string{"update"}, wantCode: ExitInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := executor.NewMock("apk")
			_, _, err := run(t, mock, append([]string{"-m", "apk"}, tt.args...)...)
			if got := ExitCode(err); got != tt.wantCode {
				t.Fatalf("ExitCode = %d, want %d (err %v)", got, tt.wantCode, err)
			}
			if lines := launched(mock); fmt.Sprint(lines) != fmt.Sprint(tt.wantRun) {
				t.Errorf("launched = %q, want %q", lines, tt.wantRun)
			}
		})
	}
}

func TestRepo_Dnf(t *testing.T) {
	mock := executor.NewMock("dnf")
	url := "https://download.docker.com/linux/fedora/docker-ce.repo"
	out, _, err := run(t, mock, "-m", "dnf", "repo", url)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"dnf install dnf-command(config-manager) -y",
		"dnf config-manager --add-repo " + url,
	}
	if lines := launched(mock); fmt.Sprint(lines) != fmt.Sprint(want) {
		t.Errorf("launched = %q, want %q", lines, want)
	}
	if !strings.Contains(out, "✓ Repository added") {
		t.Errorf("output = %q", out)
	}
}

func TestExtraFlagsFromConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("fixtures use linux managers")
	}
	mock := executor.NewMock("apt")
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := core.DefaultConfig()
	cfg.ExtraFlags["apt"] = map[string][]string{"install": {"--no-install-recommends"}}
	if err := core.SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	// a later --config wins over the one run injects
	if _, _, err := run(t, mock, "--config", path, "-m", "apt", "install", "git"); err != nil {
		t.Fatal(err)
	}
	if lines := launched(mock); len(lines) != 1 || lines[0] != "apt install git -y --no-install-recommends" {
		t.Errorf("launched = %q", lines)
	}
}

func TestManagers_JSON(t *testing.T) {
	out, _, err := run(t, executor.NewMock("apt", "flatpak"), "managers", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var entries []managerEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decoding %q: %v", out, err)
	}
	available := map[string]bool{}
	for _, e := range entries {
		if e.Available {
			available[e.Name] = true
		}
	}
	if len(entries) != 11 || !available["apt"] || !available["flatpak"] || len(available) != 2 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitFailure},
		{&exitError{code: 100, err: errors.New("apt")}, 100},
		{&exitError{code: -1, err: errors.New("signal")}, ExitFailure},
		{fmt.Errorf("x: %w", core.ErrManagerNotAvailable), ExitNotAvailable},
		{&core.UnsupportedError{Manager: "apk", Cmd: core.CmdAddRepo}, ExitUnsupported},
		{core.ErrInvalidPackage, ExitInvalid},
		{core.ErrUnknownManager, ExitInvalid},
		{&core.LaunchError{Binary: "apt", Err: errors.New("exec format error")}, ExitLaunch},
	}

	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
