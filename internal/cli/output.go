// internal/cli/output.go
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/arc-language/mpkg/pkg/core"
	"github.com/arc-language/mpkg/pkg/manager"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// packageEntry is the JSON form of a listed package
type packageEntry struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	PURL    string `json:"purl"`
	Manager string `json:"manager"`
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printTable renders rows as a bordered table on a terminal and as
// tab-separated lines otherwise
func printTable(w io.Writer, headers []string, rows [][]string) {
	if !isTerminal(w) {
		for _, row := range rows {
			fmt.Fprintln(w, strings.Join(row, "\t"))
		}
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	fmt.Fprintln(w, t)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPackages drains it and prints the packages for id
func printPackages(w io.Writer, id manager.ID, it *core.PackageIter) error {
	pkgs := it.Collect()

	if config.JSON {
		entries := make([]packageEntry, 0, len(pkgs))
		for _, p := range pkgs {
			entries = append(entries, packageEntry{
				Name:    p.Name(),
				Version: p.Version(),
				PURL:    manager.PURL(id, p),
				Manager: string(id),
			})
		}
		return printJSON(w, entries)
	}

	rows := make([][]string, 0, len(pkgs))
	for _, p := range pkgs {
		rows = append(rows, []string{p.Name(), p.Version()})
	}
	printTable(w, []string{"NAME", "VERSION"}, rows)
	return nil
}
