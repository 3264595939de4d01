// cmd/mpkg/main.go
package main

import (
	"os"

	"github.com/arc-language/mpkg/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
