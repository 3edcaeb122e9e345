// Package main provides the shelf CLI.
package main

import (
	"os"

	"github.com/mesh-intelligence/bookshelf/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
