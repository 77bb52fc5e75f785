// Command wpmigrate exports a WordPress site to Markdown files.
package main

import (
	"os"

	"github.com/custodia-labs/wpmigrate/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
