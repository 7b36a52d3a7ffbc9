// Command drills lists, runs and demonstrates the drills catalog.
//
// Version information is set at build time:
//
//	go build -ldflags "-X github.com/conduit-lang/drills/internal/cli/commands.Version=v1.0.0" ./cmd/drills
package main

import (
	"os"

	"github.com/conduit-lang/drills/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
