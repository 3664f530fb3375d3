package main

import (
	"fmt"
	"os"

	"github.com/idelchi/sizewise/internal/cli"
)

// version is the build version of the application.
//
//nolint:gochecknoglobals // Set by the build system
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		os.Exit(1)
	}
}
