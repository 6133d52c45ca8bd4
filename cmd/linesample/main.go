package main

import (
	"os"

	"github.com/warpstreamlabs/linesample/internal/cli"
)

// Version and DateBuilt are set at compile time via -ldflags.
var (
	Version   = "v0.0.0"
	DateBuilt = "1970-01-01T00:00:00Z"
)

func main() {
	opts := cli.NewCLIOpts(Version, DateBuilt)
	if err := cli.App(opts).Run(os.Args); err != nil {
		os.Exit(1)
	}
}
