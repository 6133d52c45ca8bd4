package cli

import (
	"io"
	"os"

	"github.com/warpstreamlabs/linesample/internal/log"
)

// CLIOpts carries the build metadata and stream bindings of the command,
// allowing tests to substitute output streams and logger construction.
type CLIOpts struct {
	Version   string
	DateBuilt string

	Stdout io.Writer
	Stderr io.Writer

	OnLoggerInit func(l log.Modular) (log.Modular, error)
}

// NewCLIOpts returns a new CLIOpts with default stream bindings.
func NewCLIOpts(version, dateBuilt string) *CLIOpts {
	return &CLIOpts{
		Version:   version,
		DateBuilt: dateBuilt,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		OnLoggerInit: func(l log.Modular) (log.Modular, error) {
			return l, nil
		},
	}
}
