// Package cli provides the linesample command line surface.
package cli

import (
	"bufio"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/warpstreamlabs/linesample/internal/input"
	"github.com/warpstreamlabs/linesample/internal/log"
	"github.com/warpstreamlabs/linesample/internal/output"
	"github.com/warpstreamlabs/linesample/internal/sampler"
)

var red = color.New(color.FgRed).SprintFunc()

// App returns the linesample command.
func App(opts *CLIOpts) *cli.App {
	return &cli.App{
		Name:      "linesample",
		Usage:     "Randomly sample lines from a file in a single pass",
		ArgsUsage: "[file]",
		Version:   opts.Version,
		Description: `
Samples a subset of lines from a file, or from stdin when the file argument
is '-' or omitted, preserving the original order of lines:

  linesample -f 0.01 ./http.log

  kubectl logs my-pod | linesample -n 100

Sampling requires a single pass regardless of mode, so inputs larger than
memory are fine. Gzip compressed files are decompressed on the fly. Provide a
seed to make a run reproducible.`[1:],
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:    "fraction",
				Aliases: []string{"f"},
				Usage:   "probability with which each line is selected, between 0.0 and 1.0.",
			},
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Usage:   "maximum number of lines to select, chosen uniformly at random.",
			},
			&cli.Int64Flag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "seed for the random number generator, omit for a time-derived seed.",
			},
			&cli.IntFlag{
				Name:  "max-line-length",
				Usage: "Set the buffer size for input lines.",
				Value: bufio.MaxScanTokenSize,
			},
			&cli.StringFlag{
				Name:  "log.level",
				Usage: "Override the default log level (OFF, ERROR, WARN, INFO, DEBUG, TRACE).",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, opts)
		},
	}
}

func run(c *cli.Context, opts *CLIOpts) error {
	params := sampler.Params{}
	if c.IsSet("fraction") {
		v := c.Float64("fraction")
		params.Fraction = &v
	}
	if c.IsSet("number") {
		v := c.Int("number")
		params.Number = &v
	}
	if c.IsSet("seed") {
		v := c.Int64("seed")
		params.Seed = &v
	}

	// Parameter arbitration happens before the input is opened so that usage
	// errors never consume any of the stream.
	if err := params.Validate(); err != nil {
		fmt.Fprintln(opts.Stderr, red(err.Error()))
		fmt.Fprintf(opts.Stderr, "Run '%v --help' for usage.\n", c.App.Name)
		return err
	}

	logger, err := createLogger(c, opts)
	if err != nil {
		fmt.Fprintln(opts.Stderr, red(err.Error()))
		return err
	}

	path := input.StdinPath
	if c.Args().Len() > 0 {
		path = c.Args().First()
	}

	in, err := input.Open(path, input.WithMaxLineLength(c.Int("max-line-length")))
	if err != nil {
		logger.Fatal("%v", err)
		return err
	}
	defer in.Close()

	stats, err := sampler.Run(params, in, output.NewWriter(opts.Stdout), logger)
	if err != nil {
		logger.Fatal("Sampling failed: %v", err)
		return err
	}

	logger.Debug(
		"Selected %v of %v lines",
		humanize.Comma(stats.LinesEmitted), humanize.Comma(stats.LinesRead),
	)
	return nil
}

func createLogger(c *cli.Context, opts *CLIOpts) (log.Modular, error) {
	conf := log.NewConfig()
	if overrideLogLevel := c.String("log.level"); overrideLogLevel != "" {
		conf.LogLevel = overrideLogLevel
	}

	// Sampled lines own stdout; all logging goes to the error stream.
	logger, err := log.New(opts.Stderr, conf)
	if err != nil {
		return nil, err
	}
	return opts.OnLoggerInit(logger)
}
