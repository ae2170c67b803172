package main

import (
	"PipeGrep/internal"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Exit codes follow the hook contract: 0 no match, 1 match (or negation
// violation), 2 fatal or per-file error.
const (
	exitMatched = 1
	exitFatal   = 2
)

func main() {
	app := &cli.App{
		Name:      "pipegrep",
		Usage:     "Scan files listed on stdin for a pattern, grep-style",
		ArgsUsage: "IGNORE_CASE MULTILINE NEGATE CONCURRENCY PATTERN",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "logfile",
				Usage: "Write diagnostics into file instead of stderr",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn, error",
				Value: "warn",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Error(err)
		os.Exit(exitFatal)
	}
}

func run(c *cli.Context) error {
	internal.InitLogger(c.String("logfile"), c.String("log-level"))

	args := c.Args().Slice()
	if len(args) != 5 {
		return cli.Exit("usage: pipegrep IGNORE_CASE MULTILINE NEGATE CONCURRENCY PATTERN", exitFatal)
	}

	ignoreCase, err := internal.ParseBit("ignore_case", args[0])
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	multiline, err := internal.ParseBit("multiline", args[1])
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	negate, err := internal.ParseBit("negate", args[2])
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}
	concurrency, err := internal.ParseConcurrency(args[3])
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	cfg := internal.ScanConfig{
		IgnoreCase:  ignoreCase,
		Multiline:   multiline,
		Negate:      negate,
		Concurrency: concurrency,
		Pattern:     args[4],
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	// Compile before touching any file: a bad pattern aborts the run
	// with no partial output.
	re, err := internal.CompilePattern(cfg)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sink := internal.NewSink(os.Stdout)
	scanner := internal.NewScanner(cfg, internal.NewProcessor(cfg, re, sink))

	res, err := scanner.Scan(ctx, os.Stdin)
	if err != nil {
		return cli.Exit(err.Error(), exitFatal)
	}

	// An unreadable file means the runner and the repository disagree:
	// fail the run even when the surviving files found no match.
	if res.Errors > 0 {
		return cli.Exit("", exitFatal)
	}
	if res.Matched {
		return cli.Exit("", exitMatched)
	}
	return nil
}
