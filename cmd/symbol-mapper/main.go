// Package main provides the CLI entrypoint for symbol-mapper.
//
// symbol-mapper builds mapping containers from the sources named in a job
// file and:
//   - exports one container, or a merge of several, as a tiny v2 table
//   - validates sources without building a model
//   - searches container names approximately
//
// Defaults for -config and -out are read from SYMBOL_MAPPER_CONFIG and
// SYMBOL_MAPPER_OUTPUT, also loaded from a .env file when present.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
)

const (
	envConfig = "SYMBOL_MAPPER_CONFIG"
	envOutput = "SYMBOL_MAPPER_OUTPUT"
)

var errUsage = errors.New("usage")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	switch {
	case err == nil:
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "symbol-mapper:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "export":
		return runExport(ctx, rest, stdout, stderr)
	case "validate":
		return runValidate(ctx, rest, stdout, stderr)
	case "search":
		return runSearch(ctx, rest, stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "symbol-mapper - build, merge and search JVM symbol mappings")
	fmt.Fprintln(w, "Commands: export | validate | search")
	fmt.Fprintln(w, "Run with <command> -help for usage information")
}

// commonFlags are shared by every command.
type commonFlags struct {
	config  string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.config, "config", os.Getenv(envConfig), "path to the job file (env "+envConfig+")")
	fs.BoolVar(&c.verbose, "v", false, "log debug diagnostics")
}

func (c *commonFlags) logger(stderr io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
