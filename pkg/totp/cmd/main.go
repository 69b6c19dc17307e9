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
	"runtime"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/otpkit/pkg/logger"
)

// Set via -ldflags at build time:
//
//	go build -ldflags "-X main.version=0.1.0" -o otpkit ./pkg/totp/cmd
var version = "dev"

type cliConfig struct {
	Env   string `env:"OTPKIT_ENV" envDefault:"development"`
	Debug bool   `env:"OTPKIT_DEBUG" envDefault:"false"`
}

type commandKey struct{}

// errMismatch makes verify exit with status 1 without logging an error.
var errMismatch = errors.New("code does not match")

func main() {
	// The .env file is optional.
	_ = godotenv.Load()

	cfg, err := env.ParseAs[cliConfig]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment: %v\n", err)
		os.Exit(2)
	}
	log := newLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, log)
	stop()
	os.Exit(code)
}

func newLogger(cfg cliConfig, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return logger.New(
		logger.WithEnvironment(cfg.Env),
		logger.WithLevel(level),
		logger.WithOutput(w),
		logger.WithContextValue("command", commandKey{}),
	)
}

// run dispatches to a subcommand and returns the process exit code.
func run(ctx context.Context, args []string, out io.Writer, log *slog.Logger) int {
	if len(args) < 1 {
		printUsage(out)
		return 2
	}

	cmd := &command{out: out, log: log}
	var handler func(context.Context, []string) error
	switch args[0] {
	case "secret":
		handler = cmd.runSecret
	case "code":
		handler = cmd.runCode
	case "verify":
		handler = cmd.runVerify
	case "uri":
		handler = cmd.runURI
	case "qr":
		handler = cmd.runQR
	case "watch":
		handler = cmd.runWatch
	case "version", "--version":
		fmt.Fprintf(out, "otpkit %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return 0
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(out, "Unknown command: %s\n\n", args[0])
		printUsage(out)
		return 2
	}

	ctx = context.WithValue(ctx, commandKey{}, args[0])
	err := handler(ctx, args[1:])
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errMismatch):
		log.InfoContext(ctx, "verification failed")
		return 1
	default:
		log.ErrorContext(ctx, "command failed", logger.Error(err))
		return 1
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: otpkit <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  secret [-length N]                         Generate a Base32 secret")
	fmt.Fprintln(w, "  code -secret S [-time T] [-window W]       Print the code for a secret")
	fmt.Fprintln(w, "  code -file accounts.yaml                   Print codes for every account in a file")
	fmt.Fprintln(w, "  verify -secret S -code C [-time T]         Exit 0 if the code is valid")
	fmt.Fprintln(w, "  uri [-secret S] -issuer I -account A       Print an otpauth:// provisioning URI")
	fmt.Fprintln(w, "  qr -uri U [-png FILE] [-size N]            Render a provisioning URI as QR code")
	fmt.Fprintln(w, "  watch -secret S                            Print a fresh code every period")
	fmt.Fprintln(w, "  version                                    Show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Session options (defaults from TOTP_* environment variables):")
	fmt.Fprintln(w, "  -algorithm SHA1|SHA256|SHA384|SHA512  -digits N  -period SECONDS")
	fmt.Fprintln(w, "  -window-range N  -zero-pad")
}
