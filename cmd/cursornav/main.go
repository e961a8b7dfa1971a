package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"example.com/cursornav/internal/app"
	"example.com/cursornav/pkg/buffer"
	"example.com/cursornav/pkg/config"
	"example.com/cursornav/pkg/logs"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var errNotTerminal = errors.New("stdin and stdout must be a terminal")

// isTerminal is replaced in tests.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type options struct {
	configPath string
	logFile    string
	lines      int
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "cursornav [file]",
		Short: "Move a cursor around a read-only document in the terminal",
		Long: `cursornav shows a document in the terminal and lets you move the cursor
with the arrow keys. Press q to quit. Without a file argument a sample
document is shown.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := prepare(opts, args)
			if err != nil {
				return err
			}
			if !isTerminal(os.Stdin.Fd()) || !isTerminal(os.Stdout.Fd()) {
				r.Fini()
				return errNotTerminal
			}
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ~/.cursornav/config.yaml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append JSON event log to this file")
	cmd.Flags().IntVarP(&opts.lines, "lines", "n", 10, "number of lines in the sample document")
	return cmd
}

// prepare loads the document, configuration and logger without touching
// the terminal.
func prepare(opts *options, args []string) (*app.Runner, error) {
	buf, err := loadDocument(opts, args)
	if err != nil {
		return nil, err
	}
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	logger, err := openLogger(opts.logFile, cfg.LogFile)
	if err != nil {
		return nil, err
	}
	r := app.New(buf, cfg)
	r.Logger = logger
	return r, nil
}

func loadDocument(opts *options, args []string) (*buffer.Buffer, error) {
	if len(args) == 1 {
		buf, err := buffer.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("open document: %w", err)
		}
		return buf, nil
	}
	if opts.lines < 1 {
		return nil, fmt.Errorf("--lines must be at least 1, got %d", opts.lines)
	}
	return buffer.New(sampleLines(opts.lines))
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return config.Load(path)
}

// openLogger prefers the flag, then the config file, then the environment.
func openLogger(flagPath, cfgPath string) (*logs.Logger, error) {
	for _, path := range []string{flagPath, cfgPath} {
		if path != "" {
			l, err := logs.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open log: %w", err)
			}
			return l, nil
		}
	}
	return logs.NewFromEnv(), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	switch {
	case err == nil:
	case errors.Is(err, app.ErrInterrupted):
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
