package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run always returns 0. A prompt decoration must never make the shell
// report a failing command.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := &cobra.Command{
		Use:   "promptline",
		Short: "Print a git summary for the shell prompt",
		Long:  "Print the branch, revision, working tree status and in-progress operation of the git repository containing the current directory, formatted for a shell prompt.",
		// Arguments are ignored, including anything that looks like a flag.
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgErr := LoadConfig()
			logger := newLogger(cfg, stderr)
			if cfgErr != nil {
				logger.Debug("using default config", "err", cfgErr)
			}

			fmt.Fprint(stdout, prompt(cfg, logger))
			return nil
		},
	}

	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	_ = rootCmd.Execute()
	return 0
}

func newLogger(cfg *Config, stderr io.Writer) *slog.Logger {
	if !cfg.Debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// prompt builds the whole prompt line. It is the only place that turns
// errors into fallback output.
func prompt(cfg *Config, logger *slog.Logger) (out string) {
	p := newPalette(cfg.Color)

	defer func() {
		if r := recover(); r != nil {
			logger.Debug("aborting", "panic", r)
			out = ""
		}
	}()

	cwd, err := os.Getwd()
	if err != nil {
		logger.Debug("failed to get current directory", "err", err)
		return ""
	}

	snap, err := openSnapshot(cfg.Backend, cwd)
	if err != nil {
		logger.Debug("no repository", "backend", cfg.Backend, "err", err)
		return ""
	}

	summary, err := summarize(snap, logger)
	switch {
	case errors.Is(err, errUnresolvableHead):
		logger.Debug("no head", "err", err)
		return p.noHead()
	case errors.Is(err, errMalformedBranch):
		logger.Debug("malformed branch", "err", err)
		return p.malformedBranch()
	case err != nil:
		logger.Debug("summary failed", "err", err)
		return ""
	}

	return p.render(summary)
}

// openSnapshot opens the repository containing dir with the configured backend
func openSnapshot(backend, dir string) (Snapshot, error) {
	switch backend {
	case BackendGoGit:
		repo, err := openGoGit(dir)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		repo, err := openCLI(dir)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}
