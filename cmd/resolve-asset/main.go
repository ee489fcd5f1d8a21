package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-semantic-release/resolve-asset/internal/config"
	"github.com/go-semantic-release/resolve-asset/internal/resolver"
	"github.com/go-semantic-release/resolve-asset/pkg/release"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version = "dev"

func setupLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// usageError prints the usage to stderr before returning err.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(cmd.UsageString())
	return err
}

// newCommand writes the resolved URL to stdout, everything else goes through log.
func newCommand(log *logrus.Logger, cfg *config.Config, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-asset <project> <tag> <asset-name>",
		Short: "Resolve the download URL of a GitHub release asset",
		Long: `Resolve the browser download URL of the asset named <asset-name> in the
release tagged <tag> of the GitHub project <project> (owner/repo).

The URL is the only output on stdout. Diagnostics are written to stderr.`,
		Version:       version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(3)(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(log, cfg, cmd, args, stdout)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	cmd.Flags().String("api-url", cfg.APIURL, "the GitHub API base URL")
	cmd.Flags().String("log-level", cfg.LogLevel, "the level of diagnostics written to stderr")
	cmd.Flags().SortFlags = false
	cmd.SetFlagErrorFunc(usageError)
	return cmd
}

func run(log *logrus.Logger, cfg *config.Config, cmd *cobra.Command, args []string, stdout io.Writer) error {
	cfg.APIURL = must(cmd.Flags().GetString("api-url"))
	cfg.LogLevel = must(cmd.Flags().GetString("log-level"))
	if err := cfg.ConfigureLogger(log); err != nil {
		return err
	}

	q, err := release.NewQuery(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	ghClient, err := cfg.CreateGitHubClient()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	url, err := resolver.New(log, ghClient).Resolve(ctx, q)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, url)
	return err
}

func execute(args []string, stdout, stderr io.Writer) int {
	log := setupLogger(stderr)
	cfg, err := config.NewConfigFromEnv()
	if err != nil {
		log.Errorf("ERROR: %v", err)
		return 1
	}

	cmd := newCommand(log, cfg, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		log.Errorf("ERROR: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
