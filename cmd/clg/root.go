package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/clg/internal/config"
	"github.com/raphi011/clg/internal/log"
	"github.com/raphi011/clg/internal/output"
	"github.com/raphi011/clg/internal/ui/styles"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// configErr is reported once the logger exists.
	configErr error
)

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupUtility = "utility"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clg",
	Short: "Clone repositories into a host/owner/repo tree and jump between them",
	Long: `clg keeps every repository you clone under one root directory, laid out
as {root}/{host}/{owner}/{repo}.

Repositories can be given as URLs, scp-like "git@host:owner/repo" references
or as "owner/repo", which is looked up on github.com.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l := log.New(styles.Writer(os.Stderr), verbose, quiet)
		ctx := log.WithLogger(cmd.Context(), l)

		cfg := config.FromContext(ctx)
		if configErr != nil {
			l.Printf("Warning: %v (using root %s)\n", configErr, cfg.Root)
		}
		l.Debug("loaded config", "root", cfg.Root)

		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	loadedCfg, err := config.Load()
	configErr = err

	// Children receive terminal signals themselves; keep clg alive to report
	// their exit status. Scans stop on the cancelled context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ctx = config.WithConfig(ctx, &loadedCfg)
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	err = rootCmd.Execute()
	cancel()
	os.Exit(exitCode(err))
}

// interruptedCode is the shell convention for termination by SIGINT.
const interruptedCode = 130

// exitCode reports err on stderr and returns the process exit status.
// Soft failures carry their own status and have already been reported.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	if errors.Is(err, context.Canceled) {
		return interruptedCode
	}
	fmt.Fprintf(os.Stderr, "clg: %v\n", err)
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output and external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
	)

	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newLookCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRootDirCmd())
}
