// Package cli wires the packager and validator into cobra commands.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/wallacegibbon/skillkit/internal/config"
	"github.com/wallacegibbon/skillkit/internal/logging"
)

// errReported marks failures the command already printed
var errReported = errors.New("reported")

// Execute runs cmd and returns the process exit status
func Execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer, s *config.Settings) *slog.Logger {
	return logging.New(w, s.LogLevel)
}

// NewRootCommand returns the combined skillkit command
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "skillkit",
		Short:         "Package and validate skill bundles",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		NewPackCommand("pack"),
		NewValidateCommand("validate"),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "skillkit version %s\n", config.Version)
		},
	}
}
