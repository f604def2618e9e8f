package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/wallacegibbon/skillkit/internal/config"
	"github.com/wallacegibbon/skillkit/internal/terminal"
	"github.com/wallacegibbon/skillkit/internal/validate"
)

// NewValidateCommand returns the validator command under the given name.
// Without an argument it validates the directory holding the executable.
func NewValidateCommand(use string) *cobra.Command {
	settings := config.FromEnv()

	cmd := &cobra.Command{
		Use:           use + " [skill_directory]",
		Short:         "Check that a skill directory is ready for publication",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := skillDir(args)
			if err != nil {
				return err
			}

			schema, err := settings.Schema()
			if err != nil {
				return err
			}

			v := validate.New(dir, schema)
			v.ShellSyntax = settings.ShellSyntax

			newLogger(cmd.ErrOrStderr(), settings).Debug("validating", "dir", dir, "shell_syntax", v.ShellSyntax)
			if !v.Run(terminal.NewPrinter(cmd.OutOrStdout(), settings.NoColor)) {
				return errReported
			}
			return nil
		},
	}
	settings.BindFlags(cmd.Flags())
	settings.BindValidateFlags(cmd.Flags())
	return cmd
}

func skillDir(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
