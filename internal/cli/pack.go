package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wallacegibbon/skillkit/internal/config"
	"github.com/wallacegibbon/skillkit/internal/pack"
)

// NewPackCommand returns the packager command under the given name
func NewPackCommand(use string) *cobra.Command {
	settings := config.FromEnv()

	cmd := &cobra.Command{
		Use:           use + " <skill_directory> [output_path]",
		Short:         "Package a skill directory into a ZIP archive",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) < 1 {
				fmt.Fprintf(out, "Usage: %s <skill_directory> [output_path]\n", cmd.CommandPath())
				return errReported
			}

			opts := pack.Options{
				SkillDir: args[0],
				Logger:   newLogger(cmd.ErrOrStderr(), settings),
			}
			if len(args) > 1 {
				opts.OutputPath = args[1]
			}

			res, err := packSkill(settings, opts)
			if err != nil {
				fmt.Fprintf(out, "Error packaging skill: %v\n", err)
				return errReported
			}

			fmt.Fprintf(out, "Skill packaged successfully: %s\n", res.Path)
			fmt.Fprintf(out, "Package size: %d bytes\n", res.Size)
			return nil
		},
	}
	settings.BindFlags(cmd.Flags())
	return cmd
}

func packSkill(settings *config.Settings, opts pack.Options) (*pack.Result, error) {
	schema, err := settings.Schema()
	if err != nil {
		return nil, err
	}
	opts.Schema = schema
	return pack.Package(opts)
}
