package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprintdeck/pkg/config"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
)

// configCommand groups the configuration subcommands.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the sprintdeck configuration file",
	}
	cmd.AddCommand(c.configInitCommand())
	return cmd
}

// configInitCommand writes the default configuration.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration file",
		Long: `Write the default configuration file.

The format follows the extension: .toml (default) or .yaml/.yml. Without a
path the file is written as sprintdeck.toml in the working directory, where
every command picks it up automatically.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(c.WorkDir, config.FileNames[0])
			if len(args) > 0 {
				path = args[0]
				if !filepath.IsAbs(path) {
					path = filepath.Join(c.WorkDir, path)
				}
			}
			return c.runConfigInit(path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func (c *CLI) runConfigInit(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errs.New(errs.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
		} else if !stderrors.Is(err, fs.ErrNotExist) {
			return errs.Wrap(errs.ErrCodeWrite, err, "stat %s", path)
		}
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}
	printSuccess(c.Out, "Wrote default configuration")
	printFile(c.Out, path)
	printNewline(c.Out)
	printNextStep(c.Out, "Generate", appName+" generate")
	return nil
}
