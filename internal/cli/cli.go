package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprintdeck/pkg/buildinfo"
	"github.com/matzehuels/sprintdeck/pkg/config"
	"github.com/matzehuels/sprintdeck/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "sprintdeck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command results; Err receives the spinner.
	Out io.Writer
	Err io.Writer

	// WorkDir anchors every relative path. Empty means the process working
	// directory, captured once when a command starts.
	WorkDir string

	// Getenv looks up environment overrides.
	Getenv func(string) (string, bool)

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		Err:    os.Stderr,
		Getenv: os.LookupEnv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Sprintdeck turns a sprint table into a presentation slide",
		Long: `Sprintdeck reads a sprint table (mission, name, time) from a CSV file and
lays it out as rows of bordered text boxes on a single presentation slide.

Hebrew and other right-to-left tables are detected automatically and laid
out from the right edge of the slide on a decorative dot grid.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			if c.WorkDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				c.WorkDir = wd
			}
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: sprintdeck.toml or sprintdeck.yaml in the working directory)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig builds the effective configuration: defaults, then the config
// file (explicit or discovered), then environment overrides. Command flags
// are applied afterwards by the caller.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg := config.Default()

	path := c.configPath
	if path != "" && !filepath.IsAbs(path) {
		path = filepath.Join(c.WorkDir, path)
	}
	if path == "" {
		path = config.Find(c.WorkDir)
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		c.Logger.Debug("loaded config", "path", path)
	}

	if c.Getenv != nil {
		if err := cfg.ApplyEnv(c.Getenv); err != nil {
			return cfg, err
		}
	}
	cfg.WorkDir = c.WorkDir
	return cfg, nil
}

// =============================================================================
// Shared Flags
// =============================================================================

// inputFlags are shared by every command that reads a sprint table.
type inputFlags struct {
	inputDir   string
	direction  string
	decorative bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.inputDir, "input-dir", "", "directory holding the input file (default: \""+config.DefaultInputDir+"\")")
	cmd.Flags().StringVar(&f.direction, "direction", "", "text direction: ltr, rtl or auto (default: auto)")
	cmd.Flags().BoolVar(&f.decorative, "decorative", false, "draw the dot grid behind the boxes (default: on for rtl)")
}

// apply copies every flag the user set onto cfg. The optional positional
// argument names the input file directly.
func (f *inputFlags) apply(cmd *cobra.Command, args []string, cfg *config.Config) {
	if len(args) > 0 {
		cfg.Input.Path = args[0]
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.Input.Dir = f.inputDir
	}
	if cmd.Flags().Changed("direction") {
		cfg.Layout.Direction = f.direction
	}
	if cmd.Flags().Changed("decorative") {
		d := f.decorative
		cfg.Layout.Decorative = &d
	}
}

// configFor loads the configuration and applies the input flags.
func (c *CLI) configFor(cmd *cobra.Command, args []string, f *inputFlags) (config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return cfg, err
	}
	f.apply(cmd, args, &cfg)
	return cfg, cfg.Validate()
}
