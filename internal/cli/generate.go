package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprintdeck/pkg/config"
	errs "github.com/matzehuels/sprintdeck/pkg/errors"
	"github.com/matzehuels/sprintdeck/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	inputFlags
	outputDir string // directory receiving the presentation files
	formats   string // comma-separated output formats
	prefix    string // file name prefix before the timestamp
	title     string // document title embedded in the pptx
}

// generateCommand creates the generate command, the main entry point.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [input.csv]",
		Short: "Generate the presentation from a sprint table",
		Long: `Generate the presentation from a sprint table.

Reads the table (default: "csv files/jobs.csv"), lays out one row of boxes
per record and writes presentation_<YYYYMMDD>_<HHMMSS>.<ext> into the output
directory (default: "sprints") for every requested format. Both directories
are created when missing.

Formats: pptx (default), svg, json, pdf and png. PDF and PNG need
rsvg-convert on the PATH.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, args, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runGenerate(cmd.Context(), cfg)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "output directory (default: \""+config.DefaultOutputDir+"\")")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats, comma-separated: pptx, svg, json, pdf, png (default: pptx)")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "output file name prefix (default: \""+config.DefaultPrefix+"\")")
	cmd.Flags().StringVar(&opts.title, "title", "", "presentation title (default: \""+config.DefaultTitle+"\")")

	return cmd
}

// apply copies the generate flags the user set onto cfg.
func (o *generateOpts) apply(cmd *cobra.Command, args []string, cfg *config.Config) {
	o.inputFlags.apply(cmd, args, cfg)
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir = o.outputDir
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Formats = config.SplitList(o.formats)
	}
	if cmd.Flags().Changed("prefix") {
		cfg.Output.Prefix = o.prefix
	}
	if cmd.Flags().Changed("title") {
		cfg.Output.Title = o.title
	}
}

// runGenerate runs the full pipeline and reports the written files.
func (c *CLI) runGenerate(ctx context.Context, cfg config.Config) error {
	if needsConverter(cfg.Output.Formats) && !render.Available() {
		return errs.New(errs.ErrCodeUnsupported,
			"pdf and png output need rsvg-convert: brew install librsvg (macOS), apt install librsvg2-bin (Linux)")
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, c.Err, fmt.Sprintf("Generating %s...", strings.Join(cfg.Output.Formats, ", ")))
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, cfg)
	if err != nil {
		spinner.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	spinner.StopWithSuccess(c.Out, "Presentation generated")
	prog.done("generated presentation")

	for _, f := range result.Files {
		printFile(c.Out, f)
	}
	printStats(c.Out, result.Stats.RowCount, result.Stats.BoxCount, result.Stats.DotCount, string(result.Direction))
	if result.Stats.RowCount == 0 {
		printWarning(c.Out, "the table has no rows; the slide only carries the background")
	}
	return nil
}

func needsConverter(formats []string) bool {
	for _, f := range formats {
		if f == config.FormatPDF || f == config.FormatPNG {
			return true
		}
	}
	return false
}
