package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprintdeck/pkg/pipeline"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
)

// layoutCommand creates the layout command for inspecting box placement.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout [input.csv]",
		Short: "Print the computed box layout",
		Long: `Print the computed box layout without writing a presentation.

Every box is listed with its row, field, position and size in centimetres.
Use --json for machine-readable output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.configFor(cmd, args, &flags)
			if err != nil {
				return err
			}
			plan, err := c.newRunner().Plan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if asJSON {
				return writeLayoutJSON(c.Out, plan)
			}
			fmt.Fprintln(c.Out, renderLayoutTable(plan))
			printStats(c.Out, plan.Table.Len(), len(plan.Boxes), len(plan.Dots), string(plan.Direction))
			printNewline(c.Out)
			printNextStep(c.Out, "Generate", appName+" generate "+plan.Input)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

// layoutJSON is the --json document.
type layoutJSON struct {
	Input      string              `json:"input"`
	Direction  layout.Direction    `json:"direction"`
	Decorative bool                `json:"decorative"`
	Geometry   layout.GeometrySpec `json:"geometry"`
	Boxes      []layout.PlacedBox  `json:"boxes"`
}

func writeLayoutJSON(w io.Writer, plan *pipeline.Plan) error {
	doc := layoutJSON{
		Input:      plan.Input,
		Direction:  plan.Direction,
		Decorative: plan.Decorative,
		Geometry:   plan.Geometry,
		Boxes:      plan.Boxes,
	}
	if doc.Boxes == nil {
		doc.Boxes = []layout.PlacedBox{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// renderLayoutTable renders one table line per placed box.
func renderLayoutTable(plan *pipeline.Plan) string {
	rows := make([][]string, 0, len(plan.Boxes))
	for _, b := range plan.Boxes {
		rows = append(rows, []string{
			strconv.Itoa(b.Row + 1),
			string(b.Field),
			formatCM(b.Rect.X),
			formatCM(b.Rect.Y),
			formatCM(b.Rect.W),
			formatCM(b.Rect.H),
			string(b.Align),
			b.Text,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Row", "Field", "X", "Y", "W", "H", "Align", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col >= 2 && col <= 5 {
				return StyleNumber
			}
			return lipgloss.NewStyle()
		})
	return t.Render()
}

// formatCM prints a centimetre value with two decimals.
func formatCM(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
