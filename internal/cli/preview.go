package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprintdeck/pkg/pipeline"
	"github.com/matzehuels/sprintdeck/pkg/render/deck/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the interactive preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "preview [input.csv]",
		Short: "Browse the sprint rows and their boxes interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.configFor(cmd, args, &flags)
			if err != nil {
				return err
			}
			plan, err := c.newRunner().Plan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewPreviewModel(plan), tea.WithContext(cmd.Context()), tea.WithOutput(c.Out))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

// =============================================================================
// PreviewModel - Interactive row browser
// =============================================================================

// PreviewModel is the bubbletea model for browsing a computed layout.
type PreviewModel struct {
	Plan   *pipeline.Plan
	Rows   [][]layout.PlacedBox
	Cursor int
	Height int
	Offset int
}

// NewPreviewModel creates a preview over plan.
func NewPreviewModel(plan *pipeline.Plan) PreviewModel {
	return PreviewModel{
		Plan:   plan,
		Rows:   layout.Rows(plan.Boxes),
		Height: 15,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if len(m.Rows) > 0 {
				m.Cursor = len(m.Rows) - 1
				m.Offset = max(0, m.Cursor-m.Height+1)
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, the detail panel and the footer.
		m.Height = max(msg.Height-14, 3)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s (%s)", m.Plan.Input, m.Plan.Direction)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no rows"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	fields := m.Plan.Geometry.FieldOrder()

	headers := make([]string, 0, len(fields)+1)
	headers = append(headers, "")
	for _, f := range fields {
		headers = append(headers, string(f))
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := []string{cursor}
		for _, box := range m.Rows[i] {
			line = append(line, box.Text)
		}
		rows = append(rows, line)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.detail())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}

// detail lists the geometry of every box in the selected row.
func (m PreviewModel) detail() string {
	var b strings.Builder
	for _, box := range m.Rows[m.Cursor] {
		fmt.Fprintf(&b, "  %-8s %s %s  %s %s\n",
			box.Field,
			listDimStyle.Render("at"),
			StyleNumber.Render(formatCM(box.Rect.X)+", "+formatCM(box.Rect.Y)),
			listDimStyle.Render("size"),
			StyleNumber.Render(formatCM(box.Rect.W)+" × "+formatCM(box.Rect.H)))
	}
	return b.String()
}
