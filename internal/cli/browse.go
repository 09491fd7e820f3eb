package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oleander/sketchfeed/pkg/openprocessing"
)

// browseCommand creates the interactive catalog browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse the curation catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			client, err := c.newClient(cmd.Context(), cfg, true)
			if err != nil {
				return err
			}

			items := client.CurationSketches(cmd.Context(), 0)
			if len(items) == 0 {
				printError("Catalog is empty")
				return nil
			}

			m := NewSketchListModel(items)
			p := tea.NewProgram(m)
			finalModel, err := p.Run()
			if err != nil {
				return err
			}

			fm, ok := finalModel.(SketchListModel)
			if !ok || fm.Selected == nil {
				printDetail("No selection made")
				return nil
			}

			printNewline()
			printInfo("Selected: %s", StyleHighlight.Render(titleOrID(fm.Selected.Title, fm.Selected.VisualID)))
			printKeyValue("page", openprocessing.SketchURL(fm.Selected.VisualID))
			printKeyValue("embed", openprocessing.EmbedURL(fm.Selected.VisualID))
			return nil
		},
	}
}

// =============================================================================
// SketchListModel - Interactive sketch selection
// =============================================================================

// SketchListModel is the bubbletea model for browsing the catalog.
type SketchListModel struct {
	Items    []openprocessing.CurationItem
	Cursor   int
	Selected *openprocessing.CurationItem
	Height   int
	Offset   int
}

// NewSketchListModel creates a new sketch list model.
func NewSketchListModel(items []openprocessing.CurationItem) SketchListModel {
	return SketchListModel{
		Items:  items,
		Height: 15,
	}
}

func (m SketchListModel) Init() tea.Cmd {
	return nil
}

func (m SketchListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = &m.Items[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SketchListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sketch"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Items) {
		end = len(m.Items)
	}

	for i := m.Offset; i < end; i++ {
		item := m.Items[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		author := item.Fullname
		if author == "" {
			author = "—"
		}

		line := fmt.Sprintf("%s%-9s %-42s %s",
			cursor, item.VisualID, truncate(titleOrID(item.Title, item.VisualID), 40),
			StyleDim.Render(author))

		if i == m.Cursor {
			b.WriteString(StyleHighlight.Render(line))
		} else {
			b.WriteString(StyleValue.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
