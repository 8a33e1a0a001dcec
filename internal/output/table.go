package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// grid is the row store shared by the typed tables below. The first column
// is a noun, the last column is secondary detail.
type grid struct {
	headers []string
	rows    [][]string
}

func (g *grid) add(cells ...string) {
	for i, c := range cells {
		if c == "" {
			cells[i] = "-"
		}
	}
	g.rows = append(g.rows, cells)
}

func (g *grid) render() string {
	last := len(g.headers) - 1
	border := lipgloss.NewStyle().Foreground(ColorDimGray)
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(g.headers...).
		Rows(g.rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 0:
				return StyleNoun
			case col == last:
				return StyleDim
			default:
				return lipgloss.NewStyle()
			}
		})

	return tbl.String()
}

// BlueprintTable lists blueprints for `list -o table`.
type BlueprintTable struct {
	grid
}

// NewBlueprintTable creates an empty NAME/SCOPE/LOCATION table.
func NewBlueprintTable() *BlueprintTable {
	return &BlueprintTable{grid{headers: []string{"NAME", "SCOPE", "LOCATION"}}}
}

// Add appends one blueprint.
func (t *BlueprintTable) Add(name, scope, location string) *BlueprintTable {
	t.add(name, scope, location)
	return t
}

// Len returns the number of blueprints.
func (t *BlueprintTable) Len() int {
	return len(t.rows)
}

func (t *BlueprintTable) String() string {
	return t.render()
}

// SettingsTable shows effective configuration for `config show`.
type SettingsTable struct {
	grid
}

// NewSettingsTable creates an empty KEY/VALUE/SOURCE table.
func NewSettingsTable() *SettingsTable {
	return &SettingsTable{grid{headers: []string{"KEY", "VALUE", "SOURCE"}}}
}

// Add appends one setting. An empty source renders as "-".
func (t *SettingsTable) Add(key, value, source string) *SettingsTable {
	t.add(key, value, source)
	return t
}

func (t *SettingsTable) String() string {
	return t.render()
}
