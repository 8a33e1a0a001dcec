package output

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantFG  lipgloss.TerminalColor
		wantDim bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "overwritten returns yellow", status: StatusOverwritten, wantFG: ColorYellow},
		{name: "removed returns red", status: StatusRemoved, wantFG: ColorRed},
		{name: "skipped returns faint", status: StatusSkipped, wantDim: true},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			if tt.wantFG != nil {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
			assert.Equal(t, tt.wantDim, style.GetFaint())
		})
	}
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("done")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "done")
}

func TestFormatBlueprintLine(t *testing.T) {
	out := FormatBlueprintLine("component", "/home/me/.blueprints/component")
	assert.Contains(t, out, "component")
	assert.Contains(t, out, " - ")
	assert.Contains(t, out, "/home/me/.blueprints/component")
}
