package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("out", map[string]string{
		"UserCard.js":          StatusCreated,
		"styles/UserCard.css":  StatusOverwritten,
		"styles/theme/base.js": "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "out/")
	// Directories sort before files.
	assert.Contains(t, lines[1], "styles/")
	assert.Contains(t, out, "UserCard.css")
	assert.Contains(t, out, StatusOverwritten)
	assert.Contains(t, lines[len(lines)-1], "└── UserCard.js")
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("out", nil))
}

