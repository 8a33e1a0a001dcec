package templates

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/variant"
)

// Renderer substitutes variant values into paths and file contents.
type Renderer struct {
	tokens *TokenSet
	values variant.Map
}

// NewRenderer creates a renderer whose tokens are the keys of values.
func NewRenderer(values variant.Map) (*Renderer, error) {
	tokens, err := NewTokenSet(values.Keys())
	if err != nil {
		return nil, err
	}
	return &Renderer{tokens: tokens, values: values}, nil
}

// Tokens returns the compiled token set.
func (r *Renderer) Tokens() *TokenSet {
	return r.tokens
}

func (r *Renderer) lookup(name string) string {
	return r.values[name]
}

// RenderString substitutes every marker in content.
func (r *Renderer) RenderString(content string) string {
	return r.tokens.ReplaceString(content, r.lookup)
}

// RenderBytes substitutes every marker in content. Binary content (NUL bytes
// or invalid UTF-8) is returned unchanged.
func (r *Renderer) RenderBytes(content []byte) []byte {
	if IsBinary(content) {
		return content
	}
	return r.tokens.ReplaceBytes(content, r.lookup)
}

// RenderPath substitutes markers in each segment of a slash-separated
// relative path. A segment that renders empty, or a result outside the
// destination root, is rejected.
func (r *Renderer) RenderPath(rel string) (string, error) {
	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		rendered := r.RenderString(seg)
		if rendered == "" {
			return "", oerrors.NewValidationError(
				fmt.Sprintf("blueprint path %q has a segment that renders empty", rel),
				"Provide a non-empty instance name.",
			)
		}
		segments[i] = rendered
	}

	joined := strings.Join(segments, "/")
	if !filepath.IsLocal(filepath.FromSlash(joined)) {
		return "", oerrors.NewValidationError(
			fmt.Sprintf("blueprint path %q renders to %q, which is outside the destination", rel, joined),
			"Check the instance name for path separators.",
		)
	}
	return path.Clean(joined), nil
}

// IsBinary reports whether content should be copied without substitution.
func IsBinary(content []byte) bool {
	return bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)
}
