package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	assert.Equal(t, "__PascalCaseFormat__", Marker("PascalCaseFormat"))
	assert.Equal(t, "__dashed-format__", Marker("dashed-format"))
}

func TestNewTokenSet(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		wantErr bool
	}{
		{"camel", []string{"camelCaseFormat"}, false},
		{"dashed", []string{"dashed-format"}, false},
		{"single underscore", []string{"a_b"}, false},
		{"several", []string{"blueprint", "blueprintInstance"}, false},
		{"empty set", nil, true},
		{"empty name", []string{""}, true},
		{"double underscore", []string{"a__b"}, true},
		{"leading underscore", []string{"_a"}, true},
		{"trailing underscore", []string{"a_"}, true},
		{"space", []string{"a b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenSet(tt.names)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTokenSet_MarkersDeduplicated(t *testing.T) {
	ts := mustTokens(t, "b", "a", "b")
	assert.Equal(t, []string{"__a__", "__b__"}, ts.Markers())
}

func TestTokenSet_ReplaceString(t *testing.T) {
	values := map[string]string{
		"blueprint":         "component",
		"blueprintInstance": "user-card",
		"ClassFormat":       "UserCard",
	}
	ts := mustTokens(t, "blueprint", "blueprintInstance", "ClassFormat")
	lookup := func(name string) string { return values[name] }

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no markers", "plain text", "plain text"},
		{"single", "__ClassFormat__.ts", "UserCard.ts"},
		{"prefix name is distinct", "__blueprint__/__blueprintInstance__", "component/user-card"},
		{"adjacent", "__ClassFormat____ClassFormat__", "UserCardUserCard"},
		{"unknown marker kept", "def __init__(self)", "def __init__(self)"},
		{"extra underscores", "___ClassFormat___", "_UserCard_"},
		{"repeated", "__ClassFormat__ extends Base<__ClassFormat__>", "UserCard extends Base<UserCard>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.ReplaceString(tt.input, lookup))
		})
	}
}

func TestTokenSet_ValuesAreNotRescanned(t *testing.T) {
	ts := mustTokens(t, "a", "b")
	lookup := func(name string) string {
		if name == "a" {
			return "__b__"
		}
		return "B"
	}
	assert.Equal(t, "__b__", ts.ReplaceString("__a__", lookup))
}

func TestTokenSet_ReplaceBytes(t *testing.T) {
	ts := mustTokens(t, "x")
	got := ts.ReplaceBytes([]byte("a __x__ b"), func(string) string { return "y" })
	assert.Equal(t, "a y b", string(got))
}

func TestTokenSet_Contains(t *testing.T) {
	ts := mustTokens(t, "x")
	assert.True(t, ts.Contains("dir/__x__.go"))
	assert.False(t, ts.Contains("dir/__y__.go"))
	assert.False(t, ts.Contains(strings.Repeat("_", 6)))
}

func TestNewTokenSet_EmptyIsError(t *testing.T) {
	_, err := NewTokenSet(nil)
	assert.Error(t, err)
}

func mustTokens(t *testing.T, names ...string) *TokenSet {
	t.Helper()
	ts, err := NewTokenSet(names)
	require.NoError(t, err)
	return ts
}
