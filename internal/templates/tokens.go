package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Marker delimiters. A marker is Delimiter + name + Delimiter, e.g.
// "__PascalCaseFormat__".
const Delimiter = "__"

// tokenNameRegex admits names with no "_" run longer than one and no
// leading or trailing "_". With that, no marker can occur inside another.
var tokenNameRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]|_[A-Za-z0-9])*$`)

// Marker returns the marker text for a token name.
func Marker(name string) string {
	return Delimiter + name + Delimiter
}

// TokenSet is a compiled set of markers matched in a single pass.
type TokenSet struct {
	names []string
	re    *regexp.Regexp
}

// NewTokenSet compiles markers for the given names.
func NewTokenSet(names []string) (*TokenSet, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("token set is empty")
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	quoted := make([]string, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))
	for _, n := range sorted {
		if !tokenNameRegex.MatchString(n) {
			return nil, fmt.Errorf("invalid token name %q: must be alphanumeric or '-', with single '_' between characters", n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		quoted = append(quoted, regexp.QuoteMeta(n))
	}

	re, err := regexp.Compile(regexp.QuoteMeta(Delimiter) + "(?:" + strings.Join(quoted, "|") + ")" + regexp.QuoteMeta(Delimiter))
	if err != nil {
		return nil, fmt.Errorf("compiling token set: %w", err)
	}

	kept := make([]string, 0, len(seen))
	for n := range seen {
		kept = append(kept, n)
	}
	sort.Strings(kept)

	return &TokenSet{names: kept, re: re}, nil
}

// Markers returns the marker text of every token, sorted by name.
func (t *TokenSet) Markers() []string {
	out := make([]string, len(t.names))
	for i, n := range t.names {
		out[i] = Marker(n)
	}
	return out
}

// Contains reports whether s holds at least one marker.
func (t *TokenSet) Contains(s string) bool {
	return t.re.MatchString(s)
}

// ReplaceString substitutes every marker in s using lookup.
func (t *TokenSet) ReplaceString(s string, lookup func(name string) string) string {
	return t.re.ReplaceAllStringFunc(s, func(m string) string {
		return lookup(strings.TrimSuffix(strings.TrimPrefix(m, Delimiter), Delimiter))
	})
}

// ReplaceBytes substitutes every marker in b using lookup.
func (t *TokenSet) ReplaceBytes(b []byte, lookup func(name string) string) []byte {
	return t.re.ReplaceAllFunc(b, func(m []byte) []byte {
		name := string(m[len(Delimiter) : len(m)-len(Delimiter)])
		return []byte(lookup(name))
	})
}
