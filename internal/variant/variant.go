// Package variant derives the case-format variants of a blueprint instance name.
package variant

import (
	"sort"
	"strings"
	"unicode"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Keys for the raw, unmodified entries.
const (
	KeyBlueprint         = "blueprint"
	KeyBlueprintInstance = "blueprintInstance"
)

// Format names. Lowercase and dashed spellings are aliases of the
// capitalized ones.
const (
	ClassFormat      = "ClassFormat"
	DashedFormat     = "DashedFormat"
	DashedFormatAlt  = "dashed-format"
	SlugFormat       = "SlugFormat"
	SlugFormatAlt    = "slug-format"
	CamelCaseFormat  = "camelCaseFormat"
	CamelCaseAlt     = "CamelCaseFormat"
	PascalCaseFormat = "PascalCaseFormat"
	PascalCaseAlt    = "pascalCaseFormat"
	ConstantFormat   = "ConstantFormat"
)

// documented is the help listing order.
var documented = []string{
	ClassFormat,
	DashedFormat,
	CamelCaseAlt,
	PascalCaseFormat,
	SlugFormat,
	ConstantFormat,
}

// Map is the set of values substituted for one blueprint instance.
// It is computed once and must not be mutated afterwards.
type Map map[string]string

// Derive computes the variant map for an instance of a blueprint.
// Every format is built from the same word list, so "v2-api" stays
// "v2-api" and "HTTPServer" becomes "HttpServer" and "http-server".
// An empty instance yields empty variants.
func Derive(blueprint, instance string) Map {
	c := newCaser()
	w := Words(Normalize(instance))

	dashed := c.join(w, "-", c.lower.String)
	camel := c.camel(w)
	pascal := c.join(w, "", c.title.String)

	return Map{
		KeyBlueprint:         blueprint,
		KeyBlueprintInstance: instance,
		ClassFormat:          Classify(instance),
		DashedFormat:         dashed,
		DashedFormatAlt:      dashed,
		SlugFormat:           dashed,
		SlugFormatAlt:        dashed,
		CamelCaseFormat:      camel,
		CamelCaseAlt:         camel,
		PascalCaseFormat:     pascal,
		PascalCaseAlt:        pascal,
		ConstantFormat:       c.join(w, "_", c.upper.String),
	}
}

// Normalize replaces every hyphen with an underscore.
func Normalize(instance string) string {
	return strings.ReplaceAll(instance, "-", "_")
}

// Classify converts a name to a singular type identifier,
// e.g. "user_cards" becomes "UserCard".
func Classify(name string) string {
	c := newCaser()
	return c.join(singularLast(Words(Normalize(name))), "", c.title.String)
}

// Words splits s into words at underscores, hyphens, whitespace and case
// changes. A run of capitals followed by a lowercase letter ends one rune
// early ("HTTPServer" is "HTTP", "Server"). A digit never splits a word.
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				start = -1
			}
			continue
		}
		if start >= 0 && i > start && boundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
	}
	return words
}

// boundary reports whether a new word starts at runes[i].
func boundary(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// singularLast returns a copy of words with the trailing word singularized.
func singularLast(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	last := strings.ToLower(out[len(out)-1])
	out[len(out)-1] = inflection.Singular(last)
	return out
}

// caser holds the casing transforms for one derivation. cases.Caser is
// stateful and must not be shared between goroutines.
type caser struct {
	lower cases.Caser
	upper cases.Caser
	title cases.Caser
}

func newCaser() *caser {
	return &caser{
		lower: cases.Lower(language.Und),
		upper: cases.Upper(language.Und),
		title: cases.Title(language.Und),
	}
}

func (c *caser) join(words []string, sep string, fn func(string) string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fn(w)
	}
	return strings.Join(out, sep)
}

func (c *caser) camel(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return c.lower.String(words[0]) + c.join(words[1:], "", c.title.String)
}

// Keys returns all keys in sorted order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Formats returns the documented format names in help order. Aliases
// are omitted.
func Formats() []string {
	out := make([]string, len(documented))
	copy(out, documented)
	return out
}

// Example pairs a format name with a sample rendering.
type Example struct {
	Format string
	Value  string
}

// Describe returns the documented formats rendered for "component-name".
func Describe() []Example {
	m := Derive("", "component-name")

	out := make([]Example, 0, len(documented))
	for _, f := range Formats() {
		out = append(out, Example{Format: f, Value: m[f]})
	}
	return out
}
