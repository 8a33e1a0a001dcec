// Package blueprint locates, creates, removes and instantiates blueprints
// stored in the project and global blueprint roots.
package blueprint

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/blueprint/internal/errors"
)

// Scope identifies which blueprint root a blueprint lives in.
type Scope string

const (
	// ScopeProject is the project-local root.
	ScopeProject Scope = "project"

	// ScopeGlobal is the per-user root.
	ScopeGlobal Scope = "global"
)

// String returns the scope name.
func (s Scope) String() string {
	return string(s)
}

// ParseScope parses a scope name. The empty string yields the empty scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(s)) {
	case "":
		return "", nil
	case ScopeProject:
		return ScopeProject, nil
	case ScopeGlobal:
		return ScopeGlobal, nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown scope %q", s),
			"Use \"project\" or \"global\".",
		)
	}
}

// Roots holds the two blueprint root directories.
type Roots struct {
	Project string
	Global  string
}

// For returns the root directory for scope.
func (r Roots) For(scope Scope) string {
	if scope == ScopeGlobal {
		return r.Global
	}
	return r.Project
}

// Reference identifies a blueprint directory.
type Reference struct {
	Name     string `json:"name" yaml:"name"`
	Scope    Scope  `json:"scope" yaml:"scope"`
	Location string `json:"location" yaml:"location"`
}

// Listing groups the blueprints found in each root.
type Listing struct {
	Project []Reference `json:"project" yaml:"project"`
	Global  []Reference `json:"global" yaml:"global"`
}

// Len returns the total number of blueprints.
func (l Listing) Len() int {
	return len(l.Project) + len(l.Global)
}

// Only returns the listing with every group but scope's emptied. The empty
// scope keeps both groups.
func (l Listing) Only(scope Scope) Listing {
	switch scope {
	case ScopeProject:
		return Listing{Project: l.Project}
	case ScopeGlobal:
		return Listing{Global: l.Global}
	default:
		return l
	}
}

// LocateOptions restricts a lookup.
type LocateOptions struct {
	// ForceScope limits the search to one root. Empty searches the project
	// root, then the global root.
	ForceScope Scope
}

// ValidateName checks that name can be used as a blueprint directory name.
func ValidateName(name string) error {
	hint := "Blueprint names are single directory names, e.g. \"component\"."
	switch {
	case strings.TrimSpace(name) == "":
		return oerrors.NewValidationError("blueprint name is empty", hint)
	case name == "." || name == "..":
		return oerrors.NewValidationError(fmt.Sprintf("invalid blueprint name %q", name), hint)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return oerrors.NewValidationError(fmt.Sprintf("blueprint name %q contains a path separator", name), hint)
	}
	return nil
}
