package blueprint

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/fsys"
	"github.com/opmodel/blueprint/internal/output"
)

// Locator finds blueprints in the project and global roots.
type Locator struct {
	roots    Roots
	fs       fsys.FS
	warnings *output.Warnings
}

// NewLocator creates a locator over roots. warnings may be nil.
func NewLocator(roots Roots, fs fsys.FS, warnings *output.Warnings) *Locator {
	return &Locator{roots: roots, fs: fs, warnings: warnings}
}

// Roots returns the configured roots.
func (l *Locator) Roots() Roots {
	return l.roots
}

// Resolve builds the reference for name in scope without touching the
// filesystem. The empty scope resolves to the project root.
func (l *Locator) Resolve(name string, scope Scope) Reference {
	if scope == "" {
		scope = ScopeProject
	}
	return Reference{
		Name:     name,
		Scope:    scope,
		Location: filepath.Join(l.roots.For(scope), name),
	}
}

// Locate finds the blueprint called name. The project root shadows the
// global root unless opts forces a scope.
func (l *Locator) Locate(ctx context.Context, name string, opts LocateOptions) (Reference, error) {
	if err := ValidateName(name); err != nil {
		return Reference{}, err
	}

	scopes := []Scope{ScopeProject, ScopeGlobal}
	if opts.ForceScope != "" {
		scopes = []Scope{opts.ForceScope}
	}

	var searched []string
	for _, scope := range scopes {
		ref := l.Resolve(name, scope)
		ok, err := l.fs.IsDir(ctx, ref.Location)
		if err != nil {
			return Reference{}, fmt.Errorf("checking %s: %w", ref.Location, err)
		}
		if ok {
			output.Debug("located blueprint", "name", name, "scope", scope, "location", ref.Location)
			return ref, nil
		}
		searched = append(searched, l.roots.For(scope))
	}

	return Reference{}, oerrors.NewNotFoundError(
		fmt.Sprintf("blueprint %q not found", name),
		strings.Join(searched, ", "),
		"Run 'blueprint list' to see available blueprints.",
	)
}

// LocateAll lists the blueprints of both roots whose names start with
// namespace. A missing root yields an empty group.
func (l *Locator) LocateAll(ctx context.Context, namespace string) (Listing, error) {
	var listing Listing
	var err error

	if listing.Project, err = l.list(ctx, ScopeProject, namespace); err != nil {
		return Listing{}, err
	}
	if listing.Global, err = l.list(ctx, ScopeGlobal, namespace); err != nil {
		return Listing{}, err
	}
	return listing, nil
}

func (l *Locator) list(ctx context.Context, scope Scope, namespace string) ([]Reference, error) {
	root := l.roots.For(scope)
	ok, err := l.fs.IsDir(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("checking %s root %s: %w", scope, root, err)
	}
	if !ok {
		l.warnings.Add("%s blueprint directory %s does not exist", scope, root)
		return nil, nil
	}

	names, err := l.fs.ListDirs(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}

	refs := make([]Reference, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, namespace) {
			continue
		}
		refs = append(refs, l.Resolve(name, scope))
	}
	return refs, nil
}

// Create makes an empty blueprint directory in scope.
func (l *Locator) Create(ctx context.Context, name string, scope Scope) (Reference, error) {
	if err := ValidateName(name); err != nil {
		return Reference{}, err
	}

	ref := l.Resolve(name, scope)
	exists, err := l.fs.Exists(ctx, ref.Location)
	if err != nil {
		return Reference{}, fmt.Errorf("checking %s: %w", ref.Location, err)
	}
	if exists {
		return Reference{}, oerrors.NewAlreadyExistsError(
			fmt.Sprintf("blueprint %q already exists", name),
			ref.Location,
			"Choose another name or remove the existing blueprint.",
		)
	}

	if err := l.fs.MakeDir(ctx, ref.Location); err != nil {
		return Reference{}, oerrors.WriteFailed("creating blueprint", ref.Location, err)
	}
	return ref, nil
}

// Remove deletes the blueprint directory of ref recursively. ref.Location
// must be the directory named ref.Name directly inside a blueprint root.
func (l *Locator) Remove(ctx context.Context, ref Reference) error {
	if err := ValidateName(ref.Name); err != nil {
		return err
	}
	if !l.owns(ref) {
		return oerrors.NewValidationError(
			fmt.Sprintf("%s is not the location of blueprint %q", ref.Location, ref.Name),
			"Only directories directly inside a blueprint root can be removed.",
		)
	}

	exists, err := l.fs.Exists(ctx, ref.Location)
	if err != nil {
		return fmt.Errorf("checking %s: %w", ref.Location, err)
	}
	if !exists {
		return oerrors.NewNotFoundError(
			fmt.Sprintf("blueprint %q not found", ref.Name),
			ref.Location,
			"Run 'blueprint list' to see available blueprints.",
		)
	}

	if err := l.fs.RemoveTree(ctx, ref.Location); err != nil {
		return oerrors.WriteFailed("removing blueprint", ref.Location, err)
	}
	return nil
}

// owns reports whether ref.Location is <root>/<ref.Name> for ref's scope,
// or for either root when the scope is unset.
func (l *Locator) owns(ref Reference) bool {
	scopes := []Scope{ScopeProject, ScopeGlobal}
	if ref.Scope != "" {
		scopes = []Scope{ref.Scope}
	}

	location := filepath.Clean(ref.Location)
	for _, scope := range scopes {
		root := l.roots.For(scope)
		if root != "" && location == filepath.Join(root, ref.Name) {
			return true
		}
	}
	return false
}
