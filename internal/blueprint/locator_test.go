package blueprint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/fsys"
	"github.com/opmodel/blueprint/internal/output"
	"github.com/opmodel/blueprint/internal/testutil"
)

func setupRoots(t *testing.T) Roots {
	t.Helper()
	base := t.TempDir()
	return Roots{
		Project: filepath.Join(base, "project", ".blueprints"),
		Global:  filepath.Join(base, "home", ".blueprints"),
	}
}

func TestLocator_LocatePrecedence(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Project, "component/index.js", "project")
	testutil.WriteFile(t, roots.Global, "component/index.js", "global")
	testutil.WriteFile(t, roots.Global, "service/main.go", "global")

	l := NewLocator(roots, fsys.New(), nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		blueprint string
		opts      LocateOptions
		wantScope Scope
	}{
		{"project shadows global", "component", LocateOptions{}, ScopeProject},
		{"falls back to global", "service", LocateOptions{}, ScopeGlobal},
		{"forced global", "component", LocateOptions{ForceScope: ScopeGlobal}, ScopeGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := l.Locate(ctx, tt.blueprint, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScope, ref.Scope)
			assert.Equal(t, filepath.Join(roots.For(tt.wantScope), tt.blueprint), ref.Location)
		})
	}
}

func TestLocator_LocateNotFound(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Global, "service/main.go", "")

	l := NewLocator(roots, fsys.New(), nil)

	_, err := l.Locate(context.Background(), "missing", LocateOptions{})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	_, err = l.Locate(context.Background(), "service", LocateOptions{ForceScope: ScopeProject})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestLocator_LocateRejectsFile(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Project, "notes", "not a directory")

	l := NewLocator(roots, fsys.New(), nil)
	_, err := l.Locate(context.Background(), "notes", LocateOptions{})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestLocator_LocateAll(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteTree(t, roots.Project, map[string]string{
		"react-component/x": "",
		"react-hook/x":      "",
		"go-service/x":      "",
		"README.md":         "not a blueprint",
	})
	testutil.WriteTree(t, roots.Global, map[string]string{
		"react-page/x": "",
	})

	l := NewLocator(roots, fsys.New(), nil)

	all, err := l.LocateAll(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"go-service", "react-component", "react-hook"}, names(all.Project))
	assert.Equal(t, []string{"react-page"}, names(all.Global))
	assert.Equal(t, ScopeGlobal, all.Global[0].Scope)

	react, err := l.LocateAll(context.Background(), "react-")
	require.NoError(t, err)
	assert.Equal(t, []string{"react-component", "react-hook"}, names(react.Project))
	assert.Equal(t, []string{"react-page"}, names(react.Global))
}

func TestLocator_LocateAllMissingRoot(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Global, "page/x", "")

	w := output.NewWarnings()
	l := NewLocator(roots, fsys.New(), w)

	listing, err := l.LocateAll(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, listing.Project)
	assert.Equal(t, []string{"page"}, names(listing.Global))
	assert.Equal(t, 1, w.Len())
	assert.NoDirExists(t, roots.Project)
}

func TestLocator_Create(t *testing.T) {
	roots := setupRoots(t)
	l := NewLocator(roots, fsys.New(), nil)
	ctx := context.Background()

	ref, err := l.Create(ctx, "widget", ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(roots.Global, "widget"), ref.Location)
	assert.DirExists(t, ref.Location)

	_, err = l.Create(ctx, "widget", ScopeGlobal)
	assert.ErrorIs(t, err, oerrors.ErrAlreadyExists)

	_, err = l.Create(ctx, "../escape", ScopeProject)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestLocator_Remove(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Project, "widget/nested/file.txt", "x")
	testutil.WriteFile(t, roots.Project, "other/file.txt", "y")

	l := NewLocator(roots, fsys.New(), nil)
	ctx := context.Background()

	require.NoError(t, l.Remove(ctx, l.Resolve("widget", ScopeProject)))
	assert.NoDirExists(t, filepath.Join(roots.Project, "widget"))
	assert.DirExists(t, filepath.Join(roots.Project, "other"))
}

func TestLocator_RemoveMissing(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Project, "other/file.txt", "y")

	l := NewLocator(roots, fsys.New(), nil)
	err := l.Remove(context.Background(), l.Resolve("widget", ScopeProject))
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Equal(t, map[string]string{"other/file.txt": "y"}, testutil.ReadTree(t, roots.Project))
}

func TestLocator_RemoveOutsideRoot(t *testing.T) {
	roots := setupRoots(t)
	testutil.WriteFile(t, roots.Project, "widget/file.txt", "x")
	sibling := filepath.Join(filepath.Dir(roots.Project), "src")
	testutil.WriteFile(t, sibling, "main.go", "package main")

	l := NewLocator(roots, fsys.New(), nil)
	ctx := context.Background()

	tests := []struct {
		name string
		ref  Reference
	}{
		{"parent name", l.Resolve("..", ScopeProject)},
		{"nested name", l.Resolve("../src", ScopeProject)},
		{"location outside roots", Reference{Name: "src", Location: sibling}},
		{"location of another blueprint", Reference{Name: "other", Location: filepath.Join(roots.Project, "widget")}},
		{"wrong scope", Reference{Name: "widget", Scope: ScopeGlobal, Location: filepath.Join(roots.Project, "widget")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := l.Remove(ctx, tt.ref)
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}

	assert.FileExists(t, filepath.Join(sibling, "main.go"))
	assert.FileExists(t, filepath.Join(roots.Project, "widget", "file.txt"))
}

func TestLocator_Resolve(t *testing.T) {
	l := NewLocator(Roots{Project: "/p", Global: "/g"}, fsys.New(), nil)

	ref := l.Resolve("x", "")
	assert.Equal(t, ScopeProject, ref.Scope)
	assert.Equal(t, filepath.Join("/p", "x"), ref.Location)

	ref = l.Resolve("x", ScopeGlobal)
	assert.Equal(t, filepath.Join("/g", "x"), ref.Location)
}

func names(refs []Reference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}
