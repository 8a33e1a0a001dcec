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
	"github.com/opmodel/blueprint/internal/templates"
	"github.com/opmodel/blueprint/internal/testutil"
)

func newTestManager(t *testing.T) (*Manager, Roots, *output.Warnings) {
	t.Helper()
	roots := setupRoots(t)
	w := output.NewWarnings()
	return NewManager(fsys.New(), roots, w), roots, w
}

func TestManager_Generate(t *testing.T) {
	m, roots, _ := newTestManager(t)
	testutil.WriteFile(t, roots.Project, "component/__PascalCaseFormat__.js",
		"export default function __PascalCaseFormat__() { return '__blueprint__'; }\n")
	dest := t.TempDir()

	res, err := m.Generate(context.Background(), "component", "user-card", GenerateOptions{Dest: dest})
	require.NoError(t, err)
	assert.Equal(t, []string{"UserCard.js"}, res.Files)
	assert.Equal(t, map[string]string{
		"UserCard.js": "export default function UserCard() { return 'component'; }\n",
	}, testutil.ReadTree(t, dest))
}

func TestManager_GenerateDefaultDest(t *testing.T) {
	m, roots, _ := newTestManager(t)
	testutil.WriteFile(t, roots.Global, "model/__ClassFormat__.rb", "class __ClassFormat__; end")
	wd := t.TempDir()
	testutil.Chdir(t, wd)

	_, err := m.Generate(context.Background(), "model", "people_records", GenerateOptions{})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(wd, "PeopleRecord.rb"))
}

func TestManager_GenerateErrors(t *testing.T) {
	m, roots, _ := newTestManager(t)
	testutil.WriteFile(t, roots.Project, "component/a.txt", "")
	dest := t.TempDir()
	ctx := context.Background()

	_, err := m.Generate(ctx, "component", "", GenerateOptions{Dest: dest})
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	_, err = m.Generate(ctx, "missing", "x", GenerateOptions{Dest: dest})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	_, err = m.Generate(ctx, "component", "x", GenerateOptions{Dest: dest, Scope: ScopeGlobal})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)

	testutil.WriteFile(t, dest, "a.txt", "old")
	_, err = m.Generate(ctx, "component", "x", GenerateOptions{Dest: dest, Conflict: templates.ConflictFail})
	assert.ErrorIs(t, err, oerrors.ErrAlreadyExists)
}

func TestManager_CreateBlueprint(t *testing.T) {
	m, roots, _ := newTestManager(t)
	ctx := context.Background()

	ref, err := m.CreateBlueprint(ctx, "hook", CreateOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(roots.Project, "hook"), ref.Location)

	ref, err = m.CreateBlueprint(ctx, "hook", CreateOptions{Global: true})
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, ref.Scope)
	assert.DirExists(t, ref.Location)
}

func TestManager_InitializeBlueprint(t *testing.T) {
	m, roots, w := newTestManager(t)
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"__PascalCaseFormat__.tsx": "raw __PascalCaseFormat__",
		"styles/main.css":          ".__dashed-format__ {}",
	})
	location := filepath.Join(roots.Global, "page")

	require.NoError(t, m.InitializeBlueprint(context.Background(), "page", InitOptions{Source: src, Location: location}))
	assert.Equal(t, map[string]string{
		"__PascalCaseFormat__.tsx": "raw __PascalCaseFormat__",
		"styles/main.css":          ".__dashed-format__ {}",
	}, testutil.ReadTree(t, location))
	assert.Zero(t, w.Len())
}

func TestManager_InitializeBlueprintSkipsStore(t *testing.T) {
	m, _, w := newTestManager(t)
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"main.go":                "package main",
		".blueprints/other/x.go": "x",
	})
	location := filepath.Join(src, ".blueprints", "app")

	require.NoError(t, m.InitializeBlueprint(context.Background(), "app", InitOptions{Source: src, Location: location}))
	assert.Equal(t, map[string]string{"main.go": "package main"}, testutil.ReadTree(t, location))
	assert.Equal(t, 1, w.Len())
}

func TestManager_InitializeBlueprintErrors(t *testing.T) {
	m, roots, _ := newTestManager(t)
	ctx := context.Background()
	src := t.TempDir()
	testutil.WriteFile(t, roots.Project, "taken/x", "")

	err := m.InitializeBlueprint(ctx, "taken", InitOptions{Source: src, Location: filepath.Join(roots.Project, "taken")})
	assert.ErrorIs(t, err, oerrors.ErrAlreadyExists)

	err = m.InitializeBlueprint(ctx, "ghost", InitOptions{
		Source:   filepath.Join(src, "missing"),
		Location: filepath.Join(roots.Project, "ghost"),
	})
	assert.ErrorIs(t, err, oerrors.ErrSourceNotFound)
	assert.NoDirExists(t, filepath.Join(roots.Project, "ghost"))
}

func TestManager_RemoveBlueprint(t *testing.T) {
	m, roots, _ := newTestManager(t)
	ctx := context.Background()
	testutil.WriteFile(t, roots.Global, "old/file", "")
	location := filepath.Join(roots.Global, "old")

	require.NoError(t, m.RemoveBlueprint(ctx, "old", RemoveOptions{Location: location}))
	assert.NoDirExists(t, location)

	err := m.RemoveBlueprint(ctx, "old", RemoveOptions{Location: location})
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
}

func TestManager_RemoveBlueprintRejectsEscapingNames(t *testing.T) {
	m, roots, _ := newTestManager(t)
	ctx := context.Background()
	testutil.WriteFile(t, roots.Project, "keep/file", "x")

	for _, name := range []string{"..", "../x", ".", ""} {
		t.Run(name, func(t *testing.T) {
			location := filepath.Join(roots.Project, name)
			err := m.RemoveBlueprint(ctx, name, RemoveOptions{Location: location})
			assert.ErrorIs(t, err, oerrors.ErrValidation)
		})
	}

	assert.DirExists(t, roots.Project)
	assert.FileExists(t, filepath.Join(roots.Project, "keep", "file"))
}

func TestManager_GetAllBlueprints(t *testing.T) {
	m, roots, _ := newTestManager(t)
	testutil.WriteFile(t, roots.Project, "a/x", "")
	testutil.WriteFile(t, roots.Global, "b/x", "")

	listing, err := m.GetAllBlueprints(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, names(listing.Project))
	assert.Equal(t, []string{"b"}, names(listing.Global))
}

func TestNestedRel(t *testing.T) {
	rel, ok := nestedRel("/src", "/src/.blueprints")
	assert.True(t, ok)
	assert.Equal(t, ".blueprints", rel)

	_, ok = nestedRel("/src", "/src")
	assert.False(t, ok)

	_, ok = nestedRel("/src", "/other/.blueprints")
	assert.False(t, ok)
}
