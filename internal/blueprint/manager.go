package blueprint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/fsys"
	"github.com/opmodel/blueprint/internal/output"
	"github.com/opmodel/blueprint/internal/templates"
	"github.com/opmodel/blueprint/internal/variant"
)

// GenerateOptions configures Generate.
type GenerateOptions struct {
	// Dest is the destination directory. Default: the working directory.
	Dest string

	// Scope forces the lookup to one root.
	Scope Scope

	Conflict    templates.ConflictPolicy
	Concurrency int
	DryRun      bool
}

// CreateOptions configures CreateBlueprint.
type CreateOptions struct {
	Global bool
}

// InitOptions configures InitializeBlueprint.
type InitOptions struct {
	// Source is the directory copied into the blueprint.
	Source string

	// Location is the blueprint directory to create.
	Location string
}

// RemoveOptions configures RemoveBlueprint.
type RemoveOptions struct {
	Location string
}

// Manager exposes the blueprint operations behind the CLI commands.
type Manager struct {
	locator  *Locator
	engine   *templates.Engine
	fs       fsys.FS
	warnings *output.Warnings
}

// NewManager creates a manager over roots. warnings may be nil.
func NewManager(fs fsys.FS, roots Roots, warnings *output.Warnings) *Manager {
	return &Manager{
		locator:  NewLocator(roots, fs, warnings),
		engine:   templates.NewEngine(fs, warnings),
		fs:       fs,
		warnings: warnings,
	}
}

// Locator returns the manager's locator.
func (m *Manager) Locator() *Locator {
	return m.locator
}

// Generate instantiates the blueprint called blueprintName for instanceName.
func (m *Manager) Generate(ctx context.Context, blueprintName, instanceName string, opts GenerateOptions) (*templates.Result, error) {
	if strings.TrimSpace(instanceName) == "" {
		return nil, oerrors.NewValidationError(
			"instance name is empty",
			"Usage: blueprint generate <blueprint> <instance>",
		)
	}

	ref, err := m.locator.Locate(ctx, blueprintName, LocateOptions{ForceScope: opts.Scope})
	if err != nil {
		return nil, err
	}

	dest := opts.Dest
	if dest == "" {
		if dest, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
	}

	values := variant.Derive(blueprintName, instanceName)
	output.Debug("generating", "blueprint", ref.Name, "instance", instanceName, "source", ref.Location, "dest", dest)

	result, err := m.engine.Instantiate(ctx, ref.Location, values, dest, templates.Options{
		Conflict:    opts.Conflict,
		Concurrency: opts.Concurrency,
		DryRun:      opts.DryRun,
	})
	if err != nil {
		return result, fmt.Errorf("generating %s from blueprint %q: %w", instanceName, blueprintName, err)
	}
	return result, nil
}

// CreateBlueprint creates an empty blueprint.
func (m *Manager) CreateBlueprint(ctx context.Context, name string, opts CreateOptions) (Reference, error) {
	scope := ScopeProject
	if opts.Global {
		scope = ScopeGlobal
	}
	return m.locator.Create(ctx, name, scope)
}

// InitializeBlueprint copies opts.Source verbatim into opts.Location.
// When the location lies inside the source, the blueprint root holding it
// is left out of the copy.
func (m *Manager) InitializeBlueprint(ctx context.Context, name string, opts InitOptions) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	ok, err := m.fs.IsDir(ctx, opts.Source)
	if err != nil {
		return fmt.Errorf("checking %s: %w", opts.Source, err)
	}
	if !ok {
		return oerrors.NewSourceNotFoundError(
			fmt.Sprintf("source directory for blueprint %q does not exist", name),
			opts.Source,
		)
	}

	exists, err := m.fs.Exists(ctx, opts.Location)
	if err != nil {
		return fmt.Errorf("checking %s: %w", opts.Location, err)
	}
	if exists {
		return oerrors.NewAlreadyExistsError(
			fmt.Sprintf("blueprint %q already exists", name),
			opts.Location,
			"Remove it first or choose another name.",
		)
	}

	skip := m.storeSkipper(opts.Source, opts.Location)
	if err := m.fs.CopyTree(ctx, opts.Source, opts.Location, skip); err != nil {
		return oerrors.WriteFailed("copying blueprint", opts.Location, err)
	}
	return nil
}

// storeSkipper returns a skip function excluding the blueprint root of
// location when it lies inside source, or nil.
func (m *Manager) storeSkipper(source, location string) fsys.SkipFunc {
	excluded, ok := nestedRel(source, filepath.Dir(location))
	if !ok {
		excluded, ok = nestedRel(source, location)
	}
	if !ok {
		return nil
	}

	m.warnings.Add("skipping %s: the blueprint directory is inside the source", excluded)
	return func(rel string, _ bool) bool {
		return rel == excluded || strings.HasPrefix(rel, excluded+"/")
	}
}

// nestedRel returns the slash-separated path of target relative to base
// when target is strictly inside base.
func nestedRel(base, target string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(base), filepath.Clean(target))
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// RemoveBlueprint deletes the blueprint at opts.Location.
func (m *Manager) RemoveBlueprint(ctx context.Context, name string, opts RemoveOptions) error {
	return m.locator.Remove(ctx, Reference{Name: name, Location: opts.Location})
}

// GetAllBlueprints lists blueprints whose names start with namespace.
func (m *Manager) GetAllBlueprints(ctx context.Context, namespace string) (Listing, error) {
	return m.locator.LocateAll(ctx, namespace)
}
