package templates

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/opmodel/blueprint/internal/errors"
	"github.com/opmodel/blueprint/internal/fsys"
	"github.com/opmodel/blueprint/internal/output"
	"github.com/opmodel/blueprint/internal/variant"
)

// Engine instantiates blueprint trees.
type Engine struct {
	fs       fsys.FS
	warnings *output.Warnings
}

// NewEngine creates an engine. warnings may be nil.
func NewEngine(fs fsys.FS, warnings *output.Warnings) *Engine {
	return &Engine{fs: fs, warnings: warnings}
}

// Walk reads the blueprint tree under root. Nodes are ordered depth-first
// with every directory before its children.
func (e *Engine) Walk(ctx context.Context, root string) ([]Node, error) {
	ok, err := e.fs.IsDir(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("checking blueprint root %s: %w", root, err)
	}
	if !ok {
		return nil, oerrors.NewSourceNotFoundError("blueprint directory does not exist", root)
	}

	var nodes []Node
	err = e.fs.Walk(ctx, root, func(entry fsys.Entry, content []byte) error {
		node := Node{RelativePath: entry.RelativePath, Mode: entry.Mode, Kind: KindFile, Content: content}
		if entry.IsDir {
			node.Kind = KindDir
			node.Content = nil
		}
		nodes = append(nodes, node)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking blueprint %s: %w", root, err)
	}

	slices.SortStableFunc(nodes, func(a, b Node) int {
		return comparePaths(a.RelativePath, b.RelativePath)
	})

	return nodes, nil
}

// comparePaths orders slash-separated paths segment by segment, so a
// directory sorts immediately before its contents.
func comparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

// plannedFile is a rendered file waiting to be written.
type plannedFile struct {
	target  string
	mode    os.FileMode
	content []byte
}

// Instantiate renders the blueprint at root with values and writes the
// result under dest. Writes already performed are not rolled back when a
// later write fails.
func (e *Engine) Instantiate(ctx context.Context, root string, values variant.Map, dest string, opts Options) (*Result, error) {
	nodes, err := e.Walk(ctx, root)
	if err != nil {
		return nil, err
	}

	renderer, err := NewRenderer(values)
	if err != nil {
		return nil, err
	}
	tokens := renderer.Tokens()
	output.Debug("instantiating blueprint", "root", root, "dest", dest, "markers", strings.Join(tokens.Markers(), " "))

	result := &Result{DestDir: dest}
	var files []plannedFile
	fileIndex := make(map[string]int)
	dirSeen := make(map[string]bool)

	for _, n := range nodes {
		target, err := renderer.RenderPath(n.RelativePath)
		if err != nil {
			return nil, err
		}

		if n.Kind == KindDir {
			if !dirSeen[target] {
				dirSeen[target] = true
				result.Dirs = append(result.Dirs, target)
			}
			continue
		}

		if IsBinary(n.Content) || !tokens.Contains(string(n.Content)) {
			output.Debug("copying content verbatim", "path", target)
		}
		pf := plannedFile{target: target, mode: n.Mode, content: renderer.RenderBytes(n.Content)}
		if i, dup := fileIndex[target]; dup {
			e.warnings.Add("%s is produced by more than one blueprint file; the last one wins", target)
			files[i] = pf
			continue
		}
		fileIndex[target] = len(files)
		files = append(files, pf)
	}

	for _, f := range files {
		abs := filepath.Join(dest, filepath.FromSlash(f.target))
		exists, err := e.fs.Exists(ctx, abs)
		if err != nil {
			return nil, fmt.Errorf("checking %s: %w", abs, err)
		}
		if !exists {
			continue
		}
		if opts.Conflict == ConflictFail {
			return nil, oerrors.NewAlreadyExistsError(
				fmt.Sprintf("destination file %s already exists", f.target),
				abs,
				"Remove the file or allow overwriting.",
			)
		}
		result.Overwritten = append(result.Overwritten, f.target)
	}

	for _, f := range files {
		result.Files = append(result.Files, f.target)
	}

	if opts.DryRun {
		return result, nil
	}

	for _, o := range result.Overwritten {
		e.warnings.Add("overwriting existing file %s", o)
	}

	if err := e.fs.MakeDir(ctx, dest); err != nil {
		return result, oerrors.WriteFailed("creating directory", dest, err)
	}
	for _, d := range result.Dirs {
		abs := filepath.Join(dest, filepath.FromSlash(d))
		if err := e.fs.MakeDir(ctx, abs); err != nil {
			return result, oerrors.WriteFailed("creating directory", abs, err)
		}
	}

	return result, e.writeFiles(ctx, dest, files, opts.Concurrency)
}

// writeFiles writes planned files, in parallel when concurrency > 1.
// The first failure stops the remaining writes.
func (e *Engine) writeFiles(ctx context.Context, dest string, files []plannedFile, concurrency int) error {
	write := func(ctx context.Context, f plannedFile) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		abs := filepath.Join(dest, filepath.FromSlash(f.target))
		// Ancestors may be missing when a value introduced new path segments.
		if err := e.fs.MakeDir(ctx, filepath.Dir(abs)); err != nil {
			return oerrors.WriteFailed("creating directory", filepath.Dir(abs), err)
		}
		if err := e.fs.WriteFile(ctx, abs, f.content, fileMode(f.mode)); err != nil {
			return oerrors.WriteFailed("writing", abs, err)
		}
		output.Debug("wrote file", "path", f.target)
		return nil
	}

	if concurrency < 2 {
		for _, f := range files {
			if err := write(ctx, f); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, f := range files {
		g.Go(func() error {
			return write(gctx, f)
		})
	}
	return g.Wait()
}
