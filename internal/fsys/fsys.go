// Package fsys provides the filesystem primitives used by the blueprint core.
// The default implementation is backed by github.com/viant/afs.
package fsys

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// Default permissions for created entries.
const (
	DirMode  os.FileMode = 0o755
	FileMode os.FileMode = 0o644
)

// Entry is one file or directory visited by Walk.
type Entry struct {
	// RelativePath is slash-separated and relative to the walk root.
	RelativePath string

	IsDir bool
	Mode  os.FileMode
}

// WalkFunc receives each entry under a root. Content is nil for directories.
type WalkFunc func(entry Entry, content []byte) error

// SkipFunc reports whether a relative path (and everything below it) is excluded.
type SkipFunc func(relativePath string, isDir bool) bool

// FS is the filesystem capability consumed by the locator, engine and manager.
type FS interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDir(ctx context.Context, path string) (bool, error)
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, mode os.FileMode) error
	MakeDir(ctx context.Context, path string) error
	CopyTree(ctx context.Context, src, dst string, skip SkipFunc) error
	RemoveTree(ctx context.Context, path string) error
	ListDirs(ctx context.Context, path string) ([]string, error)
	Walk(ctx context.Context, root string, fn WalkFunc) error
}

// AFS implements FS on top of an afs.Service.
type AFS struct {
	fs afs.Service
}

// New creates an afs-backed filesystem.
func New() *AFS {
	return &AFS{fs: afs.New()}
}

// Exists reports whether path exists.
func (a *AFS) Exists(ctx context.Context, path string) (bool, error) {
	return a.fs.Exists(ctx, path)
}

// IsDir reports whether path exists and is a directory.
func (a *AFS) IsDir(ctx context.Context, path string) (bool, error) {
	ok, err := a.fs.Exists(ctx, path)
	if err != nil || !ok {
		return false, err
	}
	obj, err := a.fs.Object(ctx, path)
	if err != nil {
		return false, err
	}
	return obj.IsDir(), nil
}

// ReadFile returns the content of the file at path.
func (a *AFS) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return a.fs.DownloadWithURL(ctx, path)
}

// WriteFile writes data to path, creating parent directories as needed.
// An existing file is replaced.
func (a *AFS) WriteFile(ctx context.Context, path string, data []byte, mode os.FileMode) error {
	if mode == 0 {
		mode = FileMode
	}
	return a.fs.Upload(ctx, path, mode, bytes.NewReader(data))
}

// MakeDir creates path and any missing parents.
func (a *AFS) MakeDir(ctx context.Context, path string) error {
	return a.fs.Create(ctx, path, DirMode|os.ModeDir, true)
}

// RemoveTree deletes path recursively.
func (a *AFS) RemoveTree(ctx context.Context, path string) error {
	return a.fs.Delete(ctx, path)
}

// ListDirs returns the names of the immediate subdirectories of path, sorted.
func (a *AFS) ListDirs(ctx context.Context, dir string) ([]string, error) {
	objects, err := a.fs.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	self := filepath.ToSlash(filepath.Clean(dir))
	var names []string
	for i, obj := range objects {
		// afs reports the listed directory itself as the first object.
		if i == 0 && strings.HasSuffix(strings.TrimSuffix(obj.URL(), "/"), self) {
			continue
		}
		if obj.IsDir() {
			names = append(names, obj.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Walk visits every entry below root, parents before their children.
func (a *AFS) Walk(ctx context.Context, root string, fn WalkFunc) error {
	return a.fs.Walk(ctx, root, func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		rel := path.Join(filepath.ToSlash(parent), info.Name())
		if rel == "" || rel == "." {
			return true, nil
		}

		entry := Entry{RelativePath: rel, IsDir: info.IsDir(), Mode: info.Mode().Perm()}
		if entry.IsDir {
			return true, fn(entry, nil)
		}

		var content []byte
		var err error
		if reader != nil {
			content, err = io.ReadAll(reader)
		} else {
			content, err = a.fs.DownloadWithURL(ctx, url.Join(baseURL, rel))
		}
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", rel, err)
		}
		if content == nil {
			content = []byte{}
		}

		return true, fn(entry, content)
	})
}

// CopyTree copies the contents of src into dst verbatim. Entries for which
// skip returns true are not copied; a skipped directory is not descended.
func (a *AFS) CopyTree(ctx context.Context, src, dst string, skip SkipFunc) error {
	if err := a.MakeDir(ctx, dst); err != nil {
		return err
	}

	var skipped []string
	return a.Walk(ctx, src, func(entry Entry, content []byte) error {
		for _, prefix := range skipped {
			if strings.HasPrefix(entry.RelativePath, prefix+"/") {
				return nil
			}
		}
		if skip != nil && skip(entry.RelativePath, entry.IsDir) {
			if entry.IsDir {
				skipped = append(skipped, entry.RelativePath)
			}
			return nil
		}

		target := filepath.Join(dst, filepath.FromSlash(entry.RelativePath))
		if entry.IsDir {
			return a.MakeDir(ctx, target)
		}
		return a.WriteFile(ctx, target, content, entry.Mode)
	})
}
