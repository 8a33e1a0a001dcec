// Package templates implements blueprint instantiation: marker substitution
// in file names, directory names and file contents.
package templates

import (
	"os"

	"github.com/opmodel/blueprint/internal/output"
)

// NodeKind distinguishes files from directories in a blueprint tree.
type NodeKind string

const (
	// KindFile is a regular file.
	KindFile NodeKind = "file"

	// KindDir is a directory.
	KindDir NodeKind = "directory"
)

// Node is one file or directory of a blueprint tree.
type Node struct {
	// RelativePath is slash-separated, relative to the blueprint root, and
	// may contain markers.
	RelativePath string

	Kind NodeKind
	Mode os.FileMode

	// Content is the raw file content; nil for directories.
	Content []byte
}

// ConflictPolicy decides what happens when a destination file exists.
type ConflictPolicy string

const (
	// ConflictOverwrite replaces existing files (last write wins).
	ConflictOverwrite ConflictPolicy = "overwrite"

	// ConflictFail aborts before writing anything.
	ConflictFail ConflictPolicy = "fail"
)

// Options configures an instantiation.
type Options struct {
	// Conflict is the policy for existing destination files. Default: overwrite.
	Conflict ConflictPolicy

	// Concurrency is the number of parallel file writes. Values below 2
	// write sequentially.
	Concurrency int

	// DryRun computes the result without touching the destination.
	DryRun bool
}

// Result describes what an instantiation wrote.
type Result struct {
	// DestDir is the destination root.
	DestDir string

	// Dirs lists created directories relative to DestDir, parents first.
	Dirs []string

	// Files lists written files relative to DestDir, in walk order.
	Files []string

	// Overwritten lists the subset of Files that already existed.
	Overwritten []string
}

// Status returns the display status of a written file.
func (r *Result) Status(file string) string {
	for _, o := range r.Overwritten {
		if o == file {
			return output.StatusOverwritten
		}
	}
	return output.StatusCreated
}
