package templates

import (
	"os"

	"github.com/opmodel/blueprint/internal/fsys"
)

// fileMode returns the permission bits to write a file with.
// Blueprint files keep their mode; unknown modes fall back to the default.
func fileMode(mode os.FileMode) os.FileMode {
	if m := mode.Perm(); m != 0 {
		return m
	}
	return fsys.FileMode
}
