// Package matlab implements introduced.Installation over a local MATLAB
// installation directory.
package matlab

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fwojciec/introduced"
)

// sourceExtensions are the file types a function name can resolve to
// under the toolbox tree.
var sourceExtensions = []string{".m", ".p", ".mlx"}

// Ensure Installation implements introduced.Installation at compile time.
var _ introduced.Installation = (*Installation)(nil)

// Installation introspects a MATLAB installation rooted at a directory.
type Installation struct {
	// Root is the installation directory (matlabroot).
	Root string

	// Version is the installation's release token, e.g. "R2023b".
	Version string
}

// NewInstallation creates an Installation for the given root and release.
func NewInstallation(root, version string) *Installation {
	return &Installation{Root: root, Version: version}
}

// Release returns the installation's release token.
func (i *Installation) Release() string {
	return i.Version
}

// Which searches the installation's toolbox tree for a source file whose
// stem matches name (case-insensitive) and returns its path relative to
// the root. The first hit in walk order wins, mirroring how the path
// shadows duplicates.
func (i *Installation) Which(name string) (string, bool) {
	name = strings.ToLower(name)
	toolbox := filepath.Join(i.Root, "toolbox")

	var found string
	_ = filepath.WalkDir(toolbox, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		base := strings.ToLower(d.Name())
		for _, ext := range sourceExtensions {
			if base == name+ext {
				if rel, err := filepath.Rel(i.Root, p); err == nil {
					found = rel
				} else {
					found = p
				}
				return fs.SkipAll
			}
		}
		return nil
	})

	return found, found != ""
}
