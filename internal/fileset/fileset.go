// Package fileset builds the base-name-keyed file mapping sent to the
// translation API.
package fileset

import "path/filepath"

// FileSet maps a file's base name to its local path. Keys are always base
// names with the directory stripped, so two paths sharing a base name
// collapse to a single entry.
type FileSet map[string]string

// Build resolves paths into a FileSet. On a base-name collision the later
// path wins; callers rely on this rather than getting an error.
func Build(paths []string) FileSet {
	fs := make(FileSet, len(paths))
	for _, p := range paths {
		fs[filepath.Base(p)] = p
	}
	return fs
}
