// Package webroot exposes a directory on the local disk as the file tree a
// dev server instance serves from.
package webroot

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Root is a validated serving directory. It satisfies http.FileSystem, so it
// can be handed directly to http.FileServer.
type Root struct {
	dir string
}

// New returns a Root backed by dir. The directory must exist when the server
// starts; requests for files that disappear later surface as 404s instead.
func New(dir string) (Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Root{}, errors.Wrapf(err, "unable to resolve serving root %q", dir)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return Root{}, errors.Wrapf(err, "unable to stat serving root %q", abs)
	}
	if !fi.IsDir() {
		return Root{}, errors.Errorf("serving root %q is not a directory", abs)
	}
	return Root{dir: abs}, nil
}

// Open resolves name against the root. http.Dir refuses paths that would
// escape the root, so no extra traversal checks are needed here.
func (r Root) Open(name string) (http.File, error) {
	return http.Dir(r.dir).Open(name)
}

// Dir is the absolute path of the serving directory.
func (r Root) Dir() string {
	return r.dir
}
