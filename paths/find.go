// Package paths locates sprite table data files and the sprite pictures
// they reference.
package paths

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// DataDirEnv names the environment variable that, if set, is searched before
// any of the built-in locations.
const DataDirEnv = "SPRITETABLE_DATA_DIR"

// possibleDirs lists the directories searched by Find, in order.
func possibleDirs() []string {
	var dirs []string
	if d := os.Getenv(DataDirEnv); d != "" {
		dirs = append(dirs, d)
	}
	dirs = append(dirs,
		".",
		"datafiles",
		os.Args[0]+".runfiles/go_spritetable/datafiles",
	)
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src/badc0de.net/pkg/go-spritetable/datafiles"))
	}
	return dirs
}

// Find locates the passed data file name and returns an absolute or relative
// path to find it at. If the name is already a path to an existing file, it
// is returned as is.
//
// For example, for "sprites.e2gt" it may return "datafiles/sprites.e2gt".
//
// If the file cannot be found, an empty string is returned.
func Find(fileName string) string {
	if _, err := os.Stat(fileName); err == nil {
		return fileName
	}
	if filepath.IsAbs(fileName) {
		return ""
	}
	for _, dir := range possibleDirs() {
		path := filepath.Join(dir, fileName)
		if _, err := os.Stat(path); err == nil {
			glog.V(2).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would look,
// and opens it. If Find returns an empty string, an error is returned.
func Open(fileName string) (interface {
	io.ReadCloser
	io.Seeker
}, error) {
	path := Find(fileName)
	if path == "" {
		return nil, errors.Wrapf(os.ErrNotExist, "paths.Open(%q): not found in any of %q", fileName, possibleDirs())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "paths.Open(%q)", fileName)
	}
	return f, nil
}
