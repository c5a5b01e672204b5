// in some cases we have to use a real os fs and not a mem map, e.g. to crawl
// a source file's own directory
package tmpfs

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func Tmpdir(t *testing.T) (string, func()) {
	req := require.New(t)
	d, err := ioutil.TempDir("", "dirload")
	req.NoError(err)

	// macOS hands out a symlinked temp dir; crawl paths are compared verbatim
	d, err = filepath.EvalSymlinks(d)
	req.NoError(err)

	return d, func() {
		os.RemoveAll(d)
	}
}

func Tmpfs(t *testing.T) (afero.Afero, func()) {
	dir, cleanup := Tmpdir(t)
	fs := afero.Afero{
		Fs: afero.NewBasePathFs(afero.NewOsFs(), dir),
	}
	return fs, cleanup
}

// Populate writes files relative to dir, creating parent directories.
func Populate(t *testing.T, dir string, files map[string]string) {
	req := require.New(t)
	for name, contents := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		req.NoError(os.MkdirAll(filepath.Dir(full), 0755), "mkdir for "+name)
		req.NoError(ioutil.WriteFile(full, []byte(contents), 0644), "write "+name)
	}
}
