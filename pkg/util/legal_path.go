package util

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/util/warnings"
)

// IsLegalPath checks that path is a relative path that stays inside the
// directory it is resolved against. Paths crawled under a chroot have to be.
func IsLegalPath(path string) error {
	if filepath.IsAbs(path) {
		return warnings.Warnf("cannot crawl an absolute path under a chroot: %s", path)
	}

	relPath, err := filepath.Rel(".", path)
	if err != nil {
		return errors.Wrap(err, "find relative path to dir")
	}

	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return warnings.Warnf("cannot crawl a path outside the chroot: %s", relPath)
	}

	return nil
}
