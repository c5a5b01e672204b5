package fs

import (
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// NewBaseFilesystem creates a read-only Afero OS filesystem; crawling never writes
func NewBaseFilesystem() afero.Afero {
	return afero.Afero{Fs: afero.NewReadOnlyFs(afero.NewOsFs())}
}

// NewWritableFilesystem creates an Afero OS filesystem for the few things that
// write, like the debug log file
func NewWritableFilesystem() afero.Afero {
	return afero.Afero{Fs: afero.NewOsFs()}
}

// FromViper creates the crawl filesystem, rooted at "chroot" when it is set.
// Crawl paths are then interpreted inside that directory.
func FromViper(v *viper.Viper) afero.Afero {
	base := NewBaseFilesystem()
	if chroot := v.GetString(constants.ChrootFlag); chroot != "" {
		return afero.Afero{Fs: afero.NewBasePathFs(base.Fs, chroot)}
	}
	return base
}
