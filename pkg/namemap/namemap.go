package namemap

import (
	"path/filepath"
	"regexp"
	"strings"
)

// A Mapper derives the tree key for a directory entry.
type Mapper func(name, dir string, isFile bool) string

var separatorRun = regexp.MustCompile(`\W+(\w|$)`)

// CamelCase strips the extension from file names and folds every run of
// non-word characters into an upper-cased following character, so
// "my-file_name.txt" becomes "myFileName". A trailing run is dropped.
func CamelCase(name, dir string, isFile bool) string {
	if isFile {
		name = strings.TrimSuffix(name, Ext(name))
	}
	return separatorRun.ReplaceAllStringFunc(name, func(run string) string {
		last := run[len(run)-1:]
		if isWord(last[0]) {
			return strings.ToUpper(last)
		}
		return ""
	})
}

// Ext returns the final extension of name. Leading dots do not start an
// extension, so ".bashrc" has none.
func Ext(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	trimmed := strings.TrimLeft(base, ".")
	idx := strings.LastIndexByte(trimmed, '.')
	if idx < 0 {
		return ""
	}
	return trimmed[idx:]
}

func isWord(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
