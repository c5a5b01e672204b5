package crawl

import (
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/namemap"
	"github.com/replicatedhq/dirload/pkg/pattern"
)

// Options configures a single crawl. Pattern fields are already normalized;
// a nil pattern passes every name, so a nil Not drops every file and a nil
// Ignore skips every directory. A nil Require loads nothing.
type Options struct {
	// Dir is the root to crawl
	Dir string
	// Not excludes file names
	Not pattern.Predicate
	// Match, when set, is the only way a file name gets in
	Match pattern.Predicate
	// Ignore excludes directory names from recursion
	Ignore pattern.Predicate
	// Require selects file names handed to the Loader instead of read as text
	Require pattern.Predicate
	// Map derives tree keys; nil keeps raw names
	Map namemap.Mapper

	Recursive bool
	Encoding  string
	// Tree nests sub-directories; when false their entries are merged into the parent
	Tree bool
	// Index is the entry-point file, never loaded
	Index string
}

// DefaultOptions returns the defaults for crawling the current directory.
func DefaultOptions() Options {
	return Options{
		Dir:       constants.DefaultDir,
		Not:       pattern.MustCompile(constants.DefaultNot),
		Ignore:    pattern.MustCompile(constants.DefaultIgnore),
		Require:   pattern.MustCompile(constants.DefaultRequire),
		Map:       namemap.CamelCase,
		Recursive: true,
		Encoding:  loader.DefaultEncoding,
		Tree:      true,
	}
}

func (o Options) name(raw, dir string, isFile bool) string {
	if o.Map == nil {
		return raw
	}
	return o.Map(raw, dir, isFile)
}
