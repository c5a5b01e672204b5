// Package dirload mirrors a directory tree into memory. Files are read as text
// or, when their name matches the require pattern, loaded into their parsed or
// executable form. The returned Mirror can then be resolved, any number of
// times, to call or transform its leaves.
package dirload

import (
	"path/filepath"

	"github.com/go-kit/kit/log"
	"github.com/go-stack/stack"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/crawl"
	"github.com/replicatedhq/dirload/pkg/fs"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/namemap"
	"github.com/replicatedhq/dirload/pkg/pattern"
	"github.com/replicatedhq/dirload/pkg/resolve"
	"github.com/replicatedhq/dirload/pkg/tree"
	"github.com/spf13/afero"
)

// Mirror is a crawled tree that can be resolved repeatedly.
type Mirror struct {
	Tree    tree.Tree
	Options crawl.Options
}

// Resolve runs a resolve pass over the mirror's tree, in place.
func (m *Mirror) Resolve(mode resolve.Mode) (tree.Tree, error) {
	return resolve.Resolve(m.Tree, mode)
}

// Call resolves with the mode picked by resolve.FromArgs: nothing, a single
// transform function, a single []interface{} to spread, or plain arguments.
func (m *Mirror) Call(args ...interface{}) (tree.Tree, error) {
	return m.Resolve(resolve.FromArgs(args...))
}

// Defaults returns the options Load starts from.
func Defaults() crawl.Options {
	return crawl.DefaultOptions()
}

// Map is the default name mapper.
var Map namemap.Mapper = namemap.CamelCase

type settings struct {
	opts   crawl.Options
	base   string
	fs     afero.Afero
	loader loader.Loader
	logger log.Logger
}

// An Option adjusts a Load call.
type Option func(*settings)

func WithNot(p interface{}) Option {
	return func(s *settings) { s.opts.Not = pattern.MustNormalize(p) }
}

func WithMatch(p interface{}) Option {
	return func(s *settings) { s.opts.Match = pattern.MustNormalize(p) }
}

func WithIgnore(p interface{}) Option {
	return func(s *settings) { s.opts.Ignore = pattern.MustNormalize(p) }
}

func WithRequire(p interface{}) Option {
	return func(s *settings) { s.opts.Require = pattern.MustNormalize(p) }
}

// WithMap replaces the name mapper; nil keeps raw entry names.
func WithMap(m namemap.Mapper) Option {
	return func(s *settings) { s.opts.Map = m }
}

func WithRecursive(recursive bool) Option {
	return func(s *settings) { s.opts.Recursive = recursive }
}

func WithEncoding(label string) Option {
	return func(s *settings) { s.opts.Encoding = label }
}

// WithTree chooses nested output; false merges sub-directories into their parent.
func WithTree(nested bool) Option {
	return func(s *settings) { s.opts.Tree = nested }
}

// WithIndex overrides the file excluded from loading, which defaults to the
// caller's own source file.
func WithIndex(index string) Option {
	return func(s *settings) { s.opts.Index = index }
}

// WithBase overrides the directory a relative dir is resolved against, which
// defaults to the directory of the caller's source file.
func WithBase(base string) Option {
	return func(s *settings) { s.base = base }
}

func WithFilesystem(fs afero.Afero) Option {
	return func(s *settings) { s.fs = fs }
}

func WithLoader(l loader.Loader) Option {
	return func(s *settings) { s.loader = l }
}

func WithLogger(logger log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// Load crawls dir, resolved relative to the calling source file, and never
// loads the calling file itself. Pattern options panic on values that cannot
// be used as a pattern.
func Load(dir string, options ...Option) (*Mirror, error) {
	caller := stack.Caller(1).Frame().File

	s := settings{
		opts:   crawl.DefaultOptions(),
		base:   filepath.Dir(caller),
		logger: log.NewNopLogger(),
	}
	s.opts.Index = caller
	for _, option := range options {
		option(&s)
	}

	if dir == "" {
		dir = s.opts.Dir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.base, dir)
	}
	s.opts.Dir = filepath.Clean(dir)
	if s.opts.Index != "" {
		s.opts.Index = filepath.Clean(s.opts.Index)
	}

	if s.fs.Fs == nil {
		s.fs = fs.NewBaseFilesystem()
	}
	if s.loader == nil {
		s.loader = loader.NewRegistry(s.logger, s.fs)
	}

	return LoadOptions(crawl.NewCrawler(s.logger, s.fs, s.loader), s.opts)
}

// LoadOptions crawls opts.Dir with a fully built options record.
func LoadOptions(crawler *crawl.Crawler, opts crawl.Options) (*Mirror, error) {
	crawled, err := crawler.Crawl(opts.Dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", opts.Dir)
	}
	return &Mirror{Tree: crawled, Options: opts}, nil
}
