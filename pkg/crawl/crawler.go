package crawl

import (
	"path/filepath"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/tree"
	"github.com/spf13/afero"
)

// A Crawler mirrors a directory tree into a tree.Tree
type Crawler struct {
	Logger log.Logger
	FS     afero.Afero
	Loader loader.Loader
}

// NewCrawler builds a Crawler, used with dig
func NewCrawler(
	logger log.Logger,
	fs afero.Afero,
	ldr loader.Loader,
) *Crawler {
	return &Crawler{
		Logger: logger,
		FS:     fs,
		Loader: ldr,
	}
}

// Crawl walks root with opts. When root is a file, the result holds that one
// file under the key mapped from the empty name.
func (c *Crawler) Crawl(root string, opts Options) (tree.Tree, error) {
	debug := level.Debug(log.With(c.logger(), "method", "Crawl"))
	debug.Log("event", "crawl.start", "root", root, "tree", opts.Tree, "recursive", opts.Recursive)

	crawled, err := c.crawl(root, opts)
	if err != nil {
		return nil, err
	}

	debug.Log("event", "crawl.done", "root", root, "leaves", crawled.Leaves())
	return crawled, nil
}

func (c *Crawler) crawl(dir string, opts Options) (tree.Tree, error) {
	names, err := c.entries(dir)
	if err != nil {
		return nil, err
	}

	debug := level.Debug(log.With(c.logger(), "method", "crawl", "dir", dir))
	store := tree.Tree{}

	for _, name := range names {
		entryPath := filepath.Join(dir, name)
		info, err := c.FS.Stat(entryPath)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", entryPath)
		}
		isFile := !info.IsDir()
		key := opts.name(name, dir, isFile)

		if isFile {
			if !opts.Match.Test(name) || opts.Not.Test(name) || entryPath == opts.Index {
				debug.Log("event", "entry.skip", "path", entryPath)
				continue
			}

			value, err := c.load(entryPath, opts)
			if err != nil {
				return nil, err
			}
			store[key] = tree.Leaf(value)
			continue
		}

		if opts.Ignore.Test(name) || !opts.Recursive {
			debug.Log("event", "entry.skip", "path", entryPath)
			continue
		}

		debug.Log("event", "dir.enter", "path", entryPath)
		branch, err := c.crawl(entryPath, opts)
		if err != nil {
			return nil, errors.Wrapf(err, "crawl %s", name)
		}

		if opts.Tree {
			store[key] = tree.Branch(branch)
		} else {
			store.Merge(branch)
		}
	}

	return store, nil
}

// entries lists dir, or yields the single empty name when dir is a file
func (c *Crawler) entries(dir string) ([]string, error) {
	info, err := c.FS.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", dir)
	}
	if !info.IsDir() {
		return []string{""}, nil
	}

	files, err := c.FS.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read dir %s", dir)
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, file.Name())
	}
	return names, nil
}

// load hands the file to the Loader if a Require pattern is set and matches
// its base name, and reads it as text otherwise
func (c *Crawler) load(filePath string, opts Options) (interface{}, error) {
	debug := level.Debug(log.With(c.logger(), "method", "load", "path", filePath))

	if opts.Require.Present() && opts.Require.Test(filepath.Base(filePath)) {
		if c.Loader == nil {
			return nil, errors.Errorf("load %s: no loader configured", filePath)
		}
		debug.Log("event", "file.load")
		return c.Loader.Load(filePath)
	}

	debug.Log("event", "file.read", "encoding", opts.Encoding)
	return loader.ReadText(c.FS, filePath, opts.Encoding)
}

func (c *Crawler) logger() log.Logger {
	if c.Logger == nil {
		return log.NewNopLogger()
	}
	return c.Logger
}
