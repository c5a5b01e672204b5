package config

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/crawl"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/namemap"
	"github.com/replicatedhq/dirload/pkg/pattern"
	"github.com/replicatedhq/dirload/pkg/util"
	"github.com/spf13/viper"
)

// SetDefaults registers the crawl defaults on v. Values set any other way win.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.DirFlag, constants.DefaultDir)
	v.SetDefault(constants.NotFlag, constants.DefaultNot)
	v.SetDefault(constants.MatchFlag, "")
	v.SetDefault(constants.IgnoreFlag, constants.DefaultIgnore)
	v.SetDefault(constants.RequireFlag, constants.DefaultRequire)
	v.SetDefault(constants.RecursiveFlag, true)
	v.SetDefault(constants.EncodingFlag, loader.DefaultEncoding)
	v.SetDefault(constants.TreeFlag, true)
}

// OptionsFromViper builds crawl options from v, used with dig. Patterns are
// regular expressions; an empty pattern is the pass-through filter. A
// relative dir is made absolute against the working directory, unless a chroot
// is set, in which case it has to stay relative and inside the chroot.
func OptionsFromViper(v *viper.Viper) (crawl.Options, error) {
	SetDefaults(v)

	var opts crawl.Options
	compiled := []struct {
		key string
		dst *pattern.Predicate
	}{
		{constants.NotFlag, &opts.Not},
		{constants.MatchFlag, &opts.Match},
		{constants.IgnoreFlag, &opts.Ignore},
		{constants.RequireFlag, &opts.Require},
	}
	for _, c := range compiled {
		p, err := pattern.Compile(v.GetString(c.key))
		if err != nil {
			return crawl.Options{}, errors.Wrapf(err, "option %s", c.key)
		}
		*c.dst = p
	}

	dir := v.GetString(constants.DirFlag)
	if v.GetString(constants.ChrootFlag) != "" {
		if err := util.IsLegalPath(dir); err != nil {
			return crawl.Options{}, errors.Wrapf(err, "option %s", constants.DirFlag)
		}
	} else {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return crawl.Options{}, errors.Wrapf(err, "resolve dir %s", dir)
		}
		dir = abs
	}

	opts.Dir = dir
	opts.Map = namemap.CamelCase
	opts.Recursive = v.GetBool(constants.RecursiveFlag)
	opts.Encoding = v.GetString(constants.EncodingFlag)
	opts.Tree = v.GetBool(constants.TreeFlag)
	return opts, nil
}
