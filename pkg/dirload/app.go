package dirload

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/gosuri/uitable"
	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/crawl"
	"github.com/replicatedhq/dirload/pkg/resolve"
	"github.com/replicatedhq/dirload/pkg/tree"
	"github.com/replicatedhq/dirload/pkg/util"
	"github.com/replicatedhq/dirload/pkg/util/warnings"
	"github.com/replicatedhq/dirload/pkg/version"
	"github.com/spf13/viper"
)

// App backs the command line: it crawls with options read from viper and
// prints trees through the Ui
type App struct {
	Viper   *viper.Viper
	Logger  log.Logger
	UI      cli.Ui
	Crawler *crawl.Crawler
	Options crawl.Options
}

// NewApp builds an App, used with dig
func NewApp(
	v *viper.Viper,
	logger log.Logger,
	ui cli.Ui,
	crawler *crawl.Crawler,
	opts crawl.Options,
) *App {
	return &App{
		Viper:   v,
		Logger:  logger,
		UI:      ui,
		Crawler: crawler,
		Options: opts,
	}
}

// Crawl mirrors dir, or the configured dir when dir is empty
func (a *App) Crawl(dir string) (*Mirror, error) {
	debug := level.Debug(log.With(a.Logger, "method", "crawl"))

	opts := a.Options
	if dir != "" {
		switch {
		case a.Viper.GetString(constants.ChrootFlag) != "":
			if err := util.IsLegalPath(dir); err != nil {
				return nil, err
			}
		case !filepath.IsAbs(dir):
			abs, err := filepath.Abs(dir)
			if err != nil {
				return nil, errors.Wrapf(err, "resolve dir %s", dir)
			}
			dir = abs
		}
		opts.Dir = dir
	}

	debug.Log("event", "crawl", "dir", opts.Dir, "version", version.Version())
	mirror, err := LoadOptions(a.Crawler, opts)
	if err != nil && os.IsNotExist(errors.Cause(err)) {
		return nil, warnings.Warnf("directory %s does not exist", opts.Dir)
	}
	return mirror, err
}

// CrawlAndPrint crawls dir and prints the unresolved tree
func (a *App) CrawlAndPrint(dir string) error {
	mirror, err := a.Crawl(dir)
	if err != nil {
		return err
	}
	selected, err := a.selectNode(mirror.Tree)
	if err != nil {
		return err
	}
	return a.Print(selected)
}

// ResolveAndPrint crawls dir, resolves it with args and prints the result.
// Each arg is handed to callable leaves as a string.
func (a *App) ResolveAndPrint(dir string, args []string) error {
	debug := level.Debug(log.With(a.Logger, "method", "resolve"))

	mirror, err := a.Crawl(dir)
	if err != nil {
		return err
	}

	callArgs := make([]interface{}, 0, len(args))
	for _, arg := range args {
		callArgs = append(callArgs, arg)
	}

	mode := resolve.FromArgs(callArgs...)
	debug.Log("event", "resolve", "mode", mode.Kind(), "args", len(callArgs))
	resolved, err := mirror.Resolve(mode)
	if err != nil {
		return errors.Wrap(err, "resolve tree")
	}
	selected, err := a.selectNode(resolved)
	if err != nil {
		return err
	}
	return a.Print(selected)
}

// selectNode narrows t to the node at the select key path. A selected leaf is
// kept under its own key.
func (a *App) selectNode(t tree.Tree) (tree.Tree, error) {
	selector := strings.Trim(a.Viper.GetString(constants.SelectFlag), "/")
	if selector == "" {
		return t, nil
	}

	keys := strings.Split(selector, "/")
	node, ok := t.Get(keys...)
	if !ok {
		return nil, warnings.Warnf("nothing found at %s", selector)
	}
	if node.IsBranch() {
		return node.Tree(), nil
	}
	return tree.Tree{keys[len(keys)-1]: node}, nil
}

// Print writes t to the Ui as yaml, json or a table of leaves, per the output
// setting
func (a *App) Print(t tree.Tree) error {
	exported := t.Export()

	var rendered []byte
	var err error
	switch format := a.Viper.GetString(constants.OutputFlag); format {
	case "json":
		rendered, err = json.MarshalIndent(exported, "", "  ")
	case "yaml", "":
		rendered, err = yaml.Marshal(exported)
	case "table":
		rendered, err = renderTable(t)
	default:
		return warnings.Warnf("unknown output format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "marshal tree")
	}

	a.UI.Output(string(rendered))

	if hasFuncs(t) {
		a.UI.Warn(constants.FuncLeafNotice)
	}
	return nil
}

// ExitWithError can be called if something goes wrong to print some friendly output
func (a *App) ExitWithError(err error) {
	if warnings.IsWarning(err) {
		a.ExitWithWarn(err)
		return
	}

	if a.Viper.GetString(constants.LogLevelFlag) == "debug" {
		a.UI.Error(fmt.Sprintf("There was an unexpected error! %+v", err))
	} else {
		a.UI.Error(fmt.Sprintf("There was an unexpected error! %v", err))
	}
	level.Warn(a.Logger).Log("event", "exit.withErr", "errorWithStack", fmt.Sprintf("%+v", err))
	a.exit()
}

// ExitWithWarn prints the warning under err without a stack and exits
func (a *App) ExitWithWarn(err error) {
	a.UI.Warn(fmt.Sprintf("%v", warnings.StripStackIfWarning(err)))
	a.exit()
}

func (a *App) exit() {
	if !a.Viper.GetBool(constants.NoOSExitFlag) {
		os.Exit(1)
	}
}

func renderTable(t tree.Tree) ([]byte, error) {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow("PATH", "VALUE")

	err := t.Walk(func(parents []string, key string, value interface{}) error {
		display, err := displayValue(value)
		if err != nil {
			return err
		}
		table.AddRow(path.Join(path.Join(parents...), key), display)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []byte(table.String()), nil
}

func displayValue(value interface{}) (string, error) {
	if _, ok := tree.AsFunc(value); ok {
		return tree.FuncPlaceholder, nil
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return "", errors.Wrap(err, "marshal leaf")
	}
	return string(b), nil
}

func hasFuncs(t tree.Tree) bool {
	found := false
	_ = t.Walk(func(_ []string, _ string, value interface{}) error {
		if _, ok := tree.AsFunc(value); ok {
			found = true
		}
		return nil
	})
	return found
}
