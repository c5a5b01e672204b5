package dirload

import (
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/crawl"
	"github.com/replicatedhq/dirload/pkg/loader"
	"github.com/replicatedhq/dirload/pkg/testing/logger"
	"github.com/replicatedhq/dirload/pkg/util/warnings"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T, output string) (*App, *cli.MockUi) {
	v := viper.New()
	v.Set(constants.OutputFlag, output)

	log := &logger.TestLogger{T: t}
	mem := projectFS(t)
	crawler := crawl.NewCrawler(log, mem, loader.NewRegistry(log, mem))

	opts := crawl.DefaultOptions()
	opts.Dir = "/project"
	opts.Index = "/project/index.json"

	ui := cli.NewMockUi()
	return NewApp(v, log, ui, crawler, opts), ui
}

func TestAppCrawlAndPrintYAML(t *testing.T) {
	req := require.New(t)
	app, ui := testApp(t, "yaml")

	req.NoError(app.CrawlAndPrint(""))
	out := ui.OutputWriter.String()
	req.Contains(out, "port: 8080")
	req.Contains(out, "# docs")
	req.Contains(out, "notes: text")
	req.Contains(out, "greeting:")
	req.Contains(out, "func")
	req.Contains(ui.ErrorWriter.String(), constants.FuncLeafNotice)
}

func TestAppResolveAndPrintJSON(t *testing.T) {
	req := require.New(t)
	app, ui := testApp(t, "json")

	req.NoError(app.ResolveAndPrint("", []string{"dirload"}))
	req.Equal(`{
  "config": {
    "port": 8080
  },
  "docs": {
    "readMe": "# docs"
  },
  "greeting": "Hello dirload",
  "notes": "text"
}
`, ui.OutputWriter.String())
	req.Empty(ui.ErrorWriter.String())
}

func TestAppCrawlSubdir(t *testing.T) {
	req := require.New(t)
	app, ui := testApp(t, "json")

	req.NoError(app.CrawlAndPrint("/project/docs"))
	req.Contains(ui.OutputWriter.String(), `"readMe": "# docs"`)
}

func TestAppSelect(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		resolve  bool
		expect   string
	}{
		{name: "branch", selector: "config", expect: "port: 8080\n"},
		{name: "nested leaf", selector: "/docs/readMe", expect: "readMe: '# docs'\n"},
		{name: "resolved leaf", selector: "greeting", resolve: true, expect: "greeting: Hello dirload\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := require.New(t)
			app, ui := testApp(t, "yaml")
			app.Viper.Set(constants.SelectFlag, test.selector)

			if test.resolve {
				req.NoError(app.ResolveAndPrint("", []string{"dirload"}))
			} else {
				req.NoError(app.CrawlAndPrint(""))
			}
			req.Equal(test.expect, ui.OutputWriter.String())
		})
	}
}

func TestAppSelectMissing(t *testing.T) {
	req := require.New(t)
	app, _ := testApp(t, "yaml")
	app.Viper.Set(constants.SelectFlag, "config/port/deeper")

	err := app.CrawlAndPrint("")
	req.Error(err)
	req.True(warnings.IsWarning(err))
	req.Equal("nothing found at config/port/deeper", err.Error())
}

func TestAppUnknownFormat(t *testing.T) {
	req := require.New(t)
	app, _ := testApp(t, "xml")

	err := app.CrawlAndPrint("")
	req.Error(err)
	req.True(warnings.IsWarning(err))
	req.Contains(err.Error(), `unknown output format "xml"`)
}

func TestAppCrawlMissingDir(t *testing.T) {
	req := require.New(t)
	app, _ := testApp(t, "yaml")

	err := app.CrawlAndPrint("/nowhere")
	req.Error(err)
	req.True(warnings.IsWarning(err))
	req.Equal("directory /nowhere does not exist", err.Error())
}

func TestAppCrawlChrootRejectsEscape(t *testing.T) {
	req := require.New(t)
	app, _ := testApp(t, "yaml")
	app.Viper.Set(constants.ChrootFlag, "/project")

	err := app.CrawlAndPrint("../etc")
	req.Error(err)
	req.True(warnings.IsWarning(err))
}

func TestAppExitWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantErr  string
		wantWarn string
	}{
		{
			name:     "warning",
			err:      errors.Wrap(warnings.New("directory /srv does not exist"), "crawl"),
			wantWarn: "directory /srv does not exist\n",
		},
		{
			name:    "error",
			err:     errors.Wrap(errors.New("permission denied"), "crawl /srv"),
			wantErr: "There was an unexpected error! crawl /srv: permission denied\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := require.New(t)
			app, ui := testApp(t, "yaml")
			app.Viper.Set(constants.NoOSExitFlag, true)

			app.ExitWithError(test.err)

			if test.wantWarn != "" {
				req.Equal(test.wantWarn, ui.ErrorWriter.String())
			}
			if test.wantErr != "" {
				req.Equal(test.wantErr, ui.ErrorWriter.String())
			}
		})
	}
}

func TestAppExitWithErrorDebugStack(t *testing.T) {
	req := require.New(t)
	app, ui := testApp(t, "yaml")
	app.Viper.Set(constants.NoOSExitFlag, true)
	app.Viper.Set(constants.LogLevelFlag, "debug")

	app.ExitWithError(errors.New("boom"))
	req.Contains(ui.ErrorWriter.String(), "There was an unexpected error! boom")
	req.Contains(ui.ErrorWriter.String(), "app_test.go")
}

func TestAppPrintTable(t *testing.T) {
	req := require.New(t)
	app, ui := testApp(t, "table")

	req.NoError(app.CrawlAndPrint(""))
	out := ui.OutputWriter.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	req.Len(lines, 5)
	req.True(strings.HasPrefix(lines[0], "PATH"))
	req.Contains(lines[1], "config")
	req.Contains(lines[1], `{"port":8080}`)
	req.Contains(lines[2], "docs/readMe")
	req.Contains(lines[3], "greeting")
	req.Contains(lines[4], "notes")
}
