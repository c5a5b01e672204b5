package loader

import (
	"os"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/testing/logger"
	"github.com/replicatedhq/dirload/pkg/tree"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, files map[string]string) *Registry {
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	for name, contents := range files {
		require.NoError(t, fs.WriteFile(name, []byte(contents), 0644), "write "+name)
	}
	return NewRegistry(&logger.TestLogger{T: t}, fs)
}

func TestRegistryStructuredFormats(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		contents string
		expect   interface{}
	}{
		{
			name:     "json",
			path:     "/b.json",
			contents: `{"x": 1, "list": ["a", true]}`,
			expect:   map[string]interface{}{"x": 1.0, "list": []interface{}{"a", true}},
		},
		{
			name:     "yaml",
			path:     "/values.yaml",
			contents: "replicas: 3\nname: web\n",
			expect:   map[string]interface{}{"replicas": 3, "name": "web"},
		},
		{
			name:     "yml upper case extension",
			path:     "/VALUES.YML",
			contents: "- one\n- two\n",
			expect:   []interface{}{"one", "two"},
		},
		{
			name:     "toml",
			path:     "/conf.toml",
			contents: "title = \"demo\"\n[server]\nport = 8080\n",
			expect: map[string]interface{}{
				"title":  "demo",
				"server": map[string]interface{}{"port": int64(8080)},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := require.New(t)
			r := newTestRegistry(t, map[string]string{test.path: test.contents})

			value, err := r.Load(test.path)
			req.NoError(err)

			diff := deep.Equal(value, test.expect)
			req.True(len(diff) == 0, "%v", strings.Join(diff, "\n"))
		})
	}
}

func TestRegistryErrors(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t, map[string]string{
		"/broken.json": "{",
		"/notes.txt":   "plain",
	})

	_, err := r.Load("/broken.json")
	req.Error(err)
	req.Contains(err.Error(), "decode /broken.json")

	_, err = r.Load("/notes.txt")
	req.Equal(ErrNoDecoder, errors.Cause(err))

	_, err = r.Load("/missing.json")
	req.True(os.IsNotExist(errors.Cause(err)), "expected not-exist, got %v", err)
}

func TestRegistryRegisterOverrides(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t, map[string]string{"/a.txt": "shout"})
	r.Register(".TXT", func(_ string, contents []byte) (interface{}, error) {
		return strings.ToUpper(string(contents)), nil
	})

	value, err := r.Load("/a.txt")
	req.NoError(err)
	req.Equal("SHOUT", value)
	req.Contains(r.Extensions(), ".txt")
}

func TestRegistryExtensionsSorted(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t, map[string]string{})

	req.Equal([]string{".go", ".json", ".tmpl", ".toml", ".yaml", ".yml"}, r.Extensions())
}

func TestTemplateLeaf(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t, map[string]string{
		"/greet.tmpl": `{{ if . }}hello {{ . | upper }}{{ end }}`,
		"/pair.tmpl":  `{{ index . 0 }}-{{ index . 1 }}`,
	})

	value, err := r.Load("/greet.tmpl")
	req.NoError(err)
	fn, ok := value.(tree.Func)
	req.True(ok, "expected tree.Func, got %T", value)

	result, replace, err := fn("world")
	req.NoError(err)
	req.True(replace)
	req.Equal("hello WORLD", result)

	_, replace, err = fn()
	req.NoError(err)
	req.False(replace, "empty render keeps the original leaf")

	value, err = r.Load("/pair.tmpl")
	req.NoError(err)
	result, _, err = value.(tree.Func)("a", "b")
	req.NoError(err)
	req.Equal("a-b", result)
}

func TestTemplateParseError(t *testing.T) {
	r := newTestRegistry(t, map[string]string{"/bad.tmpl": "{{ if }"})
	_, err := r.Load("/bad.tmpl")
	require.Error(t, err)
}

func TestScriptLeaf(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t, map[string]string{
		"/sum.go": `package sum

import "fmt"

func Resolve(args ...interface{}) interface{} {
	if len(args) == 0 {
		return nil
	}
	return fmt.Sprintf("%d args", len(args))
}
`,
		"/nofunc.go": `package nofunc

var Value = 1
`,
	})

	value, err := r.Load("/sum.go")
	req.NoError(err)
	fn, ok := value.(tree.Func)
	req.True(ok, "expected tree.Func, got %T", value)

	result, replace, err := fn(1, 2, 3)
	req.NoError(err)
	req.True(replace)
	req.Equal("3 args", result)

	_, replace, err = fn()
	req.NoError(err)
	req.False(replace)

	_, err = r.Load("/nofunc.go")
	req.Equal(ErrNoResolveFunc, errors.Cause(err))
}

func TestReadText(t *testing.T) {
	req := require.New(t)
	fs := afero.Afero{Fs: afero.NewMemMapFs()}
	req.NoError(fs.WriteFile("/utf8.txt", []byte("héllo"), 0644))
	req.NoError(fs.WriteFile("/latin1.txt", []byte{'c', 'a', 'f', 0xe9}, 0644))

	text, err := ReadText(fs, "/utf8.txt", "")
	req.NoError(err)
	req.Equal("héllo", text)

	text, err = ReadText(fs, "/latin1.txt", "latin1")
	req.NoError(err)
	req.Equal("café", text)

	_, err = ReadText(fs, "/utf8.txt", "klingon")
	req.Equal(ErrUnknownEncoding, errors.Cause(err))

	_, err = ReadText(fs, "/missing.txt", "utf-8")
	req.True(os.IsNotExist(errors.Cause(err)))
}
