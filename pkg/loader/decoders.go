package loader

import (
	"bytes"
	"encoding/json"
	"go/parser"
	"go/token"
	"path"
	"text/template"

	"github.com/Masterminds/sprig"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/replicatedhq/dirload/pkg/tree"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	yaml "gopkg.in/yaml.v3"
)

// ErrNoResolveFunc is returned for scripts that do not export a usable Resolve.
var ErrNoResolveFunc = errors.New("script does not export func Resolve(args ...interface{}) interface{}")

// ScriptEntrypoint is the function a Go script must export.
const ScriptEntrypoint = "Resolve"

// DecodeJSON parses JSON into plain maps, slices and float64 numbers.
func DecodeJSON(_ string, contents []byte) (interface{}, error) {
	var value interface{}
	if err := json.Unmarshal(contents, &value); err != nil {
		return nil, errors.Wrap(err, "unmarshal json")
	}
	return value, nil
}

// DecodeYAML parses a single YAML document.
func DecodeYAML(_ string, contents []byte) (interface{}, error) {
	var value interface{}
	if err := yaml.Unmarshal(contents, &value); err != nil {
		return nil, errors.Wrap(err, "unmarshal yaml")
	}
	return value, nil
}

// DecodeTOML parses a TOML document into a map.
func DecodeTOML(_ string, contents []byte) (interface{}, error) {
	value := map[string]interface{}{}
	if err := toml.Unmarshal(contents, &value); err != nil {
		return nil, errors.Wrap(err, "unmarshal toml")
	}
	return value, nil
}

// DecodeTemplate parses a text template with the sprig function map. The
// leaf renders the template when resolved; an empty render keeps the leaf.
func DecodeTemplate(filePath string, contents []byte) (interface{}, error) {
	tpl, err := template.New(path.Base(filePath)).
		Funcs(sprig.TxtFuncMap()).
		Parse(string(contents))
	if err != nil {
		return nil, errors.Wrap(err, "parse template")
	}

	return tree.Func(func(args ...interface{}) (interface{}, bool, error) {
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, templateData(args)); err != nil {
			return nil, false, errors.Wrapf(err, "execute template %s", tpl.Name())
		}
		rendered := buf.String()
		return rendered, rendered != "", nil
	}), nil
}

func templateData(args []interface{}) interface{} {
	switch len(args) {
	case 0:
		return nil
	case 1:
		return args[0]
	default:
		return args
	}
}

// DecodeScript interprets a Go source file and returns its exported Resolve
// function as a leaf.
func DecodeScript(filePath string, contents []byte) (interface{}, error) {
	file, err := parser.ParseFile(token.NewFileSet(), filePath, contents, parser.PackageClauseOnly)
	if err != nil {
		return nil, errors.Wrap(err, "parse package clause")
	}
	pkg := file.Name.Name

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, errors.Wrap(err, "load stdlib symbols")
	}
	if _, err := i.Eval(string(contents)); err != nil {
		return nil, errors.Wrap(err, "evaluate script")
	}

	symbol := pkg + "." + ScriptEntrypoint
	if pkg == "main" {
		symbol = ScriptEntrypoint
	}
	v, err := i.Eval(symbol)
	if err != nil {
		return nil, errors.Wrapf(ErrNoResolveFunc, "lookup %s.%s: %v", pkg, ScriptEntrypoint, err)
	}
	fn, ok := v.Interface().(func(...interface{}) interface{})
	if !ok {
		return nil, errors.Wrapf(ErrNoResolveFunc, "%s.%s has type %s", pkg, ScriptEntrypoint, v.Type())
	}
	return tree.Truthy(fn), nil
}
