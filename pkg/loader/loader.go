package loader

import (
	"path"
	"sort"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ErrNoDecoder is returned when no decoder is registered for a file's extension.
var ErrNoDecoder = errors.New("no decoder registered")

// A Loader turns a file into its parsed or executable form.
type Loader interface {
	Load(path string) (interface{}, error)
}

// A Decoder converts file contents into a leaf value.
type Decoder func(path string, contents []byte) (interface{}, error)

var _ Loader = &Registry{}

// Registry is a Loader that dispatches on file extension.
type Registry struct {
	Logger   log.Logger
	FS       afero.Afero
	decoders map[string]Decoder
}

// NewRegistry builds a Registry with the default decoders, used with dig
func NewRegistry(logger log.Logger, fs afero.Afero) *Registry {
	r := &Registry{
		Logger:   logger,
		FS:       fs,
		decoders: map[string]Decoder{},
	}
	r.Register(".json", DecodeJSON)
	r.Register(".yaml", DecodeYAML)
	r.Register(".yml", DecodeYAML)
	r.Register(".toml", DecodeTOML)
	r.Register(".tmpl", DecodeTemplate)
	r.Register(".go", DecodeScript)

	level.Debug(log.With(r.logger(), "method", "NewRegistry")).Log(
		"event", "registry.init",
		"extensions", strings.Join(r.Extensions(), ","),
	)
	return r
}

// Register installs decoder for ext, replacing any existing one.
func (r *Registry) Register(ext string, decoder Decoder) {
	if r.decoders == nil {
		r.decoders = map[string]Decoder{}
	}
	r.decoders[strings.ToLower(ext)] = decoder
}

// Extensions lists the extensions with a registered decoder, sorted.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.decoders))
	for ext := range r.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func (r *Registry) Load(filePath string) (interface{}, error) {
	debug := level.Debug(log.With(r.logger(), "method", "Load", "path", filePath))

	ext := strings.ToLower(path.Ext(filePath))
	decoder, ok := r.decoders[ext]
	if !ok {
		return nil, errors.Wrapf(ErrNoDecoder, "load %s: extension %q", filePath, ext)
	}

	contents, err := r.FS.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "read file %s", filePath)
	}

	debug.Log("event", "decode", "ext", ext, "size", len(contents))
	value, err := decoder(filePath, contents)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", filePath)
	}
	return value, nil
}

func (r *Registry) logger() log.Logger {
	if r.Logger == nil {
		return log.NewNopLogger()
	}
	return r.Logger
}
