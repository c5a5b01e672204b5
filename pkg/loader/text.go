package loader

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned for encoding labels htmlindex does not know.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

// Encoding looks up a WHATWG encoding label such as "utf-8", "latin1" or
// "shift_jis".
func Encoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, DefaultEncoding) || strings.EqualFold(label, "utf8") {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", label)
	}
	return enc, nil
}

// ReadText reads the file at filePath and decodes it to a string.
func ReadText(fs afero.Afero, filePath string, label string) (string, error) {
	enc, err := Encoding(label)
	if err != nil {
		return "", err
	}

	contents, err := fs.ReadFile(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "read file %s", filePath)
	}

	decoded, err := enc.NewDecoder().Bytes(contents)
	if err != nil {
		return "", errors.Wrapf(err, "decode %s as %s", filePath, label)
	}
	return string(decoded), nil
}
