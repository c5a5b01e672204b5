package logger

import (
	"bytes"
	"testing"

	"github.com/go-kit/kit/log"
)

var _ log.Logger = &TestLogger{}

// TestLogger sends logfmt lines to the test log, so they only show up for
// failing or verbose runs.
type TestLogger struct {
	T *testing.T
}

func (t *TestLogger) Log(keyvals ...interface{}) error {
	var buf bytes.Buffer
	if err := log.NewLogfmtLogger(&buf).Log(keyvals...); err != nil {
		t.T.Log(keyvals...)
		return nil
	}
	t.T.Helper()
	t.T.Log(buf.String())
	return nil
}
