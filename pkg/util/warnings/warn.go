package warnings

import (
	"fmt"

	"github.com/pkg/errors"
)

// A warning is an expected failure, reported to the user without a stack
type warning struct {
	msg string
}

func (w warning) Error() string {
	return w.msg
}

// New returns a warning with msg
func New(msg string) error {
	return warning{msg: msg}
}

// Warnf returns a formatted warning
func Warnf(format string, args ...interface{}) error {
	return warning{msg: fmt.Sprintf(format, args...)}
}

// IsWarning reports whether the cause of err is a warning
func IsWarning(err error) bool {
	_, ok := errors.Cause(err).(warning)
	return ok
}

// StripStackIfWarning returns the bare warning under err, or err unchanged
// when it is not a warning
func StripStackIfWarning(err error) error {
	if IsWarning(err) {
		return errors.Cause(err)
	}
	return err
}
