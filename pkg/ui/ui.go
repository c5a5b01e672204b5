package ui

import (
	"io"
	"os"

	"github.com/mitchellh/cli"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/spf13/viper"
)

// FromViper builds the terminal Ui on stdin/stdout/stderr
func FromViper(v *viper.Viper) cli.Ui {
	return New(v, os.Stdin, os.Stdout, os.Stderr)
}

// New builds a Ui on the given streams. Output is colored unless no-color is
// set or stdout is not a terminal and force-color is unset.
func New(v *viper.Viper, in io.Reader, out, errOut io.Writer) cli.Ui {
	base := &cli.BasicUi{
		Reader:      in,
		Writer:      out,
		ErrorWriter: errOut,
	}

	if v.GetBool(constants.NoColorFlag) {
		return base
	}

	if !isTerminal(out) && !v.GetBool(constants.ForceColorFlag) {
		return base
	}

	return &cli.ColoredUi{
		OutputColor: cli.UiColorNone,
		ErrorColor:  cli.UiColorRed,
		WarnColor:   cli.UiColorYellow,
		InfoColor:   cli.UiColorGreen,
		Ui:          base,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
