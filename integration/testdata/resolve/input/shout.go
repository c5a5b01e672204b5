package shout

import (
	"fmt"
	"strings"
)

func Resolve(args ...interface{}) interface{} {
	if len(args) == 0 {
		return nil
	}
	return strings.ToUpper(fmt.Sprint(args[0]))
}
