package matchers

import (
	"fmt"
	"path"
	"strings"

	"github.com/golang/mock/gomock"
)

var _ gomock.Matcher = &Under{}

// Under matches slash paths inside Dir, at any depth
type Under struct {
	Dir string
}

func (u *Under) String() string {
	return fmt.Sprintf("a path under %s", u.Dir)
}

func (u *Under) Matches(x interface{}) bool {
	p, ok := x.(string)
	if !ok {
		return false
	}
	return strings.HasPrefix(path.Clean(p), path.Clean(u.Dir)+"/")
}

var _ gomock.Matcher = &Is{}

type Is struct {
	Test     func(v interface{}) bool
	Describe string
}

func (s *Is) String() string {
	return fmt.Sprintf("Is{%s}", s.Describe)
}

func (s *Is) Matches(x interface{}) bool {
	return s.Test(x)
}
