package version

import (
	"fmt"
	"time"
)

// set with -ldflags "-X github.com/replicatedhq/dirload/pkg/version.version=..."
var (
	version   = "dev"
	gitSHA    = ""
	buildTime = ""
)

var (
	build Build
)

type Build struct {
	Version      string    `json:"version"`
	GitSHA       string    `json:"git_sha,omitempty"`
	BuildTime    time.Time `json:"build_time,omitempty"`
	TimeFallback string    `json:"time_fallback,omitempty"`
}

func Init() {
	build.Version = version
	build.GitSHA = gitSHA
	if len(gitSHA) >= 7 {
		build.GitSHA = gitSHA[:7]
	}
	var err error
	build.BuildTime, err = time.Parse(time.RFC3339, buildTime)
	if err != nil {
		build.TimeFallback = buildTime
	}
}

func GetBuild() Build {
	return build
}

func Version() string {
	return build.Version
}

func GitSHA() string {
	return build.GitSHA
}

func BuildTime() time.Time {
	return build.BuildTime
}

// String renders the build on one line, e.g. "dirload 1.2.0 (abc1234, 2026-01-02T03:04:05Z)"
func (b Build) String() string {
	when := b.TimeFallback
	if !b.BuildTime.IsZero() {
		when = b.BuildTime.Format(time.RFC3339)
	}
	switch {
	case b.GitSHA != "" && when != "":
		return fmt.Sprintf("dirload %s (%s, %s)", b.Version, b.GitSHA, when)
	case b.GitSHA != "":
		return fmt.Sprintf("dirload %s (%s)", b.Version, b.GitSHA)
	default:
		return fmt.Sprintf("dirload %s", b.Version)
	}
}
