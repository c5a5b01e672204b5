package integration

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	yaml "gopkg.in/yaml.v3"
)

// Metadata describes one golden case under testdata
type Metadata struct {
	// Command is crawl or resolve
	Command string `yaml:"command"`
	// Args are handed to callable leaves on resolve
	Args []string `yaml:"args"`
	// Set overrides config keys, e.g. tree or output
	Set map[string]interface{} `yaml:"set"`
}

// ReadMetadata reads metadata.yaml from a case directory
func ReadMetadata(casePath string) (Metadata, error) {
	var metadata Metadata
	contents, err := ioutil.ReadFile(filepath.Join(casePath, "metadata.yaml"))
	if err != nil {
		return metadata, errors.Wrap(err, "read metadata")
	}
	if err := yaml.Unmarshal(contents, &metadata); err != nil {
		return metadata, errors.Wrap(err, "unmarshal metadata")
	}
	if metadata.Command == "" {
		metadata.Command = "crawl"
	}
	return metadata, nil
}

// Diff returns a unified diff of expected and actual, or "" when they match
func Diff(expected, actual string) (string, error) {
	// kind of a hack -- remove any trailing newlines (because text editors are hard to use)
	expected = strings.TrimRight(expected, "\n")
	actual = strings.TrimRight(actual, "\n")

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected output",
		ToFile:   "actual output",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
