package integration

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/cli"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/dirload"
	"github.com/spf13/viper"
)

func TestIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "integration")
}

var _ = Describe("dirload", func() {
	integrationDir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	testdata := filepath.Join(integrationDir, "testdata")

	files, err := ioutil.ReadDir(testdata)
	if err != nil {
		panic(err)
	}

	for _, file := range files {
		if !file.IsDir() {
			continue
		}
		casePath := filepath.Join(testdata, file.Name())

		Context(fmt.Sprintf("When the case in %q is run", file.Name()), func() {
			var metadata Metadata

			BeforeEach(func() {
				metadata, err = ReadMetadata(casePath)
				Expect(err).NotTo(HaveOccurred())
			})

			It("Should print the expected tree", func() {
				v := viper.New()
				v.Set(constants.DirFlag, filepath.Join(casePath, "input"))
				v.Set(constants.LogLevelFlag, "off")
				for key, value := range metadata.Set {
					v.Set(key, value)
				}

				app, err := dirload.GetFromViper(v)
				Expect(err).NotTo(HaveOccurred())
				ui := cli.NewMockUi()
				app.UI = ui

				switch metadata.Command {
				case "crawl":
					err = app.CrawlAndPrint("")
				case "resolve":
					err = app.ResolveAndPrint("", metadata.Args)
				default:
					Fail(fmt.Sprintf("unknown command %q", metadata.Command))
				}
				Expect(err).NotTo(HaveOccurred())

				expected, err := ioutil.ReadFile(filepath.Join(casePath, "expected"))
				Expect(err).NotTo(HaveOccurred())

				diff, err := Diff(string(expected), ui.OutputWriter.String())
				Expect(err).NotTo(HaveOccurred())
				Expect(diff).To(BeEmpty(), fmt.Sprintf("Output for %s did not match", casePath))
			})
		})
	}
})
