package cli

import (
	"github.com/replicatedhq/dirload/pkg/dirload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Crawl() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [DIR]",
		Short: "Print the mirrored tree of a directory",
		Long: `Crawl a directory and print its mirrored tree. Callable leaves,
templates and Go scripts, are printed as a placeholder.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := dirload.GetFromViper(viper.GetViper())
			if err != nil {
				return err
			}
			if err := app.CrawlAndPrint(dirArg(args)); err != nil {
				app.ExitWithError(err)
			}
			return nil
		},
	}
	return cmd
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
