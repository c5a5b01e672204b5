package cli

import (
	"github.com/replicatedhq/dirload/pkg/constants"
	"github.com/replicatedhq/dirload/pkg/dirload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Resolve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [DIR]",
		Short: "Print a directory's tree with callable leaves called",
		Long: `Crawl a directory, call every callable leaf with the --arg values
and print the result. A leaf whose call returns nothing keeps its value.`,
		Args: cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = viper.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			app, err := dirload.GetFromViper(v)
			if err != nil {
				return err
			}
			if err := app.ResolveAndPrint(dirArg(args), v.GetStringSlice(constants.ArgFlag)); err != nil {
				app.ExitWithError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringSlice(constants.ArgFlag, nil, "argument passed to callable leaves, repeatable")
	return cmd
}
