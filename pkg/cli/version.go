package cli

import (
	"fmt"

	"github.com/replicatedhq/dirload/pkg/version"
	"github.com/spf13/cobra"
)

func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dirload version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.GetBuild().String())
			return err
		},
	}
}
