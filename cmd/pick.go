package cmd

import (
	"github.com/spf13/cobra"
	"zrank.dev/pkg/zrank/internal/domain"
)

// pickCmd represents the pick command.
var pickCmd = newPickCmd()

func newPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Choose a ranked directory interactively",
		Long: `Open an interactive list of the ranked directories and print the chosen
path to stdout, e.g. cd "$(zrank pick)".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := resolveHome()
			if err != nil {
				return err
			}

			return workflow.Pick(cmd.Context(), domain.PickArgs{Roots: domain.DefaultRoots(home)})
		},
	}
}

func init() {
	rootCmd.AddCommand(pickCmd)
}
