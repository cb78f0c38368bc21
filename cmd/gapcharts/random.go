package cmd

import (
	"github.com/kerbaras/gapcharts/pkg/services"
	"github.com/spf13/cobra"
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Build the random three-trace demo chart",
	Long:  "Build a scatter chart of three normally distributed traces drawn as lines, lines+markers and markers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		cobra.CheckErr(err)

		n, _ := cmd.Flags().GetInt("points")
		seed, _ := cmd.Flags().GetUint64("seed")

		fig, err := services.RandomFigure(n, seed)
		cobra.CheckErr(err)

		cobra.CheckErr(emitFigure(cmd, svc, fig))
	},
}

func init() {
	randomCmd.Flags().IntP("points", "n", 100, "points per trace")
	randomCmd.Flags().Uint64("seed", 1, "random seed")
	addOutputFlags(randomCmd)

	rootCmd.AddCommand(randomCmd)
}
