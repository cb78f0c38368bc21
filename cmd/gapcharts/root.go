package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kerbaras/gapcharts/pkg/app"
	"github.com/kerbaras/gapcharts/pkg/config"
	"github.com/kerbaras/gapcharts/pkg/services"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "gapcharts [csv]",
	Short: "Chart per-capita GDP tables",
	Long:  "Turn gapminder GDP tables into plotly figures, PNG or SVG charts, or browse them in a TUI",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}

		svc, err := newService()
		cobra.CheckErr(err)

		table, err := svc.Load(context.Background(), args[0])
		cobra.CheckErr(err)

		output, _ := cmd.Flags().GetString("output")

		// Launch TUI on the loaded table
		a := app.NewApp(svc, table, output)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gapcharts.yaml)")
	flags.String(config.KeyPrefix, "gdpPercap_", "prefix in front of the year in column labels")
	flags.String(config.KeyIndex, "country", "column holding row names")
	flags.StringSlice(config.KeyDrop, []string{"continent"}, "non-numeric columns to drop")
	flags.String(config.KeyDelimiter, ",", "CSV field delimiter")
	flags.String(config.KeyEngine, string(config.EngineGota), "CSV engine: gota or duckdb")
	flags.Int(config.KeyWidth, 1024, "image width in pixels")
	flags.Int(config.KeyHeight, 512, "image height in pixels")
	flags.Bool(config.KeyGrayscale, false, "render PNG output in grayscale")
	flags.Float64(config.KeyContrast, 1.0, "PNG contrast factor")

	for _, key := range []string{
		config.KeyPrefix, config.KeyIndex, config.KeyDrop, config.KeyDelimiter,
		config.KeyEngine, config.KeyWidth, config.KeyHeight, config.KeyGrayscale, config.KeyContrast,
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(key)))
	}

	rootCmd.Flags().StringP("output", "o", "chart.png", "file written from the TUI")
}

func initConfig() {
	cobra.CheckErr(config.Init(viper.GetViper(), cfgFile))
	if f := viper.ConfigFileUsed(); f != "" {
		fmt.Fprintf(os.Stderr, "⚙️  Using config %s\n", f)
	}
}

func newService() (*services.ChartService, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	return services.NewChartService(cfg), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
