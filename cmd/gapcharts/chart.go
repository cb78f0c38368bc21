package cmd

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/kerbaras/gapcharts/pkg/charts"
	"github.com/kerbaras/gapcharts/pkg/render"
	"github.com/kerbaras/gapcharts/pkg/services"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart [csv]",
	Short: "Build a chart from named rows",
	Long: `Build a chart from rows of a GDP table.

Series are given as Name[=color][@mode], for example:

  gapcharts chart gdp.csv -s "Canada=rgb(200, 0, 0)" -s Mexico@lines+markers
  gapcharts chart gdp.csv --preset north-america -o north-america.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		cobra.CheckErr(err)

		opts := chartOptions{}
		opts.Preset, _ = cmd.Flags().GetString("preset")
		opts.Series, _ = cmd.Flags().GetStringArray("series")
		opts.Kind, _ = cmd.Flags().GetString("kind")
		opts.Title, _ = cmd.Flags().GetString("title")
		opts.XTitle, _ = cmd.Flags().GetString("xtitle")
		opts.YTitle, _ = cmd.Flags().GetString("ytitle")

		spec, err := chartSpec(svc, opts)
		cobra.CheckErr(err)

		fig, err := svc.Build(context.Background(), args[0], spec)
		cobra.CheckErr(err)

		warnMissing(fig)
		cobra.CheckErr(emitFigure(cmd, svc, fig))
	},
}

func init() {
	chartCmd.Flags().String("preset", "", "start from a named preset (see 'gapcharts presets')")
	chartCmd.Flags().StringArrayP("series", "s", nil, "row to plot as Name[=color][@mode] (repeatable)")
	chartCmd.Flags().StringP("kind", "k", "", "chart kind: bar or scatter")
	chartCmd.Flags().String("title", "", "chart title")
	chartCmd.Flags().String("xtitle", "", "x axis title")
	chartCmd.Flags().String("ytitle", "", "y axis title")
	addOutputFlags(chartCmd)

	rootCmd.AddCommand(chartCmd)
}

type chartOptions struct {
	Preset string
	Series []string
	Kind   string
	Title  string
	XTitle string
	YTitle string
}

// chartSpec merges a preset with explicit flags. Explicit series replace the
// preset's series.
func chartSpec(svc *services.ChartService, opts chartOptions) (charts.Spec, error) {
	spec := charts.Spec{Kind: charts.KindScatter}
	if opts.Preset != "" {
		p, err := svc.Preset(opts.Preset)
		if err != nil {
			return charts.Spec{}, err
		}
		spec = p
	}

	if len(opts.Series) > 0 {
		reqs, err := charts.ParseRequests(opts.Series)
		if err != nil {
			return charts.Spec{}, err
		}
		spec.Series = reqs
	}
	if len(spec.Series) == 0 {
		return charts.Spec{}, fmt.Errorf("no series given: use --series or --preset")
	}

	if opts.Kind != "" {
		kind, err := charts.ParseKind(opts.Kind)
		if err != nil {
			return charts.Spec{}, err
		}
		spec.Kind = kind
	}
	if opts.Title != "" {
		spec.Title = opts.Title
	}
	if opts.XTitle != "" {
		spec.XTitle = opts.XTitle
	}
	if opts.YTitle != "" {
		spec.YTitle = opts.YTitle
	}

	return spec, nil
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringP("format", "f", "", "output format: json, png or svg (default: from extension, json on stdout)")
	cmd.Flags().Bool("pretty", false, "indent JSON output")
	cmd.Flags().String("caption", "", "caption drawn under PNG output")
}

// emitFigure writes fig to --output, or to stdout when no output is set.
func emitFigure(cmd *cobra.Command, svc *services.ChartService, fig *charts.Figure) error {
	output, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	pretty, _ := cmd.Flags().GetBool("pretty")
	caption, _ := cmd.Flags().GetString("caption")

	format, err := outputFormat(formatFlag, output)
	if err != nil {
		return err
	}

	if output == "" {
		opts := svc.Config().Image
		opts.Caption = caption
		return render.Write(fig, format, os.Stdout, opts, pretty)
	}

	if err := svc.RenderFile(fig, output, format, pretty, caption); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✅ Wrote %d series to %s\n", len(fig.Series), output)
	return nil
}

// outputFormat resolves --format against the output path. Stdout defaults to
// JSON.
func outputFormat(flag, output string) (render.Format, error) {
	if flag != "" {
		return render.ParseFormat(flag)
	}
	if output == "" {
		return render.FormatJSON, nil
	}
	return render.FormatFromPath(output)
}

func warnMissing(fig *charts.Figure) {
	for _, s := range fig.Series {
		missing := 0
		for _, y := range s.Y {
			if math.IsNaN(y) {
				missing++
			}
		}
		if missing > 0 {
			log.Printf("Warning: %s has %d missing values", s.Name, missing)
		}
	}
}
