package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List chart presets",
	Long:  "List the built-in chart presets and any defined in the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		cobra.CheckErr(err)

		names := svc.PresetNames()
		if len(names) == 0 {
			fmt.Println("📋 No presets defined.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		out := table.New().
			Border(lipgloss.HiddenBorder()).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			}).
			Headers("Name", "Kind", "Title", "Series")

		for _, name := range names {
			spec, err := svc.Preset(name)
			if err != nil {
				log.Printf("Warning: %v", err)
				continue
			}

			series := make([]string, len(spec.Series))
			for i, r := range spec.Series {
				series[i] = r.Name
			}

			out.Row(name, string(spec.Kind), truncateString(spec.Title, 48), strings.Join(series, ", "))
		}

		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
