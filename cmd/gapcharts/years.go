package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var yearsCmd = &cobra.Command{
	Use:   "years [csv]",
	Short: "Show the year axis of a table",
	Long:  "Normalize the column labels of a GDP table into years and show the mapping",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		cobra.CheckErr(err)

		t, err := svc.Load(context.Background(), args[0])
		cobra.CheckErr(err)

		years, err := svc.Years(t)
		cobra.CheckErr(err)

		if len(years) == 0 {
			fmt.Println("📅 No value columns found.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		out := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Label", "Year")

		for i, label := range t.Columns() {
			out.Row(fmt.Sprintf("%d", i+1), truncateString(label, 38), fmt.Sprintf("%d", years[i]))
		}

		fmt.Printf("\n📅 %d years (%d–%d)\n", len(years), years[0], years[len(years)-1])
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(yearsCmd)
}
