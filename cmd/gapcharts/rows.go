package cmd

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var rowsCmd = &cobra.Command{
	Use:   "rows [csv]",
	Short: "List the rows of a table",
	Long:  "Display every row of a GDP table with its first and latest values",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newService()
		cobra.CheckErr(err)

		t, err := svc.Load(context.Background(), args[0])
		cobra.CheckErr(err)

		filter, _ := cmd.Flags().GetString("filter")

		if t.Len() == 0 {
			fmt.Println("🌍 No rows in table.")
			return
		}

		years, err := svc.Years(t)
		if err != nil {
			log.Printf("Warning: %v", err)
		}

		first, last := "First", "Latest"
		if len(years) > 0 {
			first = fmt.Sprintf("%d", years[0])
			last = fmt.Sprintf("%d", years[len(years)-1])
		}

		// Create table columns
		columns := []table.Column{
			{Title: titleCase(t.IndexName), Width: 30},
			{Title: first, Width: 14},
			{Title: last, Width: 14},
			{Title: "Growth", Width: 10},
		}

		rows := []table.Row{}
		for _, name := range t.Index() {
			if filter != "" && !strings.Contains(strings.ToLower(name), strings.ToLower(filter)) {
				continue
			}

			values, _ := t.Row(name)
			head, tail := math.NaN(), math.NaN()
			if len(values) > 0 {
				head, tail = values[0], values[len(values)-1]
			}

			rows = append(rows, table.Row{
				truncateString(name, 28),
				formatValue(head),
				formatValue(tail),
				formatGrowth(head, tail),
			})
		}

		if len(rows) == 0 {
			fmt.Printf("🌍 No rows match %q.\n", filter)
			return
		}

		out := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		out.SetStyles(s)

		fmt.Printf("\n🌍 %s (%d rows)\n\n", args[0], len(rows))
		fmt.Println(out.View())
	},
}

func init() {
	rowsCmd.Flags().String("filter", "", "only show rows containing this text")
	rootCmd.AddCommand(rowsCmd)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func formatGrowth(from, to float64) string {
	if math.IsNaN(from) || math.IsNaN(to) || from == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.1f%%", (to-from)/from*100)
}
