package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gapcharts/pkg/app/styles"
	"github.com/kerbaras/gapcharts/pkg/data"
)

type RowListItem struct {
	Name    string
	Last    float64
	HasLast bool
}

// RowList is a filterable, multi-select list of table rows. Checked rows
// are kept in the order they were checked, which becomes series order.
type RowList struct {
	Items         []RowListItem
	SelectedIndex int
	Width         int
	Height        int

	filter  string
	visible []int
	checked []string
	max     float64
}

func NewRowList() *RowList {
	return &RowList{
		Items:  []RowListItem{},
		Width:  80,
		Height: 20,
	}
}

// ItemsFromTable builds list items from every row of t.
func ItemsFromTable(t *data.Table) []RowListItem {
	names := t.Index()
	items := make([]RowListItem, len(names))
	for i, name := range names {
		last, ok := t.Last(name)
		items[i] = RowListItem{Name: name, Last: last, HasLast: ok}
	}
	return items
}

func (m *RowList) SetItems(items []RowListItem) {
	m.Items = items
	m.max = 0
	for _, item := range items {
		if item.HasLast && item.Last > m.max {
			m.max = item.Last
		}
	}
	m.checked = slices.DeleteFunc(m.checked, func(name string) bool {
		return !slices.ContainsFunc(items, func(it RowListItem) bool { return it.Name == name })
	})
	m.refilter()
}

// SetFilter keeps rows whose name contains s, case-insensitively.
func (m *RowList) SetFilter(s string) {
	m.filter = s
	m.refilter()
}

func (m *RowList) refilter() {
	m.visible = m.visible[:0]
	needle := strings.ToLower(m.filter)
	for i, item := range m.Items {
		if needle == "" || strings.Contains(strings.ToLower(item.Name), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.SelectedIndex >= len(m.visible) && len(m.visible) > 0 {
		m.SelectedIndex = len(m.visible) - 1
	}
	if len(m.visible) == 0 {
		m.SelectedIndex = 0
	}
}

// Visible returns the number of rows passing the filter.
func (m *RowList) Visible() int {
	return len(m.visible)
}

func (m *RowList) Next() {
	if len(m.visible) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.visible) {
		m.SelectedIndex = 0
	}
}

func (m *RowList) Prev() {
	if len(m.visible) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.visible) - 1
	}
}

func (m *RowList) Selected() *RowListItem {
	if len(m.visible) == 0 || m.SelectedIndex >= len(m.visible) {
		return nil
	}
	return &m.Items[m.visible[m.SelectedIndex]]
}

// Toggle checks or unchecks the row under the cursor.
func (m *RowList) Toggle() {
	item := m.Selected()
	if item == nil {
		return
	}
	if i := slices.Index(m.checked, item.Name); i >= 0 {
		m.checked = slices.Delete(m.checked, i, i+1)
		return
	}
	m.checked = append(m.checked, item.Name)
}

func (m *RowList) IsChecked(name string) bool {
	return slices.Contains(m.checked, name)
}

// Checked returns checked row names in check order.
func (m *RowList) Checked() []string {
	return append([]string(nil), m.checked...)
}

func (m *RowList) ClearChecked() {
	m.checked = nil
}

func (m *RowList) View() string {
	if len(m.visible) == 0 {
		msg := "No rows in table"
		if m.filter != "" {
			msg = fmt.Sprintf("No rows match %q", m.filter)
		}
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, styles.MutedStyle.Render(msg))
	}

	// Scroll so the cursor stays on screen
	start := 0
	if m.Height > 0 && m.SelectedIndex >= m.Height {
		start = m.SelectedIndex - m.Height + 1
	}
	end := len(m.visible)
	if m.Height > 0 && start+m.Height < end {
		end = start + m.Height
	}

	nameWidth := 28
	barWidth := m.Width - nameWidth - 24
	if barWidth < 0 {
		barWidth = 0
	}

	var b strings.Builder
	for pos := start; pos < end; pos++ {
		item := m.Items[m.visible[pos]]

		check := "[ ]"
		if m.IsChecked(item.Name) {
			check = styles.CheckedStyle.Render("[x]")
		}

		name := fmt.Sprintf("%-*s", nameWidth, truncate(item.Name, nameWidth))
		if pos == m.SelectedIndex {
			name = styles.CursorStyle.Render(name)
		} else {
			name = styles.TextStyle.Render(name)
		}

		value := styles.MutedStyle.Render(fmt.Sprintf("%12s", "n/a"))
		bar := ""
		if item.HasLast {
			value = styles.MutedStyle.Render(fmt.Sprintf("%12.2f", item.Last))
			bar = ValueBar(item.Last, m.max, barWidth)
		}

		fmt.Fprintf(&b, "%s %s %s %s\n", check, name, value, bar)
	}

	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
