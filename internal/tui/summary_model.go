package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/pokerlog/internal/parser"
	"github.com/balkashynov/pokerlog/internal/sessions"
)

// SummaryTab is one view of the summary screen
type SummaryTab int

const (
	TabOverview SummaryTab = iota
	TabWeekly
	TabMonthly
	TabLocations
)

var tabLabels = []string{"Overview", "Weekly", "Monthly", "Locations"}

// SummaryModel shows a sessions.Report as tabs
type SummaryModel struct {
	report sessions.Report
	tab    SummaryTab
	width  int
	height int
}

// NewSummaryModel creates the summary TUI model
func NewSummaryModel(report sessions.Report) SummaryModel {
	return SummaryModel{report: report}
}

// Init initializes the model
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % SummaryTab(len(tabLabels))
		case "shift+tab", "left", "h":
			m.tab = (m.tab + SummaryTab(len(tabLabels)) - 1) % SummaryTab(len(tabLabels))
		case "1", "2", "3", "4":
			m.tab = SummaryTab(msg.String()[0] - '1')
		}
	}
	return m, nil
}

// View renders the TUI
func (m SummaryModel) View() string {
	var body string
	switch m.tab {
	case TabOverview:
		body = m.renderOverview()
	case TabWeekly:
		rows := make([]summaryRow, 0, len(m.report.Weekly))
		for _, w := range m.report.Weekly {
			rows = append(rows, summaryRow{key: "Week of " + w.Week, hours: w.TotalHours, profit: w.TotalProfit, rate: hourlyRate(w.TotalProfit, w.TotalHours)})
		}
		body = renderSummaryTable("Week", rows)
	case TabMonthly:
		rows := make([]summaryRow, 0, len(m.report.Monthly))
		for _, mo := range m.report.Monthly {
			rows = append(rows, summaryRow{key: mo.Month, hours: mo.TotalHours, profit: mo.TotalProfit, rate: hourlyRate(mo.TotalProfit, mo.TotalHours)})
		}
		body = renderSummaryTable("Month", rows)
	case TabLocations:
		rows := make([]summaryRow, 0, len(m.report.Locations))
		for _, l := range m.report.Locations {
			row := summaryRow{key: l.Location, hours: l.TotalHours, profit: l.TotalProfit}
			if l.TotalHours > 0 {
				rate := l.ProfitPerHour
				row.rate = &rate
			}
			rows = append(rows, row)
		}
		body = renderSummaryTable("Location", rows)
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTabs(),
		"",
		body,
		"",
		helpStyle.Render("tab/←/→ switch · 1-4 jump · esc/q quit"),
	)
}

// renderTabs renders the tab bar with the active tab highlighted
func (m SummaryModel) renderTabs() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2)

	tabs := make([]string, len(tabLabels))
	for i, label := range tabLabels {
		if SummaryTab(i) == m.tab {
			tabs[i] = active.Render(label)
		} else {
			tabs[i] = inactive.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

// renderOverview renders the four headline numbers
func (m SummaryModel) renderOverview() string {
	stats := m.report.Stats

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Width(24)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)
	profit := value.Foreground(lipgloss.Color(resultColor(stats.TotalProfit)))

	lines := []string{
		label.Render("Total hours") + value.Render(fmt.Sprintf("%.1f", stats.TotalHours)),
		label.Render("Total profit") + profit.Render(parser.FormatMoney(stats.TotalProfit)),
		label.Render("Hourly rate") + value.Render(parser.FormatRate(hourlyRate(stats.TotalProfit, stats.TotalHours))),
		label.Render("Most profitable week") + value.Render(stats.MostProfitableWeek),
		label.Render("Best location") + value.Render(stats.BestLocation),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

type summaryRow struct {
	key    string
	hours  float64
	profit float64
	rate   *float64
}

// hourlyRate is nil when no hours were played
func hourlyRate(profit, hours float64) *float64 {
	if hours <= 0 {
		return nil
	}
	rate := profit / hours
	return &rate
}

// renderSummaryTable renders one aggregate view as a table
func renderSummaryTable(keyHeader string, rows []summaryRow) string {
	if len(rows) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true).
			Render("No completed sessions yet")
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	cell := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	var b strings.Builder
	b.WriteString(header.Render(fmt.Sprintf("%-24s %8s %12s %14s", keyHeader, "Hours", "Profit", "Hourly Rate")))
	b.WriteString("\n")
	for _, r := range rows {
		profit := lipgloss.NewStyle().Foreground(lipgloss.Color(resultColor(r.profit)))
		b.WriteString(cell.Render(fmt.Sprintf("%-24s %8.1f ", truncateText(r.key, 24), r.hours)))
		b.WriteString(profit.Render(fmt.Sprintf("%12s", parser.FormatMoney(r.profit))))
		b.WriteString(cell.Render(fmt.Sprintf(" %14s", parser.FormatRate(r.rate))))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
