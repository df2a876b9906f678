package cmd

import (
	"fmt"
	"strings"
	"time"

	"fieldcal/models"
	"fieldcal/services/layout"

	"github.com/charmbracelet/lipgloss"
)

const monthCellWidth = 12

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	headerStyle    = lipgloss.NewStyle().Bold(true)
	todayStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	outsideStyle   = lipgloss.NewStyle().Faint(true)
	exclusionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#e15759"))
	cellStyle      = lipgloss.NewStyle().Width(monthCellWidth)
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func renderMonth(v *models.MonthView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", time.Month(v.Month), v.Year)))
	b.WriteString("\n")

	head := make([]string, len(weekdays))
	for i, d := range weekdays {
		head[i] = cellStyle.Render(headerStyle.Render(d))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, head...))
	b.WriteString("\n")

	for week := 0; week*7 < len(v.Cells); week++ {
		row := make([]string, 0, 7)
		for _, c := range v.Cells[week*7 : week*7+7] {
			row = append(row, cellStyle.Render(monthCellText(c)))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}
	return b.String()
}

func monthCellText(c models.MonthCell) string {
	day := fmt.Sprintf("%2d", c.Day)
	switch {
	case c.IsToday:
		day = todayStyle.Render(day)
	case !c.IsCurrentMonth:
		day = outsideStyle.Render(day)
	}
	lines := []string{day}
	for _, x := range c.Exclusions {
		lines = append(lines, exclusionStyle.Render("x "+x.Team.TeamName))
	}
	for _, r := range c.Schedules {
		lines = append(lines, "• "+r.Entry.CustomerName)
	}
	if c.MoreCount > 0 {
		lines = append(lines, fmt.Sprintf("+%d more", c.MoreCount))
	}
	return strings.Join(lines, "\n")
}

func renderWeek(v *models.WeekView) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Week of %s", v.Dates[0])))
	b.WriteString("\n")
	for _, col := range v.Columns {
		if len(col.Items) == 0 {
			continue
		}
		label := fmt.Sprintf("%s / %s  %s", col.Team.ContractorName, col.Team.TeamName, col.Date)
		if col.IsToday {
			label = todayStyle.Render(label)
		} else {
			label = headerStyle.Render(label)
		}
		b.WriteString(label + "\n")
		b.WriteString(columnLines(col.Exclusions, col.Schedules, col.Items))
	}
	return b.String()
}

func renderDay(v *models.DayView) string {
	var b strings.Builder
	title := v.Date
	if v.IsToday {
		title += " (today)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, col := range v.Columns {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%s / %s", col.Team.ContractorName, col.Team.TeamName)) + "\n")
		if len(col.Items) == 0 {
			b.WriteString(outsideStyle.Render("  free") + "\n")
			continue
		}
		b.WriteString(columnLines(col.Exclusions, col.Schedules, col.Items))
	}
	return b.String()
}

// columnLines pairs layout items with their sources. Items come back
// exclusions first, then schedules, each in input order.
func columnLines(ex []models.ExclusionEntry, recs []models.DisplayRecord, items []models.LayoutItem) string {
	var b strings.Builder
	for i, it := range items {
		var line string
		if i < len(ex) {
			x := ex[i]
			slot := layout.ExclusionSlot(x.TimeType, x.StartTime, x.EndTime)
			line = exclusionStyle.Render(fmt.Sprintf("%-11s unavailable: %s", slotLabel(slot), x.Reason))
		} else {
			r := recs[i-len(ex)]
			line = fmt.Sprintf("%-11s %s [%s]", slotLabel(layout.ParseSlot(r.Entry.TimeSlot)), r.Entry.CustomerName, r.Entry.Kind)
		}
		fmt.Fprintf(&b, "  %s  (left %.0f%%, width %.0f%%)\n", line, it.Left, it.Width)
	}
	return b.String()
}

func slotLabel(s layout.Slot) string {
	if s.AllDay {
		return models.AllDaySlot
	}
	return layout.FormatClock(s.Start) + "-" + layout.FormatClock(s.End)
}
