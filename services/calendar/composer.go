package calendar

import (
	"time"

	"fieldcal/models"
	"fieldcal/services/layout"
)

const (
	monthCells        = 42
	monthCap          = 3
	monthCapExclusion = 2
)

// Composer builds the month, week and day coordinate systems. It holds no
// state of its own beyond the filter it reads and today's date.
type Composer struct {
	Filter *FilterState
	Today  time.Time
}

func NewComposer(filter *FilterState, today time.Time) Composer {
	if filter == nil {
		filter = &FilterState{}
	}
	return Composer{Filter: filter, Today: DateOf(today)}
}

// Month lays out 42 days starting on the Sunday on or before the first of
// the anchor's month.
func (c Composer) Month(anchor time.Time, schedules []models.ScheduleEntry, exclusions []models.ExclusionEntry) models.MonthView {
	anchor = DateOf(anchor)
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := WeekStart(first)

	visible := c.Filter.VisibleSet()
	schByDate := map[string][]models.ScheduleEntry{}
	for _, e := range c.Filter.FilterSchedules(schedules) {
		schByDate[e.AssignedDate] = append(schByDate[e.AssignedDate], e)
	}
	exByDate := map[string][]models.ExclusionEntry{}
	for _, e := range c.Filter.FilterExclusions(exclusions) {
		exByDate[e.Date] = append(exByDate[e.Date], e)
	}

	view := models.MonthView{
		Anchor: FormatDate(anchor),
		Year:   anchor.Year(),
		Month:  int(anchor.Month()),
		Cells:  make([]models.MonthCell, 0, monthCells),
	}
	for i := 0; i < monthCells; i++ {
		d := start.AddDate(0, 0, i)
		key := FormatDate(d)
		ex := exByDate[key]
		records := Expand(schByDate[key], visible)

		limit := monthCap
		if len(ex) > 0 {
			limit = monthCapExclusion
		}
		more := 0
		if len(records) > limit {
			more = len(records) - limit
			records = records[:limit]
		}

		view.Cells = append(view.Cells, models.MonthCell{
			Date:           key,
			Day:            d.Day(),
			IsCurrentMonth: d.Month() == anchor.Month(),
			IsToday:        d.Equal(c.Today),
			Exclusions:     nonNilExclusions(ex),
			Schedules:      records,
			MoreCount:      more,
		})
	}
	return view
}

// Week lays out visible teams × the seven days of the anchor's week.
func (c Composer) Week(anchor time.Time, schedules []models.ScheduleEntry, exclusions []models.ExclusionEntry) models.WeekView {
	anchor = DateOf(anchor)
	start := WeekStart(anchor)
	teams := c.Filter.VisibleTeams()
	idx := c.index(schedules, exclusions)

	view := models.WeekView{
		Anchor:      FormatDate(anchor),
		Dates:       make([]string, 7),
		Teams:       teams,
		ColumnWidth: WeekColumnWidth(len(teams)),
		Columns:     make([]models.WeekColumn, 0, len(teams)*7),
	}
	for i := range view.Dates {
		view.Dates[i] = FormatDate(start.AddDate(0, 0, i))
	}
	for _, team := range teams {
		for i, date := range view.Dates {
			recs, ex := idx.column(team.TeamID, date)
			view.Columns = append(view.Columns, models.WeekColumn{
				Team:       team,
				Date:       date,
				IsToday:    start.AddDate(0, 0, i).Equal(c.Today),
				Schedules:  recs,
				Exclusions: ex,
				Items:      resolve(recs, ex),
			})
		}
	}
	return view
}

// Day lays out one column per visible team on the anchor date.
func (c Composer) Day(anchor time.Time, schedules []models.ScheduleEntry, exclusions []models.ExclusionEntry) models.DayView {
	anchor = DateOf(anchor)
	date := FormatDate(anchor)
	teams := c.Filter.VisibleTeams()
	idx := c.index(schedules, exclusions)

	view := models.DayView{
		Date:    date,
		IsToday: anchor.Equal(c.Today),
		Hours:   layout.Hours(),
		Columns: make([]models.DayColumn, 0, len(teams)),
	}
	for _, team := range teams {
		recs, ex := idx.column(team.TeamID, date)
		view.Columns = append(view.Columns, models.DayColumn{
			Team:       team,
			Schedules:  recs,
			Exclusions: ex,
			Items:      resolve(recs, ex),
		})
	}
	return view
}

// WeekColumnWidth narrows week columns as more teams are shown.
func WeekColumnWidth(teams int) int {
	switch {
	case teams <= 1:
		return 240
	case teams == 2:
		return 180
	case teams == 3:
		return 140
	default:
		return 110
	}
}

type columnKey struct {
	teamID string
	date   string
}

type columnIndex struct {
	schedules  map[columnKey][]models.DisplayRecord
	exclusions map[columnKey][]models.ExclusionEntry
}

func (c Composer) index(schedules []models.ScheduleEntry, exclusions []models.ExclusionEntry) columnIndex {
	idx := columnIndex{
		schedules:  map[columnKey][]models.DisplayRecord{},
		exclusions: map[columnKey][]models.ExclusionEntry{},
	}
	for _, r := range Expand(c.Filter.FilterSchedules(schedules), c.Filter.VisibleSet()) {
		k := columnKey{r.DisplayTeam.TeamID, r.Entry.AssignedDate}
		idx.schedules[k] = append(idx.schedules[k], r)
	}
	for _, e := range c.Filter.FilterExclusions(exclusions) {
		k := columnKey{e.Team.TeamID, e.Date}
		idx.exclusions[k] = append(idx.exclusions[k], e)
	}
	return idx
}

func (idx columnIndex) column(teamID, date string) ([]models.DisplayRecord, []models.ExclusionEntry) {
	k := columnKey{teamID, date}
	recs := idx.schedules[k]
	if recs == nil {
		recs = []models.DisplayRecord{}
	}
	return recs, nonNilExclusions(idx.exclusions[k])
}

func resolve(recs []models.DisplayRecord, ex []models.ExclusionEntry) []models.LayoutItem {
	exItems := make([]layout.Item, 0, len(ex))
	for _, e := range ex {
		exItems = append(exItems, layout.ExclusionItem(e))
	}
	schItems := make([]layout.Item, 0, len(recs))
	for _, r := range recs {
		schItems = append(schItems, layout.ScheduleItem(r.Entry))
	}
	return layout.ResolveColumn(exItems, schItems)
}

func nonNilExclusions(ex []models.ExclusionEntry) []models.ExclusionEntry {
	if ex == nil {
		return []models.ExclusionEntry{}
	}
	return ex
}
