package models

// RefKind tells the presentation layer which entity a LayoutItem points at.
type RefKind string

const (
	RefSchedule  RefKind = "schedule"
	RefExclusion RefKind = "exclusion"
)

// LayoutItem is a positioned rectangle inside one column. Top and Height are
// in layout units (4 per hour); Left and Width are percentages of the column.
type LayoutItem struct {
	RefKind RefKind `json:"refKind"`
	RefID   string  `json:"refId"`
	Top     float64 `json:"top"`
	Height  float64 `json:"height"`
	Left    float64 `json:"left"`
	Width   float64 `json:"width"`
	ZOrder  int     `json:"zOrder"`
}

// DisplayRecord is a schedule entry projected onto a single team.
type DisplayRecord struct {
	Entry       ScheduleEntry `json:"entry"`
	DisplayTeam TeamRef       `json:"displayTeam"`
}

type MonthCell struct {
	Date           string           `json:"date"`
	Day            int              `json:"day"`
	IsCurrentMonth bool             `json:"isCurrentMonth"`
	IsToday        bool             `json:"isToday"`
	Exclusions     []ExclusionEntry `json:"exclusions"`
	Schedules      []DisplayRecord  `json:"schedules"`
	MoreCount      int              `json:"moreCount"`
}

type MonthView struct {
	Anchor string      `json:"anchor"`
	Year   int         `json:"year"`
	Month  int         `json:"month"`
	Cells  []MonthCell `json:"cells"`
}

// WeekColumn is one (team, date) column in the week grid.
type WeekColumn struct {
	Team       TeamFilter       `json:"team"`
	Date       string           `json:"date"`
	IsToday    bool             `json:"isToday"`
	Schedules  []DisplayRecord  `json:"schedules"`
	Exclusions []ExclusionEntry `json:"exclusions"`
	Items      []LayoutItem     `json:"items"`
}

type WeekView struct {
	Anchor      string       `json:"anchor"`
	Dates       []string     `json:"dates"`
	Teams       []TeamFilter `json:"teams"`
	ColumnWidth int          `json:"columnWidth"`
	Columns     []WeekColumn `json:"columns"`
}

// DayColumn is one team's column on the day grid.
type DayColumn struct {
	Team       TeamFilter       `json:"team"`
	Schedules  []DisplayRecord  `json:"schedules"`
	Exclusions []ExclusionEntry `json:"exclusions"`
	Items      []LayoutItem     `json:"items"`
}

type DayView struct {
	Date    string      `json:"date"`
	IsToday bool        `json:"isToday"`
	Hours   []int       `json:"hours"`
	Columns []DayColumn `json:"columns"`
}
