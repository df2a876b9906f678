package calendar

import "fieldcal/models"

// CheckState aggregates the visibility of a contractor's teams.
type CheckState string

const (
	CheckAll  CheckState = "all"
	CheckSome CheckState = "some"
	CheckNone CheckState = "none"
)

var teamPalette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// FilterState holds per-team visibility and the schedule kind filter for one
// calendar session. Teams are kept in directory order.
type FilterState struct {
	Teams []models.TeamFilter          `json:"teams"`
	Kinds map[models.ScheduleKind]bool `json:"kinds"`
}

// ContractorFilter is the filter panel row for one contractor.
type ContractorFilter struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	State CheckState          `json:"state"`
	Teams []models.TeamFilter `json:"teams"`
}

// NewFilterStateFromDirectory builds the filterable team set. Inactive
// contractors and teams are left out entirely, as are contractors without
// any active team. Every team starts visible.
func NewFilterStateFromDirectory(contractors []models.Contractor, teams []models.Team) *FilterState {
	f := &FilterState{
		Kinds: map[models.ScheduleKind]bool{
			models.KindConstruction: true,
			models.KindSurvey:       true,
		},
	}
	f.Teams = buildTeamFilters(contractors, teams)
	return f
}

func buildTeamFilters(contractors []models.Contractor, teams []models.Team) []models.TeamFilter {
	out := make([]models.TeamFilter, 0, len(teams))
	for _, c := range contractors {
		if !c.IsActive {
			continue
		}
		for _, t := range teams {
			if !t.IsActive || t.ContractorID != c.ID {
				continue
			}
			out = append(out, models.TeamFilter{
				TeamRef: models.TeamRef{
					ContractorID:   c.ID,
					ContractorName: c.Name,
					TeamID:         t.ID,
					TeamName:       t.TeamName,
				},
				Visible: true,
				Color:   teamPalette[len(out)%len(teamPalette)],
			})
		}
	}
	return out
}

// Reload rebuilds the team set from fresh directory data. Surviving teams
// keep their visibility, new teams start visible and the kind filter is
// untouched.
func (f *FilterState) Reload(contractors []models.Contractor, teams []models.Team) {
	previous := make(map[string]bool, len(f.Teams))
	for _, t := range f.Teams {
		previous[t.TeamID] = t.Visible
	}
	f.Teams = buildTeamFilters(contractors, teams)
	for i := range f.Teams {
		if v, ok := previous[f.Teams[i].TeamID]; ok {
			f.Teams[i].Visible = v
		}
	}
}

// Loaded reports whether any team is known. An unloaded filter lets everything through.
func (f *FilterState) Loaded() bool {
	return len(f.Teams) > 0
}

func (f *FilterState) ToggleAll(visible bool) {
	for i := range f.Teams {
		f.Teams[i].Visible = visible
	}
}

// ToggleContractor sets every team of the contractor. It returns false when
// the contractor is not in the filterable set.
func (f *FilterState) ToggleContractor(contractorID string, visible bool) bool {
	found := false
	for i := range f.Teams {
		if f.Teams[i].ContractorID == contractorID {
			f.Teams[i].Visible = visible
			found = true
		}
	}
	return found
}

func (f *FilterState) ToggleTeam(teamID string, visible bool) bool {
	for i := range f.Teams {
		if f.Teams[i].TeamID == teamID {
			f.Teams[i].Visible = visible
			return true
		}
	}
	return false
}

// SetKindVisible toggles one side of the construction/survey filter.
func (f *FilterState) SetKindVisible(kind models.ScheduleKind, visible bool) {
	if f.Kinds == nil {
		f.Kinds = map[models.ScheduleKind]bool{}
	}
	f.Kinds[kind] = visible
}

// KindVisible defaults to true for kinds never toggled.
func (f *FilterState) KindVisible(kind models.ScheduleKind) bool {
	v, ok := f.Kinds[kind]
	return !ok || v
}

// ContractorCheckState is None for contractors outside the filterable set.
func (f *FilterState) ContractorCheckState(contractorID string) CheckState {
	total, visible := 0, 0
	for _, t := range f.Teams {
		if t.ContractorID != contractorID {
			continue
		}
		total++
		if t.Visible {
			visible++
		}
	}
	switch {
	case visible == 0:
		return CheckNone
	case visible == total:
		return CheckAll
	default:
		return CheckSome
	}
}

// Contractors groups the teams by contractor for the filter panel.
func (f *FilterState) Contractors() []ContractorFilter {
	var out []ContractorFilter
	index := map[string]int{}
	for _, t := range f.Teams {
		i, ok := index[t.ContractorID]
		if !ok {
			i = len(out)
			index[t.ContractorID] = i
			out = append(out, ContractorFilter{ID: t.ContractorID, Name: t.ContractorName})
		}
		out[i].Teams = append(out[i].Teams, t)
	}
	for i := range out {
		out[i].State = f.ContractorCheckState(out[i].ID)
	}
	return out
}

func (f *FilterState) IsTeamVisible(teamID string) bool {
	for _, t := range f.Teams {
		if t.TeamID == teamID {
			return t.Visible
		}
	}
	return false
}

// VisibleTeams returns the visible teams in directory order.
func (f *FilterState) VisibleTeams() []models.TeamFilter {
	out := make([]models.TeamFilter, 0, len(f.Teams))
	for _, t := range f.Teams {
		if t.Visible {
			out = append(out, t)
		}
	}
	return out
}

// VisibleSet returns the visible team IDs, or nil (admit all) when the
// directory has not been loaded.
func (f *FilterState) VisibleSet() TeamSet {
	if !f.Loaded() {
		return nil
	}
	set := TeamSet{}
	for _, t := range f.Teams {
		if t.Visible {
			set[t.TeamID] = struct{}{}
		}
	}
	return set
}

// ScheduleVisible reports whether an entry survives the team and kind filters.
func (f *FilterState) ScheduleVisible(e models.ScheduleEntry) bool {
	if !f.Loaded() {
		return true
	}
	if !f.KindVisible(e.Kind) {
		return false
	}
	for _, t := range e.AssignedTeams {
		if f.IsTeamVisible(t.TeamID) {
			return true
		}
	}
	return false
}

func (f *FilterState) FilterSchedules(entries []models.ScheduleEntry) []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if f.ScheduleVisible(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f *FilterState) FilterExclusions(entries []models.ExclusionEntry) []models.ExclusionEntry {
	out := make([]models.ExclusionEntry, 0, len(entries))
	for _, e := range entries {
		if !f.Loaded() || f.IsTeamVisible(e.Team.TeamID) {
			out = append(out, e)
		}
	}
	return out
}
