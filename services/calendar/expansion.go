package calendar

import "fieldcal/models"

// UnassignedTeam stands in for the team of legacy entries saved without any.
var UnassignedTeam = models.TeamRef{TeamID: "unassigned", TeamName: "Unassigned"}

// TeamSet is a set of team IDs. A nil set admits every team.
type TeamSet map[string]struct{}

func NewTeamSet(ids ...string) TeamSet {
	s := make(TeamSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s TeamSet) Has(teamID string) bool {
	if s == nil {
		return true
	}
	_, ok := s[teamID]
	return ok
}

// Expand emits one display record per visible assigned team, in assignment
// order. Entries without teams produce a single record on UnassignedTeam.
// Source entries are copied, never modified.
func Expand(entries []models.ScheduleEntry, visible TeamSet) []models.DisplayRecord {
	out := make([]models.DisplayRecord, 0, len(entries))
	for _, e := range entries {
		if len(e.AssignedTeams) == 0 {
			out = append(out, models.DisplayRecord{Entry: cloneEntry(e), DisplayTeam: UnassignedTeam})
			continue
		}
		seen := map[string]bool{}
		for _, t := range e.AssignedTeams {
			if seen[t.TeamID] || !visible.Has(t.TeamID) {
				continue
			}
			seen[t.TeamID] = true
			out = append(out, models.DisplayRecord{Entry: cloneEntry(e), DisplayTeam: t})
		}
	}
	return out
}

// Sources recovers the distinct source entries of a set of display records,
// in first-seen order.
func Sources(records []models.DisplayRecord) []models.ScheduleEntry {
	seen := map[string]bool{}
	out := make([]models.ScheduleEntry, 0, len(records))
	for _, r := range records {
		if seen[r.Entry.ID] {
			continue
		}
		seen[r.Entry.ID] = true
		out = append(out, r.Entry)
	}
	return out
}

func cloneEntry(e models.ScheduleEntry) models.ScheduleEntry {
	e.AssignedTeams = append([]models.TeamRef(nil), e.AssignedTeams...)
	return e
}
