package calendar

import (
	"strings"

	"fieldcal/models"
	"fieldcal/services/layout"
)

// ValidateScheduleInput checks a create/update payload and fills defaults.
// Team lists are de-duplicated by team ID, keeping the first occurrence.
func ValidateScheduleInput(in *models.ScheduleInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return newValidationError("customerName", "is required")
	}
	if !in.Kind.Valid() {
		return newValidationError("kind", "must be construction or survey")
	}
	if _, err := ParseDate(in.AssignedDate); err != nil {
		return newValidationError("assignedDate", "must be a YYYY-MM-DD date")
	}
	if !layout.ValidSlot(in.TimeSlot) {
		return newValidationError("timeSlot", "must be "+models.AllDaySlot+" or HH:MM-HH:MM with start before end")
	}
	if in.Status == "" {
		in.Status = models.StatusScheduled
	}
	if !in.Status.Valid() {
		return newValidationError("status", "unknown status")
	}

	seen := map[string]bool{}
	teams := make([]models.TeamRef, 0, len(in.AssignedTeams))
	for _, t := range in.AssignedTeams {
		if t.TeamID == "" || seen[t.TeamID] {
			continue
		}
		seen[t.TeamID] = true
		teams = append(teams, t)
	}
	if len(teams) == 0 {
		return newValidationError("assignedTeams", "at least one team is required")
	}
	in.AssignedTeams = teams
	return nil
}

func applyInput(e *models.ScheduleEntry, in models.ScheduleInput) {
	e.OrderReference = in.OrderReference
	e.CustomerName = in.CustomerName
	e.Address = in.Address
	e.WorkType = in.WorkType
	e.Kind = in.Kind
	e.AssignedDate = in.AssignedDate
	e.TimeSlot = strings.TrimSpace(in.TimeSlot)
	e.Status = in.Status
	e.AssignedTeams = in.AssignedTeams
	e.Memo = in.Memo
}
