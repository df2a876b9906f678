// Package fixtureRepo serves schedules and exclusions from a YAML dataset
// held in memory, for offline rendering and demos.
package fixtureRepo

import (
	"cmp"
	"fmt"
	"os"
	"slices"

	"fieldcal/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Dataset is the on-disk fixture layout.
//
//	schedules:
//	  - id: s1
//	    customerName: Tanaka
//	    kind: construction
//	    assignedDate: "2025-09-15"
//	    timeSlot: "09:00-10:30"
//	    assignedTeams:
//	      - teamId: t1
//	        teamName: Crew A
//	exclusions:
//	  - id: x1
//	    date: "2025-09-15"
//	    team: {teamId: t2, teamName: Crew B}
//	    timeType: morning
type Dataset struct {
	Schedules  []models.ScheduleEntry  `yaml:"schedules"`
	Exclusions []models.ExclusionEntry `yaml:"exclusions"`
}

func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a dataset. Entries without an ID get a generated one
// and a missing schedule status defaults to scheduled.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse dataset yaml: %w", err)
	}
	for i := range ds.Schedules {
		s := &ds.Schedules[i]
		if s.AssignedDate == "" {
			return nil, fmt.Errorf("schedule %d: assignedDate is required", i+1)
		}
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
		if s.Status == "" {
			s.Status = models.StatusScheduled
		}
	}
	for i := range ds.Exclusions {
		x := &ds.Exclusions[i]
		if x.Date == "" || x.Team.TeamID == "" {
			return nil, fmt.Errorf("exclusion %d: date and team.teamId are required", i+1)
		}
		if x.ID == "" {
			x.ID = uuid.New().String()
		}
	}
	return &ds, nil
}

// byDate orders entries by date and keeps file order within a date.
func byDate[T any](items []T, date func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(date(a), date(b))
	})
}
