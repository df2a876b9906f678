package models

import "time"

// ScheduleKind separates construction jobs from site surveys.
type ScheduleKind string

const (
	KindConstruction ScheduleKind = "construction"
	KindSurvey       ScheduleKind = "survey"
)

// Valid reports whether k is a known kind.
func (k ScheduleKind) Valid() bool {
	return k == KindConstruction || k == KindSurvey
}

type ScheduleStatus string

const (
	StatusScheduled  ScheduleStatus = "scheduled"
	StatusInProgress ScheduleStatus = "inProgress"
	StatusCompleted  ScheduleStatus = "completed"
	StatusPostponed  ScheduleStatus = "postponed"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusPostponed:
		return true
	}
	return false
}

// AllDaySlot is the time slot sentinel for entries spanning the whole business day.
const AllDaySlot = "all-day"

// DateLayout is the format used for every stored calendar date.
const DateLayout = "2006-01-02"

// ScheduleEntry is one field-work assignment on a date, shared by one or more teams.
type ScheduleEntry struct {
	ID             string         `bson:"id" json:"id" yaml:"id"`
	OrderReference string         `bson:"orderReference" json:"orderReference" yaml:"orderReference"`
	CustomerName   string         `bson:"customerName" json:"customerName" yaml:"customerName"`
	Address        string         `bson:"address" json:"address" yaml:"address"`
	WorkType       string         `bson:"workType" json:"workType" yaml:"workType"`
	Kind           ScheduleKind   `bson:"kind" json:"kind" yaml:"kind"`
	AssignedDate   string         `bson:"assignedDate" json:"assignedDate" yaml:"assignedDate"` // e.g. "2025-09-15"
	TimeSlot       string         `bson:"timeSlot" json:"timeSlot" yaml:"timeSlot"`             // "09:00-10:30" or AllDaySlot
	Status         ScheduleStatus `bson:"status" json:"status" yaml:"status"`
	AssignedTeams  []TeamRef      `bson:"assignedTeams" json:"assignedTeams" yaml:"assignedTeams"`
	Memo           string         `bson:"memo,omitempty" json:"memo,omitempty" yaml:"memo,omitempty"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt" yaml:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt" yaml:"updatedAt"`
}

// HasTeam reports whether teamID is among the assigned teams.
func (e ScheduleEntry) HasTeam(teamID string) bool {
	for _, t := range e.AssignedTeams {
		if t.TeamID == teamID {
			return true
		}
	}
	return false
}

// ScheduleInput is the create/update payload accepted by the schedule endpoints.
type ScheduleInput struct {
	OrderReference string         `json:"orderReference"`
	CustomerName   string         `json:"customerName" binding:"required"`
	Address        string         `json:"address"`
	WorkType       string         `json:"workType"`
	Kind           ScheduleKind   `json:"kind" binding:"required"`
	AssignedDate   string         `json:"assignedDate" binding:"required"`
	TimeSlot       string         `json:"timeSlot" binding:"required"`
	Status         ScheduleStatus `json:"status"`
	AssignedTeams  []TeamRef      `json:"assignedTeams"`
	Memo           string         `json:"memo"`
}
