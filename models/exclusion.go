package models

// ExclusionTimeType describes which part of the day a team is unavailable.
type ExclusionTimeType string

const (
	ExclusionAllDay    ExclusionTimeType = "allDay"
	ExclusionMorning   ExclusionTimeType = "morning"
	ExclusionAfternoon ExclusionTimeType = "afternoon"
	ExclusionCustom    ExclusionTimeType = "custom"
)

// ExclusionEntry declares a team unavailable on one date.
type ExclusionEntry struct {
	ID        string            `bson:"id" json:"id" yaml:"id"`
	Date      string            `bson:"date" json:"date" yaml:"date"`
	Team      TeamRef           `bson:"team" json:"team" yaml:"team"`
	TimeType  ExclusionTimeType `bson:"timeType" json:"timeType" yaml:"timeType"`
	StartTime string            `bson:"startTime,omitempty" json:"startTime,omitempty" yaml:"startTime,omitempty"` // "HH:MM", custom only
	EndTime   string            `bson:"endTime,omitempty" json:"endTime,omitempty" yaml:"endTime,omitempty"`
	Reason    string            `bson:"reason" json:"reason" yaml:"reason"`
}
