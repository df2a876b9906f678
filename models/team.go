package models

// Contractor is a reference row from the team directory.
type Contractor struct {
	ID       string `bson:"id" json:"id" yaml:"id"`
	Name     string `bson:"name" json:"name" yaml:"name"`
	IsActive bool   `bson:"isActive" json:"isActive" yaml:"isActive"`
}

// Team is a crew belonging to one contractor.
type Team struct {
	ID           string `bson:"id" json:"id" yaml:"id"`
	ContractorID string `bson:"contractorId" json:"contractorId" yaml:"contractorId"`
	TeamName     string `bson:"teamName" json:"teamName" yaml:"teamName"`
	IsActive     bool   `bson:"isActive" json:"isActive" yaml:"isActive"`
}

// TeamRef identifies a team together with its contractor. Two refs are the
// same team when their TeamID matches.
type TeamRef struct {
	ContractorID   string `bson:"contractorId" json:"contractorId" yaml:"contractorId"`
	ContractorName string `bson:"contractorName" json:"contractorName" yaml:"contractorName"`
	TeamID         string `bson:"teamId" json:"teamId" yaml:"teamId"`
	TeamName       string `bson:"teamName" json:"teamName" yaml:"teamName"`
}

// Same reports whether both refs point at the same team.
func (t TeamRef) Same(other TeamRef) bool {
	return t.TeamID == other.TeamID
}

// TeamFilter is a team plus its visibility flag and color tag.
type TeamFilter struct {
	TeamRef
	Visible bool   `json:"visible"`
	Color   string `json:"color"`
}
