package directoryRepo

import (
	"context"
	"fmt"
	"os"

	"fieldcal/models"

	"gopkg.in/yaml.v3"
)

// YAMLDirectory serves the directory from a fixture file, for local runs
// without a populated database. The file is read once at construction.
//
//	contractors:
//	  - id: c1
//	    name: North Works
//	    isActive: true
//	teams:
//	  - id: t1
//	    contractorId: c1
//	    teamName: Crew A
//	    isActive: true
type YAMLDirectory struct {
	Contractors []models.Contractor `yaml:"contractors"`
	Teams       []models.Team       `yaml:"teams"`
}

func NewYAMLDirectory(path string) (*YAMLDirectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file %s: %w", path, err)
	}
	return ParseYAMLDirectory(data)
}

func ParseYAMLDirectory(data []byte) (*YAMLDirectory, error) {
	var d YAMLDirectory
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse directory yaml: %w", err)
	}
	for i, t := range d.Teams {
		if t.ID == "" || t.ContractorID == "" {
			return nil, fmt.Errorf("team %d: id and contractorId are required", i+1)
		}
	}
	return &d, nil
}

func (d *YAMLDirectory) GetContractors(ctx context.Context) ([]models.Contractor, error) {
	return append([]models.Contractor(nil), d.Contractors...), nil
}

func (d *YAMLDirectory) GetTeams(ctx context.Context) ([]models.Team, error) {
	return append([]models.Team(nil), d.Teams...), nil
}
