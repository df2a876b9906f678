// File: database/repository/directory/interface.go
package directoryRepo

import (
	"context"

	"fieldcal/models"
)

// TeamDirectory supplies contractor and team reference data. Implementations
// return inactive rows too; callers decide what to drop.
type TeamDirectory interface {
	GetContractors(ctx context.Context) ([]models.Contractor, error)
	GetTeams(ctx context.Context) ([]models.Team, error)
}
