package exclusionRepo

import (
	"context"

	"fieldcal/database"
	"fieldcal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExclusionRepository is read-only; exclusions are maintained elsewhere.
type ExclusionRepository interface {
	GetAll(ctx context.Context) ([]models.ExclusionEntry, error)
	GetByDateRange(ctx context.Context, from, to string) ([]models.ExclusionEntry, error)
}

type mongoExclusionRepo struct {
	coll *mongo.Collection
}

func NewMongoExclusionRepo() ExclusionRepository {
	return &mongoExclusionRepo{
		coll: database.DB().Collection("exclusions"),
	}
}
