// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"fieldcal/database"
	"fieldcal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no schedule matches the given ID.
var ErrNotFound = errors.New("schedule not found")

type ScheduleRepository interface {
	GetAll(ctx context.Context) ([]models.ScheduleEntry, error)
	GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error)
	GetByDateRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error)
	Add(ctx context.Context, entry *models.ScheduleEntry) error
	Update(ctx context.Context, entry *models.ScheduleEntry) error
	Delete(ctx context.Context, id string) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("schedules"),
	}
}
