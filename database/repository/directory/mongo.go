package directoryRepo

import (
	"context"
	"fmt"
	"time"

	"fieldcal/database"
	"fieldcal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDirectory struct {
	contractors *mongo.Collection
	teams       *mongo.Collection
}

// NewMongoDirectory reads the contractors and teams collections.
func NewMongoDirectory() TeamDirectory {
	db := database.DB()
	return &mongoDirectory{
		contractors: db.Collection("contractors"),
		teams:       db.Collection("teams"),
	}
}

func (d *mongoDirectory) GetContractors(ctx context.Context) ([]models.Contractor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sortOrder", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := d.contractors.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contractors: %w", err)
	}
	defer cursor.Close(ctx)

	contractors := []models.Contractor{}
	if err := cursor.All(ctx, &contractors); err != nil {
		return nil, fmt.Errorf("error decoding contractors: %w", err)
	}
	return contractors, nil
}

func (d *mongoDirectory) GetTeams(ctx context.Context) ([]models.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "contractorId", Value: 1}, {Key: "sortOrder", Value: 1}, {Key: "teamName", Value: 1}})
	cursor, err := d.teams.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	defer cursor.Close(ctx)

	teams := []models.Team{}
	if err := cursor.All(ctx, &teams); err != nil {
		return nil, fmt.Errorf("error decoding teams: %w", err)
	}
	return teams, nil
}
