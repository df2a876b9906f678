// File: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes used by the calendar queries.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// month/week/day reads are all date ranges
		{
			Keys:    bson.D{{Key: "assignedDate", Value: 1}, {Key: "createdAt", Value: 1}},
			Options: options.Index().SetName("date_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "assignedTeams.teamId", Value: 1}, {Key: "assignedDate", Value: 1}},
			Options: options.Index().SetName("team_date_idx"),
		},
	}

	if _, err := db.Collection("schedules").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create schedule indexes: %w", err)
	}
	return nil
}
