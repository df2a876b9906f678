package exclusionRepo

import (
	"context"
	"fmt"
	"time"

	"fieldcal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoExclusionRepo) GetAll(ctx context.Context) ([]models.ExclusionEntry, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoExclusionRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.ExclusionEntry, error) {
	return r.find(ctx, bson.M{"date": bson.M{"$gte": from, "$lte": to}})
}

func (r *mongoExclusionRepo) find(ctx context.Context, filter bson.M) ([]models.ExclusionEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch exclusions: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.ExclusionEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding exclusions: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates the date and team indexes on the exclusions collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := db.Collection("exclusions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("date_idx"),
		},
		{
			Keys:    bson.D{{Key: "team.teamId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("team_date_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create exclusion indexes: %w", err)
	}
	return nil
}
