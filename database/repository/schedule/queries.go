// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"fieldcal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoScheduleRepo) GetAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	return r.find(ctx, bson.M{})
}

// GetByDateRange returns entries with from <= assignedDate <= to. Dates are
// "2006-01-02" strings so lexical order is calendar order.
func (r *mongoScheduleRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	filter := bson.M{
		"assignedDate": bson.M{"$gte": from, "$lte": to},
	}
	return r.find(ctx, filter)
}

func (r *mongoScheduleRepo) find(ctx context.Context, filter bson.M) ([]models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// insertion order matters to the column layout, so sort by creation time
	opts := options.Find().SetSort(bson.D{{Key: "assignedDate", Value: 1}, {Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.ScheduleEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return entries, nil
}
