// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fieldcal/models"
)

func (r *mongoScheduleRepo) Add(ctx context.Context, entry *models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

// Update replaces the stored entry and stamps UpdatedAt.
func (r *mongoScheduleRepo) Update(ctx context.Context, entry *models.ScheduleEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	entry.UpdatedAt = time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"orderReference": entry.OrderReference,
			"customerName":   entry.CustomerName,
			"address":        entry.Address,
			"workType":       entry.WorkType,
			"kind":           entry.Kind,
			"assignedDate":   entry.AssignedDate,
			"timeSlot":       entry.TimeSlot,
			"status":         entry.Status,
			"assignedTeams":  entry.AssignedTeams,
			"memo":           entry.Memo,
			"updatedAt":      entry.UpdatedAt,
		},
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": entry.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update schedule %s: %w", entry.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.ScheduleEntry
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule %s: %w", id, err)
	}
	return &entry, nil
}
