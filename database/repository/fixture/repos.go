package fixtureRepo

import (
	"context"
	"sync"
	"time"

	exclusionRepo "fieldcal/database/repository/exclusion"
	scheduleRepo "fieldcal/database/repository/schedule"
	"fieldcal/models"

	"github.com/google/uuid"
)

type memoryScheduleRepo struct {
	mu      sync.RWMutex
	entries []models.ScheduleEntry
}

// NewScheduleRepo returns a ScheduleRepository over a private copy of entries.
func NewScheduleRepo(entries []models.ScheduleEntry) scheduleRepo.ScheduleRepository {
	own := make([]models.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		own = append(own, cloneEntry(e))
	}
	byDate(own, func(e models.ScheduleEntry) string { return e.AssignedDate })
	return &memoryScheduleRepo{entries: own}
}

func (r *memoryScheduleRepo) GetAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.ScheduleEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, cloneEntry(e))
	}
	return out, nil
}

func (r *memoryScheduleRepo) GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			e = cloneEntry(e)
			return &e, nil
		}
	}
	return nil, scheduleRepo.ErrNotFound
}

func (r *memoryScheduleRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.ScheduleEntry{}
	for _, e := range r.entries {
		if e.AssignedDate >= from && e.AssignedDate <= to {
			out = append(out, cloneEntry(e))
		}
	}
	return out, nil
}

func (r *memoryScheduleRepo) Add(ctx context.Context, entry *models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	entry.CreatedAt = now
	entry.UpdatedAt = now
	r.entries = append(r.entries, cloneEntry(*entry))
	byDate(r.entries, func(e models.ScheduleEntry) string { return e.AssignedDate })
	return nil
}

func (r *memoryScheduleRepo) Update(ctx context.Context, entry *models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == entry.ID {
			entry.UpdatedAt = time.Now().UTC()
			r.entries[i] = cloneEntry(*entry)
			byDate(r.entries, func(e models.ScheduleEntry) string { return e.AssignedDate })
			return nil
		}
	}
	return scheduleRepo.ErrNotFound
}

func (r *memoryScheduleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrNotFound
}

// cloneEntry copies the team slice so stored rows never share it with callers.
func cloneEntry(e models.ScheduleEntry) models.ScheduleEntry {
	e.AssignedTeams = append([]models.TeamRef(nil), e.AssignedTeams...)
	return e
}

type memoryExclusionRepo struct {
	entries []models.ExclusionEntry
}

// NewExclusionRepo returns a read-only ExclusionRepository.
func NewExclusionRepo(entries []models.ExclusionEntry) exclusionRepo.ExclusionRepository {
	own := make([]models.ExclusionEntry, len(entries))
	copy(own, entries)
	byDate(own, func(e models.ExclusionEntry) string { return e.Date })
	return &memoryExclusionRepo{entries: own}
}

func (r *memoryExclusionRepo) GetAll(ctx context.Context) ([]models.ExclusionEntry, error) {
	return append([]models.ExclusionEntry{}, r.entries...), nil
}

func (r *memoryExclusionRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.ExclusionEntry, error) {
	out := []models.ExclusionEntry{}
	for _, e := range r.entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}
