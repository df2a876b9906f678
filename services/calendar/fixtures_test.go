package calendar

import (
	"context"
	"sort"
	"sync"

	scheduleRepo "fieldcal/database/repository/schedule"
	"fieldcal/models"
)

func testDirectory() ([]models.Contractor, []models.Team) {
	contractors := []models.Contractor{
		{ID: "c1", Name: "North Works", IsActive: true},
		{ID: "c2", Name: "South Build", IsActive: true},
		{ID: "c3", Name: "Retired Co", IsActive: false},
		{ID: "c4", Name: "Empty Co", IsActive: true},
	}
	teams := []models.Team{
		{ID: "t1", ContractorID: "c1", TeamName: "Crew A", IsActive: true},
		{ID: "t2", ContractorID: "c1", TeamName: "Crew B", IsActive: true},
		{ID: "t3", ContractorID: "c1", TeamName: "Crew C", IsActive: true},
		{ID: "t4", ContractorID: "c2", TeamName: "Crew D", IsActive: true},
		{ID: "t5", ContractorID: "c2", TeamName: "Crew E", IsActive: false},
		{ID: "t6", ContractorID: "c3", TeamName: "Crew F", IsActive: true},
	}
	return contractors, teams
}

func testFilter() *FilterState {
	c, t := testDirectory()
	return NewFilterStateFromDirectory(c, t)
}

func ref(teamID string) models.TeamRef {
	return models.TeamRef{TeamID: teamID, TeamName: "Crew " + teamID}
}

func entry(id, date, slot string, kind models.ScheduleKind, teams ...string) models.ScheduleEntry {
	e := models.ScheduleEntry{
		ID:           id,
		CustomerName: "customer " + id,
		Kind:         kind,
		AssignedDate: date,
		TimeSlot:     slot,
		Status:       models.StatusScheduled,
	}
	for _, t := range teams {
		e.AssignedTeams = append(e.AssignedTeams, ref(t))
	}
	return e
}

func exclusion(id, date, teamID string, tt models.ExclusionTimeType) models.ExclusionEntry {
	return models.ExclusionEntry{ID: id, Date: date, Team: ref(teamID), TimeType: tt, Reason: "off"}
}

type fakeScheduleRepo struct {
	mu      sync.Mutex
	entries []models.ScheduleEntry
	err     error
}

func (r *fakeScheduleRepo) GetAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]models.ScheduleEntry(nil), r.entries...), nil
}

func (r *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*models.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, scheduleRepo.ErrNotFound
}

func (r *fakeScheduleRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []models.ScheduleEntry
	for _, e := range r.entries {
		if e.AssignedDate >= from && e.AssignedDate <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeScheduleRepo) Add(ctx context.Context, e *models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeScheduleRepo) Update(ctx context.Context, e *models.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == e.ID {
			r.entries[i] = *e
			return nil
		}
	}
	return scheduleRepo.ErrNotFound
}

func (r *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
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

type fakeExclusionRepo struct {
	entries []models.ExclusionEntry
}

func (r *fakeExclusionRepo) GetAll(ctx context.Context) ([]models.ExclusionEntry, error) {
	return r.entries, nil
}

func (r *fakeExclusionRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.ExclusionEntry, error) {
	var out []models.ExclusionEntry
	for _, e := range r.entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDirectory struct {
	contractors []models.Contractor
	teams       []models.Team
	err         error
}

func (d *fakeDirectory) GetContractors(ctx context.Context) ([]models.Contractor, error) {
	return d.contractors, d.err
}

func (d *fakeDirectory) GetTeams(ctx context.Context) ([]models.Team, error) {
	return d.teams, d.err
}

func entryIDs(entries []models.ScheduleEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)
	return ids
}
