package calendar

import (
	"reflect"
	"testing"

	"fieldcal/models"
)

func TestNewFilterStateDropsInactive(t *testing.T) {
	f := testFilter()
	var ids []string
	for _, team := range f.Teams {
		ids = append(ids, team.TeamID)
		if !team.Visible {
			t.Errorf("team %s: expected visible by default", team.TeamID)
		}
		if team.Color == "" {
			t.Errorf("team %s: expected a color", team.TeamID)
		}
	}
	want := []string{"t1", "t2", "t3", "t4"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected teams %v, got %v", want, ids)
	}
	if f.Teams[0].ContractorName != "North Works" {
		t.Errorf("expected contractor name on the ref, got %q", f.Teams[0].ContractorName)
	}

	contractors := f.Contractors()
	if len(contractors) != 2 {
		t.Fatalf("expected only contractors with active teams, got %+v", contractors)
	}
}

func TestContractorCheckState(t *testing.T) {
	f := testFilter()
	f.ToggleTeam("t3", false)
	if got := f.ContractorCheckState("c1"); got != CheckSome {
		t.Fatalf("expected some with 2 of 3 visible, got %s", got)
	}
	f.ToggleTeam("t3", true)
	if got := f.ContractorCheckState("c1"); got != CheckAll {
		t.Fatalf("expected all, got %s", got)
	}
	f.ToggleContractor("c1", false)
	if got := f.ContractorCheckState("c1"); got != CheckNone {
		t.Fatalf("expected none, got %s", got)
	}
	if got := f.ContractorCheckState("c2"); got != CheckAll {
		t.Fatalf("expected other contractor untouched, got %s", got)
	}
	if got := f.ContractorCheckState("c3"); got != CheckNone {
		t.Fatalf("expected none for a contractor outside the set, got %s", got)
	}
}

func TestCheckStateMatchesVisibility(t *testing.T) {
	f := testFilter()
	// every subset of c1's three teams
	for mask := 0; mask < 8; mask++ {
		f.ToggleTeam("t1", mask&1 != 0)
		f.ToggleTeam("t2", mask&2 != 0)
		f.ToggleTeam("t3", mask&4 != 0)
		want := CheckSome
		switch mask {
		case 0:
			want = CheckNone
		case 7:
			want = CheckAll
		}
		if got := f.ContractorCheckState("c1"); got != want {
			t.Errorf("mask %03b: expected %s, got %s", mask, want, got)
		}
	}
}

func TestToggleAll(t *testing.T) {
	f := testFilter()
	f.ToggleAll(false)
	if len(f.VisibleTeams()) != 0 {
		t.Fatal("expected no visible teams")
	}
	f.ToggleAll(true)
	if len(f.VisibleTeams()) != 4 {
		t.Fatal("expected all teams visible")
	}
}

func TestToggleUnknown(t *testing.T) {
	f := testFilter()
	if f.ToggleTeam("nope", false) {
		t.Error("expected unknown team to report false")
	}
	if f.ToggleContractor("c3", false) {
		t.Error("expected inactive contractor to report false")
	}
}

func TestFilterSchedulesIntersection(t *testing.T) {
	f := testFilter()
	f.ToggleAll(false)
	f.ToggleTeam("t2", true)

	entries := []models.ScheduleEntry{
		entry("a", "2025-09-15", "09:00-10:00", models.KindConstruction, "t1"),
		entry("b", "2025-09-15", "09:00-10:00", models.KindConstruction, "t1", "t2"),
		entry("c", "2025-09-15", "09:00-10:00", models.KindSurvey, "t2"),
		entry("d", "2025-09-15", "09:00-10:00", models.KindSurvey, "t4"),
	}
	got := entryIDs(f.FilterSchedules(entries))
	if !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("expected [b c], got %v", got)
	}

	f.SetKindVisible(models.KindSurvey, false)
	got = entryIDs(f.FilterSchedules(entries))
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("expected [b] with surveys hidden, got %v", got)
	}
}

func TestFilterSchedulesProperty(t *testing.T) {
	f := testFilter()
	entries := []models.ScheduleEntry{
		entry("a", "2025-09-15", "09:00-10:00", models.KindConstruction, "t1"),
		entry("b", "2025-09-15", "09:00-10:00", models.KindSurvey, "t1", "t4"),
		entry("c", "2025-09-15", "09:00-10:00", models.KindSurvey, "t3"),
		entry("d", "2025-09-15", "09:00-10:00", models.KindConstruction, "t2", "t3"),
	}
	teams := []string{"t1", "t2", "t3", "t4"}
	for mask := 0; mask < 16; mask++ {
		for _, surveys := range []bool{true, false} {
			visible := map[string]bool{}
			for i, id := range teams {
				visible[id] = mask&(1<<i) != 0
				f.ToggleTeam(id, visible[id])
			}
			f.SetKindVisible(models.KindSurvey, surveys)

			kept := map[string]bool{}
			for _, e := range f.FilterSchedules(entries) {
				kept[e.ID] = true
			}
			for _, e := range entries {
				hit := false
				for _, tr := range e.AssignedTeams {
					hit = hit || visible[tr.TeamID]
				}
				want := hit && (e.Kind != models.KindSurvey || surveys)
				if kept[e.ID] != want {
					t.Errorf("mask %04b surveys=%v entry %s: expected kept=%v", mask, surveys, e.ID, want)
				}
			}
		}
	}
}

func TestFilterExclusions(t *testing.T) {
	f := testFilter()
	f.ToggleTeam("t1", false)
	got := f.FilterExclusions([]models.ExclusionEntry{
		exclusion("x1", "2025-09-15", "t1", models.ExclusionAllDay),
		exclusion("x2", "2025-09-15", "t2", models.ExclusionMorning),
	})
	if len(got) != 1 || got[0].ID != "x2" {
		t.Fatalf("expected only x2, got %+v", got)
	}
}

func TestEmptyDirectoryPassesEverything(t *testing.T) {
	f := NewFilterStateFromDirectory(nil, nil)
	f.SetKindVisible(models.KindSurvey, false)
	entries := []models.ScheduleEntry{
		entry("a", "2025-09-15", "09:00-10:00", models.KindSurvey, "t9"),
		entry("b", "2025-09-15", "09:00-10:00", models.KindConstruction),
	}
	if got := f.FilterSchedules(entries); len(got) != 2 {
		t.Fatalf("expected vacuous pass, got %d entries", len(got))
	}
	if got := f.FilterExclusions([]models.ExclusionEntry{exclusion("x", "2025-09-15", "t9", models.ExclusionAllDay)}); len(got) != 1 {
		t.Fatalf("expected vacuous pass for exclusions, got %d", len(got))
	}
	if f.VisibleSet() != nil {
		t.Fatal("expected nil visible set before load")
	}
}

func TestRemovedTeamIsAlwaysExcluded(t *testing.T) {
	f := testFilter()
	orphan := entry("o", "2025-09-15", "09:00-10:00", models.KindConstruction, "t5")
	gone := entry("g", "2025-09-15", "09:00-10:00", models.KindConstruction, "deleted-team")

	combos := []func(){
		func() { f.ToggleAll(true) },
		func() { f.ToggleAll(false) },
		func() { f.ToggleContractor("c2", true) },
		func() { f.ToggleTeam("t5", true) },
		func() { f.SetKindVisible(models.KindConstruction, true) },
	}
	for i, apply := range combos {
		apply()
		if got := f.FilterSchedules([]models.ScheduleEntry{orphan, gone}); len(got) != 0 {
			t.Errorf("combo %d: expected entries on unknown teams to be excluded, got %v", i, entryIDs(got))
		}
	}
}

func TestReloadKeepsVisibility(t *testing.T) {
	f := testFilter()
	f.ToggleTeam("t2", false)
	contractors, teams := testDirectory()
	teams[4].IsActive = true // t5 comes back
	teams[0].IsActive = false

	f.Reload(contractors, teams)

	if f.IsTeamVisible("t1") {
		t.Error("expected deactivated t1 to be gone")
	}
	if f.IsTeamVisible("t2") {
		t.Error("expected t2 to stay hidden")
	}
	if !f.IsTeamVisible("t5") {
		t.Error("expected reactivated t5 to be visible")
	}
}

func TestKindVisibleDefaults(t *testing.T) {
	f := &FilterState{}
	if !f.KindVisible(models.KindSurvey) {
		t.Fatal("expected untouched kind to be visible")
	}
	f.SetKindVisible(models.KindSurvey, false)
	if f.KindVisible(models.KindSurvey) || !f.KindVisible(models.KindConstruction) {
		t.Fatal("expected independent kind toggles")
	}
}
