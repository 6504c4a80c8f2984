package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSaveRunAssignsUUID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{
		GameID:          "breakout",
		Player:          "alice",
		Score:           1400,
		Level:           2,
		BricksDestroyed: 40,
		Duration:        95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	runs, err := store.RecentRuns("breakout", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	r := runs[0]
	if r.ID != id || r.Player != "alice" || r.Score != 1400 || r.Level != 2 || r.BricksDestroyed != 40 {
		t.Errorf("run = %+v", r)
	}
	if r.Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 1m35s", r.Duration)
	}
}

func TestSaveRunExplicitID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	got, err := store.SaveRun(Run{ID: want, GameID: "breakout", Level: 1})
	if err != nil || got != want {
		t.Errorf("SaveRun() = (%q, %v), expected %q", got, err, want)
	}

	// Same ID twice violates the primary key
	if _, err := store.SaveRun(Run{ID: want, GameID: "breakout", Level: 1}); err == nil {
		t.Error("duplicate run id should fail")
	}

	if _, err := store.SaveRun(Run{ID: "not-a-uuid", GameID: "breakout"}); err == nil {
		t.Error("malformed run id should fail")
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveRun(Run{GameID: "breakout", Score: i * 10, Level: 1}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("breakout", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Score != 40 || runs[1].Score != 30 || runs[2].Score != 20 {
		t.Errorf("runs not newest first: %d, %d, %d", runs[0].Score, runs[1].Score, runs[2].Score)
	}
}
