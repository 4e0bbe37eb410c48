package meds

import (
	"path/filepath"
	"testing"

	"github.com/mwhitfield/caretrack/internal/cli"
	"github.com/mwhitfield/caretrack/internal/notifier"
	"github.com/mwhitfield/caretrack/internal/scheduler"
	"github.com/mwhitfield/caretrack/internal/storage"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	desktop := notifier.NewDesktop(store)
	return &cli.Context{
		Store:     store,
		Notifier:  desktop,
		Scheduler: scheduler.New(desktop, store),
	}
}

func TestMedAddAndList(t *testing.T) {
	ctx := setupTestDB(t)

	add := &MedAddCmd{Name: "Lisinopril", Time: "09:00", Dosage: "10mg"}
	if err := add.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if err := add.Run(ctx); err != nil {
		t.Fatalf("med add failed: %v", err)
	}

	obligations, err := ctx.Store.GetAllObligations()
	if err != nil {
		t.Fatalf("failed to load medications: %v", err)
	}
	if len(obligations) != 1 {
		t.Fatalf("got %d medication(s), want 1", len(obligations))
	}
	if obligations[0].Name != "Lisinopril" || obligations[0].Time != "09:00" || obligations[0].Dosage != "10mg" {
		t.Errorf("unexpected stored medication: %+v", obligations[0])
	}
	if !obligations[0].Active {
		t.Error("new medication should be active")
	}

	if err := (&MedListCmd{}).Run(ctx); err != nil {
		t.Errorf("med list failed: %v", err)
	}
}

func TestMedAddValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     MedAddCmd
		wantErr bool
	}{
		{"valid", MedAddCmd{Name: "Metformin", Time: "08:30"}, false},
		{"bad hour", MedAddCmd{Name: "Metformin", Time: "24:30"}, true},
		{"missing colon", MedAddCmd{Name: "Metformin", Time: "0830"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMedEdit(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&MedAddCmd{Name: "Metformin", Time: "08:00", Dosage: "500mg"}).Run(ctx); err != nil {
		t.Fatalf("med add failed: %v", err)
	}
	obligations, _ := ctx.Store.GetAllObligations()
	id := obligations[0].ID

	newTime := "20:00"
	inactive := false
	cmd := &MedEditCmd{ID: id, Time: &newTime, Active: &inactive}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("med edit failed: %v", err)
	}

	updated, err := ctx.Store.GetObligation(id)
	if err != nil {
		t.Fatalf("failed to read medication back: %v", err)
	}
	if updated.Time != "20:00" {
		t.Errorf("Time = %q, want 20:00", updated.Time)
	}
	if updated.Active {
		t.Error("medication should be inactive after edit")
	}
	if updated.Name != "Metformin" || updated.Dosage != "500mg" {
		t.Errorf("unrelated fields changed: %+v", updated)
	}
}

func TestMedEditUnknownID(t *testing.T) {
	ctx := setupTestDB(t)

	name := "Metformin"
	if err := (&MedEditCmd{ID: "missing", Name: &name}).Run(ctx); err == nil {
		t.Error("expected error editing unknown medication")
	}
}

func TestMedDelete(t *testing.T) {
	ctx := setupTestDB(t)

	if err := (&MedAddCmd{Name: "Metformin", Time: "08:00"}).Run(ctx); err != nil {
		t.Fatalf("med add failed: %v", err)
	}
	obligations, _ := ctx.Store.GetAllObligations()
	id := obligations[0].ID

	if err := (&MedDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("med delete failed: %v", err)
	}

	remaining, err := ctx.Store.GetAllObligations()
	if err != nil {
		t.Fatalf("failed to load medications: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d medication(s) left after delete, want 0", len(remaining))
	}

	if err := (&MedDeleteCmd{ID: id}).Run(ctx); err == nil {
		t.Error("expected error deleting an already-deleted medication")
	}
}
