package repository

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/jengzang/worldsynth/internal/database"
	"github.com/jengzang/worldsynth/internal/models"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

func openTemp(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "repo.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestPresetRoundTrip(t *testing.T) {
	repo := NewPresetRepository(openTemp(t))
	earth, _ := worldgen.LookupPreset("earth")

	p := models.PresetFrom(earth, true)
	if err := repo.Upsert(p); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := repo.GetByName("earth")
	if err != nil || got == nil {
		t.Fatalf("GetByName = %v, %v", got, err)
	}
	if got.Parameters != earth.Parameters || got.Noise != earth.Noise || !got.Builtin {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.CreatedAt == 0 || got.UpdatedAt == 0 {
		t.Fatal("timestamps not stored")
	}

	missing, err := repo.GetByName("nowhere")
	if err != nil || missing != nil {
		t.Fatalf("missing preset = %v, %v; want nil, nil", missing, err)
	}
}

func TestPresetUpsertListDelete(t *testing.T) {
	repo := NewPresetRepository(openTemp(t))
	for _, p := range worldgen.Presets() {
		written, err := repo.InsertIfMissing(models.PresetFrom(p, true))
		if err != nil || !written {
			t.Fatalf("InsertIfMissing(%s) = %v, %v", p.Name, written, err)
		}
	}

	earth, _ := worldgen.LookupPreset("earth")
	if written, err := repo.InsertIfMissing(models.PresetFrom(earth, true)); err != nil || written {
		t.Fatalf("second insert = %v, %v; want false, nil", written, err)
	}

	earth.Description = "changed"
	earth.Noise.Seed = 99
	if err := repo.Upsert(models.PresetFrom(earth, false)); err != nil {
		t.Fatal(err)
	}
	got, _ := repo.GetByName("earth")
	if got.Description != "changed" || got.Noise.Seed != 99 || got.Builtin {
		t.Fatalf("upsert did not replace: %+v", got)
	}

	list, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != len(worldgen.Presets()) {
		t.Fatalf("List returned %d presets", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Name > list[i].Name {
			t.Fatal("List is not ordered by name")
		}
	}

	ok, err := repo.Delete("mars")
	if err != nil || !ok {
		t.Fatalf("Delete(mars) = %v, %v", ok, err)
	}
	ok, err = repo.Delete("mars")
	if err != nil || ok {
		t.Fatalf("second Delete(mars) = %v, %v", ok, err)
	}
}

func TestRunRepository(t *testing.T) {
	repo := NewRunRepository(openTemp(t))

	runs := []*models.GenerationRun{
		{ID: "a", Preset: "earth", Resolution: 3, Seed: 42, Source: "noise", CellCount: 384, Status: models.RunStatusCompleted, Fingerprint: "00ff", CreatedAt: 100},
		{ID: "b", Preset: "mars", Resolution: 2, Source: "noise", AnnualAverage: true, Status: models.RunStatusFailed, ErrorMessage: "invalid radius", CreatedAt: 200},
	}
	for _, run := range runs {
		if err := repo.Create(run); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.GetByID("b")
	if err != nil || got == nil {
		t.Fatalf("GetByID = %v, %v", got, err)
	}
	if *got != *runs[1] {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, runs[1])
	}

	if missing, err := repo.GetByID("zzz"); err != nil || missing != nil {
		t.Fatalf("missing run = %v, %v", missing, err)
	}

	recent, err := repo.ListRecent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 || recent[0].ID != "b" {
		t.Fatalf("ListRecent order wrong: %+v", recent)
	}

	recent, err = repo.ListRecent(1)
	if err != nil || len(recent) != 1 {
		t.Fatalf("ListRecent(1) = %d, %v", len(recent), err)
	}
}
