package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jengzang/worldsynth/internal/database"
	"github.com/jengzang/worldsynth/internal/models"
	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/repository"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

func newServices(t *testing.T) (*PresetService, *WorldService) {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "svc.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	presets := NewPresetService(repository.NewPresetRepository(db))
	if err := presets.Seed(nil); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	worlds := NewWorldService(presets, repository.NewRunRepository(db), 4, 2, logger)
	return presets, worlds
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestPresetService(t *testing.T) {
	presets, _ := newServices(t)

	list, err := presets.List()
	if err != nil || len(list) != len(worldgen.Presets()) {
		t.Fatalf("List = %d, %v", len(list), err)
	}

	if _, err := presets.Get("Earth"); err != nil {
		t.Fatalf("Get(Earth): %v", err)
	}
	if _, err := presets.Get("pluto"); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("Get(pluto) err = %v", err)
	}

	earth, _ := worldgen.LookupPreset("earth")
	custom := earth
	custom.Name = "Wet Earth"
	custom.Parameters.SeaLevel = 0.8
	if err := presets.Save(custom); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := presets.Get("wet earth")
	if err != nil || got.Parameters.SeaLevel != 0.8 || got.Builtin {
		t.Fatalf("Get(wet earth) = %+v, %v", got, err)
	}

	bad := earth
	bad.Name = "bad"
	bad.Parameters.Radius = -1
	var cfgErr *planet.ConfigError
	if err := presets.Save(bad); !errors.As(err, &cfgErr) {
		t.Fatalf("Save(bad) err = %v", err)
	}

	if err := presets.Delete("earth"); !errors.Is(err, ErrBuiltinPreset) {
		t.Fatalf("Delete(earth) err = %v", err)
	}
	if err := presets.Delete("wet earth"); err != nil {
		t.Fatalf("Delete(wet earth): %v", err)
	}
	if err := presets.Delete("wet earth"); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("second Delete err = %v", err)
	}
}

func TestWorldServiceGenerate(t *testing.T) {
	_, worlds := newServices(t)

	req := &models.GenerateRequest{
		Preset:     "earth",
		Parameters: &models.ParameterOverrides{GridResolution: intPtr(2)},
	}
	world, run, err := worlds.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if run.Status != models.RunStatusCompleted || run.CellCount != world.Len() || run.Fingerprint == "" {
		t.Fatalf("unexpected run %+v", run)
	}

	stored, err := worlds.Run(run.ID)
	if err != nil || stored == nil || stored.Fingerprint != run.Fingerprint {
		t.Fatalf("stored run = %+v, %v", stored, err)
	}

	resp := Response(world, run, true)
	if resp.Noise == nil || len(resp.Cells) != world.Len() || resp.Statistics.TotalCells != world.Len() {
		t.Fatalf("unexpected response %+v", resp.Statistics)
	}
}

func TestWorldServiceRejects(t *testing.T) {
	_, worlds := newServices(t)
	var cfgErr *planet.ConfigError

	tooFine := &models.GenerateRequest{Parameters: &models.ParameterOverrides{GridResolution: intPtr(5)}}
	if _, _, err := worlds.Generate(context.Background(), tooFine); !errors.As(err, &cfgErr) {
		t.Fatalf("resolution above server limit: err = %v", err)
	}

	badRadius := &models.GenerateRequest{Parameters: &models.ParameterOverrides{GridResolution: intPtr(1), Radius: floatPtr(0)}}
	_, run, err := worlds.Generate(context.Background(), badRadius)
	if !errors.As(err, &cfgErr) || cfgErr.Field != "radius" {
		t.Fatalf("bad radius: err = %v", err)
	}
	if run == nil || run.Status != models.RunStatusFailed {
		t.Fatalf("failed run not recorded: %+v", run)
	}

	if _, _, err := worlds.Generate(context.Background(), &models.GenerateRequest{Preset: "pluto"}); !errors.Is(err, ErrPresetNotFound) {
		t.Fatalf("unknown preset: err = %v", err)
	}

	runs, err := worlds.Runs(0)
	if err != nil || len(runs) != 1 {
		t.Fatalf("Runs = %d, %v", len(runs), err)
	}
}

func TestWorldServiceCell(t *testing.T) {
	_, worlds := newServices(t)
	base := models.GenerateRequest{Parameters: &models.ParameterOverrides{GridResolution: intPtr(2)}}

	byCoord := &models.CellRequest{GenerateRequest: base, Lat: floatPtr(10), Lng: floatPtr(20)}
	rec, ok, err := worlds.Cell(context.Background(), byCoord)
	if err != nil || !ok {
		t.Fatalf("Cell by coordinate = %v, %v", ok, err)
	}

	byID := &models.CellRequest{GenerateRequest: base, ID: rec.ID.String()}
	again, ok, err := worlds.Cell(context.Background(), byID)
	if err != nil || !ok || again != rec {
		t.Fatalf("Cell by id = %+v, %v, %v", again, ok, err)
	}

	// A valid id at another level is not part of this grid.
	other := &models.CellRequest{GenerateRequest: base, ID: rec.ID.String() + "1"}
	if _, ok, err := worlds.Cell(context.Background(), other); ok {
		t.Fatalf("foreign id matched, err = %v", err)
	}

	var cfgErr *planet.ConfigError
	if _, _, err := worlds.Cell(context.Background(), &models.CellRequest{GenerateRequest: base}); !errors.As(err, &cfgErr) {
		t.Fatalf("missing coordinates: err = %v", err)
	}
	if _, _, err := worlds.Cell(context.Background(), &models.CellRequest{GenerateRequest: base, ID: "zz"}); !errors.As(err, &cfgErr) {
		t.Fatalf("bad id: err = %v", err)
	}
}
