package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/worldsynth/internal/grid"
	"github.com/jengzang/worldsynth/internal/models"
	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/repository"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

// WorldService generates worlds on request and records every run
type WorldService struct {
	presets       *PresetService
	runs          *repository.RunRepository
	maxResolution int
	workers       int
	logger        *slog.Logger
}

// NewWorldService creates a new world service
func NewWorldService(presets *PresetService, runs *repository.RunRepository, maxResolution, workers int, logger *slog.Logger) *WorldService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorldService{
		presets:       presets,
		runs:          runs,
		maxResolution: maxResolution,
		workers:       workers,
		logger:        logger,
	}
}

// Config resolves a request into a generation config
func (s *WorldService) Config(req *models.GenerateRequest) (worldgen.Config, string, error) {
	name := req.Preset
	if strings.TrimSpace(name) == "" {
		name = worldgen.DefaultPresetName
	}
	preset, err := s.presets.Get(name)
	if err != nil {
		return worldgen.Config{}, "", err
	}

	cfg := preset.WorldPreset().Config()
	cfg.Parameters = req.Parameters.Apply(cfg.Parameters)
	cfg.Noise = req.Noise.Apply(cfg.Noise)
	cfg.HeightMap = req.HeightMap
	cfg.AnnualAverage = req.AnnualAverage
	cfg.Workers = s.workers
	cfg.Log = s.logger

	if r := cfg.Parameters.GridResolution; r > s.maxResolution {
		return worldgen.Config{}, "", planet.Errorf("grid_resolution", "must not exceed %d on this server, got %d", s.maxResolution, r)
	}
	return cfg, preset.Name, nil
}

// Generate builds a world and records the run
func (s *WorldService) Generate(ctx context.Context, req *models.GenerateRequest) (*worldgen.World, *models.GenerationRun, error) {
	cfg, presetName, err := s.Config(req)
	if err != nil {
		return nil, nil, err
	}

	run := &models.GenerationRun{
		ID:            uuid.NewString(),
		Preset:        presetName,
		Resolution:    cfg.Parameters.GridResolution,
		Seed:          cfg.Noise.Seed,
		Source:        worldgen.SourceNoise,
		AnnualAverage: cfg.AnnualAverage,
		CreatedAt:     time.Now().Unix(),
	}
	if cfg.HeightMap != nil {
		run.Source = worldgen.SourceHeightMap
		run.Seed = 0
	}

	start := time.Now()
	world, genErr := worldgen.Generate(ctx, cfg)
	run.DurationMS = time.Since(start).Milliseconds()

	switch {
	case genErr == nil:
		st := world.Statistics()
		run.Status = models.RunStatusCompleted
		run.CellCount = st.TotalCells
		run.LandFraction = st.LandFraction
		run.MeanTemperature = st.MeanTemperature
		run.Fingerprint = fmt.Sprintf("%016x", world.Fingerprint())
	case errors.Is(genErr, context.Canceled), errors.Is(genErr, context.DeadlineExceeded):
		run.Status = models.RunStatusCancelled
		run.ErrorMessage = genErr.Error()
	default:
		run.Status = models.RunStatusFailed
		run.ErrorMessage = genErr.Error()
	}

	if err := s.runs.Create(run); err != nil {
		// The world is still usable without its log entry.
		log.Printf("Failed to record generation run %s: %v", run.ID, err)
	}
	if genErr != nil {
		return nil, run, genErr
	}
	return world, run, nil
}

// Cell regenerates the requested world and looks up one cell by id or by
// coordinates. The bool is false when the id is not part of the grid.
func (s *WorldService) Cell(ctx context.Context, req *models.CellRequest) (worldgen.CellRecord, bool, error) {
	var id grid.CellID
	switch {
	case req.ID != "":
		parsed, err := grid.ParseCellID(req.ID)
		if err != nil {
			return worldgen.CellRecord{}, false, planet.Errorf("id", "%v", err)
		}
		id = parsed
	case req.Lat == nil || req.Lng == nil:
		return worldgen.CellRecord{}, false, planet.Errorf("lat", "lat and lng or id are required")
	}

	world, _, err := s.Generate(ctx, &req.GenerateRequest)
	if err != nil {
		return worldgen.CellRecord{}, false, err
	}

	if req.ID != "" {
		rec, ok := world.CellByID(id)
		return rec, ok, nil
	}
	rec, ok := world.CellAt(*req.Lat, *req.Lng)
	return rec, ok, nil
}

// Runs returns the most recent generation runs
func (s *WorldService) Runs(limit int) ([]*models.GenerationRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.runs.ListRecent(limit)
}

// Run returns a single generation run, or nil when it does not exist
func (s *WorldService) Run(id string) (*models.GenerationRun, error) {
	return s.runs.GetByID(id)
}

// Response builds the JSON body for a generated world
func Response(world *worldgen.World, run *models.GenerationRun, includeCells bool) *models.WorldResponse {
	resp := &models.WorldResponse{
		RunID:         run.ID,
		Preset:        run.Preset,
		Parameters:    world.Parameters(),
		Source:        world.Source(),
		AnnualAverage: world.AnnualAverage(),
		Fingerprint:   run.Fingerprint,
		Statistics:    world.Statistics(),
	}
	if noise, ok := world.Noise(); ok {
		resp.Noise = &noise
	}
	if includeCells {
		resp.Cells = world.Cells()
	}
	return resp
}
