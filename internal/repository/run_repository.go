package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jengzang/worldsynth/internal/models"
)

// RunRepository handles database operations for generation runs
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Create records a generation run
func (r *RunRepository) Create(run *models.GenerationRun) error {
	query := `
		INSERT INTO generation_runs (
			id, preset, resolution, seed, source, annual_average, cell_count,
			land_fraction, mean_temperature, fingerprint, duration_ms, status,
			error_message, created_at
		) VALUES (
			:id, :preset, :resolution, :seed, :source, :annual_average, :cell_count,
			:land_fraction, :mean_temperature, :fingerprint, :duration_ms, :status,
			:error_message, :created_at
		)
	`
	if _, err := r.db.NamedExec(query, run); err != nil {
		return fmt.Errorf("failed to create generation run: %w", err)
	}
	return nil
}

// GetByID retrieves a run by ID. It returns nil, nil when none exists.
func (r *RunRepository) GetByID(id string) (*models.GenerationRun, error) {
	run := &models.GenerationRun{}
	err := r.db.Get(run, `SELECT * FROM generation_runs WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation run: %w", err)
	}
	return run, nil
}

// ListRecent retrieves the most recent runs, newest first
func (r *RunRepository) ListRecent(limit int) ([]*models.GenerationRun, error) {
	runs := []*models.GenerationRun{}
	query := `SELECT * FROM generation_runs ORDER BY created_at DESC, rowid DESC LIMIT ?`
	if err := r.db.Select(&runs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	return runs, nil
}
