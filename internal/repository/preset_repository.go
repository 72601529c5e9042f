package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jengzang/worldsynth/internal/models"
)

// PresetRepository handles database operations for presets
type PresetRepository struct {
	db *sqlx.DB
}

// NewPresetRepository creates a new preset repository
func NewPresetRepository(db *sqlx.DB) *PresetRepository {
	return &PresetRepository{db: db}
}

type presetRow struct {
	Name           string `db:"name"`
	Description    string `db:"description"`
	ParametersJSON string `db:"parameters_json"`
	NoiseJSON      string `db:"noise_json"`
	Builtin        bool   `db:"builtin"`
	CreatedAt      int64  `db:"created_at"`
	UpdatedAt      int64  `db:"updated_at"`
}

func (r presetRow) model() (*models.Preset, error) {
	p := &models.Preset{
		Name:        r.Name,
		Description: r.Description,
		Builtin:     r.Builtin,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if err := json.Unmarshal([]byte(r.ParametersJSON), &p.Parameters); err != nil {
		return nil, fmt.Errorf("failed to decode parameters of preset %s: %w", r.Name, err)
	}
	if err := json.Unmarshal([]byte(r.NoiseJSON), &p.Noise); err != nil {
		return nil, fmt.Errorf("failed to decode noise of preset %s: %w", r.Name, err)
	}
	return p, nil
}

const presetColumns = `name, description, parameters_json, noise_json, builtin, created_at, updated_at`

// Upsert inserts a preset or replaces the stored one with the same name
func (r *PresetRepository) Upsert(p *models.Preset) error {
	params, err := json.Marshal(p.Parameters)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	noise, err := json.Marshal(p.Noise)
	if err != nil {
		return fmt.Errorf("failed to encode noise: %w", err)
	}

	now := time.Now().Unix()
	query := `
		INSERT INTO presets (` + presetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			description = excluded.description,
			parameters_json = excluded.parameters_json,
			noise_json = excluded.noise_json,
			builtin = excluded.builtin,
			updated_at = excluded.updated_at
	`
	if _, err := r.db.Exec(query, p.Name, p.Description, string(params), string(noise), p.Builtin, now, now); err != nil {
		return fmt.Errorf("failed to save preset %s: %w", p.Name, err)
	}

	if p.CreatedAt == 0 {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return nil
}

// InsertIfMissing stores p unless a preset with the same name exists.
// It reports whether a row was written.
func (r *PresetRepository) InsertIfMissing(p *models.Preset) (bool, error) {
	existing, err := r.GetByName(p.Name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := r.Upsert(p); err != nil {
		return false, err
	}
	return true, nil
}

// GetByName retrieves a preset by name. It returns nil, nil when none exists.
func (r *PresetRepository) GetByName(name string) (*models.Preset, error) {
	var row presetRow
	err := r.db.Get(&row, `SELECT `+presetColumns+` FROM presets WHERE name = ?`, name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}
	return row.model()
}

// List retrieves every preset ordered by name
func (r *PresetRepository) List() ([]*models.Preset, error) {
	var rows []presetRow
	if err := r.db.Select(&rows, `SELECT `+presetColumns+` FROM presets ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	presets := make([]*models.Preset, 0, len(rows))
	for _, row := range rows {
		p, err := row.model()
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// Delete removes a preset and reports whether it existed
func (r *PresetRepository) Delete(name string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return false, fmt.Errorf("failed to delete preset: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}
