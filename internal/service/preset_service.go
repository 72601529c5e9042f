package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jengzang/worldsynth/internal/models"
	"github.com/jengzang/worldsynth/internal/repository"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

var (
	// ErrPresetNotFound is returned when a named preset does not exist
	ErrPresetNotFound = errors.New("preset not found")
	// ErrBuiltinPreset is returned when deleting a built-in preset
	ErrBuiltinPreset = errors.New("built-in presets cannot be deleted")
)

// PresetService handles preset business logic
type PresetService struct {
	repo *repository.PresetRepository
}

// NewPresetService creates a new preset service
func NewPresetService(repo *repository.PresetRepository) *PresetService {
	return &PresetService{repo: repo}
}

// Seed stores the built-in presets and any extra presets missing from the
// database. Extra presets override stored ones of the same name.
func (s *PresetService) Seed(extra []worldgen.Preset) error {
	var added int
	for _, p := range worldgen.Presets() {
		written, err := s.repo.InsertIfMissing(models.PresetFrom(p, true))
		if err != nil {
			return fmt.Errorf("failed to seed preset %s: %w", p.Name, err)
		}
		if written {
			added++
		}
	}
	for _, p := range extra {
		if err := s.Save(p); err != nil {
			return fmt.Errorf("failed to load preset %s: %w", p.Name, err)
		}
		added++
	}
	log.Printf("Presets seeded: %d written", added)
	return nil
}

// List returns every stored preset
func (s *PresetService) List() ([]*models.Preset, error) {
	return s.repo.List()
}

// Get returns the named preset, falling back to the built-in table when
// the database has no row for it
func (s *PresetService) Get(name string) (*models.Preset, error) {
	name = normalizeName(name)
	p, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}
	if b, ok := worldgen.LookupPreset(name); ok {
		return models.PresetFrom(b, true), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
}

// Save validates and stores a user preset. Saving over a built-in name
// replaces the stored copy but keeps its built-in flag.
func (s *PresetService) Save(p worldgen.Preset) error {
	p.Name = normalizeName(p.Name)
	if err := p.Validate(); err != nil {
		return err
	}
	_, builtin := worldgen.LookupPreset(p.Name)
	return s.repo.Upsert(models.PresetFrom(p, builtin))
}

// Delete removes a user preset
func (s *PresetService) Delete(name string) error {
	name = normalizeName(name)
	if _, ok := worldgen.LookupPreset(name); ok {
		return ErrBuiltinPreset
	}
	deleted, err := s.repo.Delete(name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
