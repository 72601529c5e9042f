package worldgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jengzang/worldsynth/internal/biome"
	"github.com/jengzang/worldsynth/internal/climate"
	"github.com/jengzang/worldsynth/internal/grid"
)

// Generate builds a world. Configuration problems are reported as
// *planet.ConfigError before any cell is computed. Cancellation is checked
// between passes and before each chunk of work; a cancelled run returns an
// error wrapping ctx.Err().
func Generate(ctx context.Context, cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	src, err := cfg.source()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p := cfg.Parameters
	g, err := grid.Build(p.GridResolution)
	if err != nil {
		return nil, err
	}
	n := g.Len()
	cells := make([]CellRecord, n)
	log.Debug("grid built", "resolution", p.GridResolution, "cells", n, "elapsed", time.Since(start))

	// Terrain and ocean mask.
	t := time.Now()
	err = forEachChunk(ctx, n, cfg.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c := g.At(i)
			e := src.ElevationAt(c.Lat, c.Lng)
			cells[i] = CellRecord{
				ID:      c.ID,
				Lat:     c.Lat,
				Lng:     c.Lng,
				Terrain: TerrainSample{Elevation: e, Altitude: p.Altitude(e)},
				IsOcean: e < p.SeaLevel,
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("terrain pass: %w", err)
	}
	log.Debug("terrain pass done", "elapsed", time.Since(t))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("ocean distance: %w", err)
	}
	t = time.Now()
	oceanDistances(g, cells, p.Radius)
	log.Debug("ocean distances done", "elapsed", time.Since(t))

	// Climate and biome. Wind stays zero.
	t = time.Now()
	err = forEachChunk(ctx, n, cfg.Workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			c := &cells[i]
			c.Climate = climate.Compute(p, c.Lat, c.Lng, c.Terrain.Altitude, c.OceanDistanceKm, cfg.AnnualAverage)
			c.Biome = biome.Classify(c.Climate.Temperature, c.Climate.Precipitation, c.Terrain.Altitude)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("climate pass: %w", err)
	}
	log.Debug("climate pass done", "elapsed", time.Since(t))

	// Wind reads a snapshot of the finished temperature field.
	t = time.Now()
	temps := make([]float64, n)
	for i := range cells {
		temps[i] = cells[i].Climate.Temperature
	}
	err = forEachChunk(ctx, n, cfg.Workers, func(lo, hi int) {
		var neighbors []climate.Neighbor
		for i := lo; i < hi; i++ {
			neighbors = neighbors[:0]
			for _, id := range g.At(i).Neighbors {
				j, ok := g.Index(id)
				if !ok {
					continue
				}
				neighbors = append(neighbors, climate.Neighbor{Lat: cells[j].Lat, Lng: cells[j].Lng, Temperature: temps[j]})
			}
			c := &cells[i]
			c.Climate.Wind = climate.ComputeWind(p, c.Lat, c.Lng, c.Terrain.Altitude, c.Climate.Temperature, neighbors)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("wind pass: %w", err)
	}
	log.Debug("wind pass done", "elapsed", time.Since(t))

	w := newWorld(cfg, g, cells)
	log.Info("world generated",
		"resolution", p.GridResolution,
		"cells", n,
		"annual", cfg.AnnualAverage,
		"fingerprint", fmt.Sprintf("%016x", w.Fingerprint()),
		"elapsed", time.Since(start))
	return w, nil
}
