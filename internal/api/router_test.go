package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/worldsynth/internal/config"
	"github.com/jengzang/worldsynth/internal/database"
	"github.com/jengzang/worldsynth/internal/grid"
	"github.com/jengzang/worldsynth/internal/middleware"
)

const testSecret = "router-test-secret"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "api.db")})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	cfg.JWTSecret = testSecret
	cfg.MaxResolution = 3
	cfg.Workers = 2
	cfg.RateLimit = 1000

	r, err := SetupRouter(cfg, db)
	if err != nil {
		t.Fatalf("SetupRouter: %v", err)
	}
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	if dst != nil {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			t.Fatalf("decode data: %v (%s)", err, env.Data)
		}
	}
}

func TestHealthAndBiomes(t *testing.T) {
	r := newRouter(t)

	if w := do(t, r, http.MethodGet, "/health", "", ""); w.Code != http.StatusOK {
		t.Fatalf("/health = %d", w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/v1/biomes", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("/biomes = %d", w.Code)
	}
	var legend []struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	decode(t, w, &legend)
	if len(legend) != 12 || legend[0].Color == "" {
		t.Fatalf("unexpected legend %+v", legend)
	}

	w = do(t, r, http.MethodGet, "/api/v1/biomes/Seasonal-Forest", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("/biomes/Seasonal-Forest = %d", w.Code)
	}
	var one struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	decode(t, w, &one)
	if one.Name != "seasonal_forest" || one.Color == "" {
		t.Fatalf("unexpected biome %+v", one)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/biomes/swamp", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("/biomes/swamp = %d, want 404", w.Code)
	}
}

func TestPresetRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/presets", "", "")
	var list struct {
		Count int `json:"count"`
	}
	decode(t, w, &list)
	if w.Code != http.StatusOK || list.Count != 5 {
		t.Fatalf("list = %d, count %d", w.Code, list.Count)
	}

	if w := do(t, r, http.MethodGet, "/api/v1/presets/mars", "", ""); w.Code != http.StatusOK {
		t.Fatalf("get mars = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/presets/pluto", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("get pluto = %d", w.Code)
	}

	body := `{
		"name": "tiny",
		"description": "small test world",
		"parameters": {"radius": 1000000, "solar_constant": 1361, "orbital_tilt": 10,
			"rotation_period": 24, "orbital_period": 100, "sea_level": 0.4,
			"atmosphere_density": 1, "grid_resolution": 1, "time_of_day": 12, "day_of_year": 0},
		"noise": {"seed": 3, "octaves": 4, "persistence": 0.5, "lacunarity": 2,
			"frequency": 1.5, "redistribution_power": 1, "basis": "opensimplex"}
	}`
	if w := do(t, r, http.MethodPost, "/api/v1/presets", body, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("create without token = %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/presets", body, "bogus"); w.Code != http.StatusUnauthorized {
		t.Fatalf("create with bad token = %d", w.Code)
	}

	token, err := middleware.IssueToken(testSecret, "admin", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/presets", body, token); w.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodPost, "/api/v1/presets", `{"name": "broken", "parameters": {"radius": -1}}`, token); w.Code != http.StatusBadRequest {
		t.Fatalf("create invalid = %d", w.Code)
	}

	if w := do(t, r, http.MethodDelete, "/api/v1/presets/earth", "", token); w.Code != http.StatusConflict {
		t.Fatalf("delete built-in = %d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/api/v1/presets/tiny", "", token); w.Code != http.StatusNoContent {
		t.Fatalf("delete = %d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/api/v1/presets/tiny", "", token); w.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d", w.Code)
	}
}

func TestWorldRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/worlds", `{"parameters": {"grid_resolution": 2}, "include_cells": true}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("generate = %d: %s", w.Code, w.Body.String())
	}
	runID := w.Header().Get("X-Run-ID")
	if runID == "" {
		t.Fatal("missing X-Run-ID")
	}
	var world struct {
		RunID      string `json:"run_id"`
		Statistics struct {
			TotalCells int `json:"total_cells"`
		} `json:"statistics"`
		Cells []struct {
			ID string `json:"id"`
		} `json:"cells"`
	}
	decode(t, w, &world)
	if world.RunID != runID || world.Statistics.TotalCells != grid.CellCount(2) || len(world.Cells) != grid.CellCount(2) {
		t.Fatalf("unexpected world: run %s, %d cells", world.RunID, len(world.Cells))
	}

	w = do(t, r, http.MethodPost, "/api/v1/worlds", `{"parameters": {"grid_resolution": 1}, "format": "geojson"}`, "")
	var fc struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil || fc.Type != "FeatureCollection" || len(fc.Features) != grid.CellCount(1) {
		t.Fatalf("geojson = %d %v %+v", w.Code, err, fc.Type)
	}

	// The earth preset defaults to a resolution above this server's limit.
	if w := do(t, r, http.MethodPost, "/api/v1/worlds", "", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("generate above limit = %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/worlds", `{"parameters": {"grid_resolution": 1}, "format": "png"}`, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown format = %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/worlds", `{"preset": "pluto"}`, ""); w.Code != http.StatusNotFound {
		t.Fatalf("unknown preset = %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/worlds", `{bad json`, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("bad json = %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/v1/worlds/cell", `{"parameters": {"grid_resolution": 2}, "lat": 48.8, "lng": 2.3}`, "")
	var cell struct {
		ID string `json:"id"`
	}
	decode(t, w, &cell)
	if w.Code != http.StatusOK || cell.ID == "" {
		t.Fatalf("cell = %d %+v", w.Code, cell)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/worlds/cell", `{"parameters": {"grid_resolution": 2}, "id": "`+cell.ID+`"}`, ""); w.Code != http.StatusOK {
		t.Fatalf("cell by id = %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/api/v1/worlds/cell", `{"parameters": {"grid_resolution": 1}, "id": "`+cell.ID+`"}`, ""); w.Code != http.StatusNotFound {
		t.Fatalf("cell from another level = %d", w.Code)
	}

	if w := do(t, r, http.MethodGet, "/api/v1/runs/"+runID, "", ""); w.Code != http.StatusOK {
		t.Fatalf("get run = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/v1/runs/unknown", "", ""); w.Code != http.StatusNotFound {
		t.Fatalf("get unknown run = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/v1/runs?limit=50", "", "")
	var runs struct {
		Count int `json:"count"`
	}
	decode(t, w, &runs)
	if runs.Count < 4 {
		t.Fatalf("runs count = %d", runs.Count)
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "rl.db")})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := config.Default()
	cfg.RateLimit = 2
	r, err := SetupRouter(cfg, db)
	if err != nil {
		t.Fatal(err)
	}

	var last int
	for i := 0; i < 3; i++ {
		last = do(t, r, http.MethodGet, "/api/v1/biomes", "", "").Code
	}
	if last != http.StatusTooManyRequests {
		t.Fatalf("third request = %d", last)
	}
	if w := do(t, r, http.MethodGet, "/health", "", ""); w.Code != http.StatusOK {
		t.Fatalf("/health should not be rate limited, got %d", w.Code)
	}
}
