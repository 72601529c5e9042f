// Command worldgen generates a world from a preset and writes its
// statistics, cells or GeoJSON view.
//
//	worldgen -preset earth -resolution 4 -format geojson -out earth.geojson
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jengzang/worldsynth/internal/config"
	"github.com/jengzang/worldsynth/internal/middleware"
	"github.com/jengzang/worldsynth/internal/terrain"
	"github.com/jengzang/worldsynth/internal/worldgen"
)

type options struct {
	preset      string
	presetsFile string
	resolution  int
	seed        int64
	seedSet     bool
	annual      bool
	format      string
	heightMap   string
	out         string
	workers     int
	verbose     bool
	issueToken  string
	secret      string
}

func main() {
	o, err := parseOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, "worldgen:", err)
		os.Exit(1)
	}
}

func parseOptions(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("worldgen", flag.ContinueOnError)
	fs.StringVar(&o.preset, "preset", worldgen.DefaultPresetName, "preset name")
	fs.StringVar(&o.presetsFile, "presets", "", "TOML file with extra presets")
	fs.IntVar(&o.resolution, "resolution", -1, "grid resolution override (0-10)")
	fs.Int64Var(&o.seed, "seed", 0, "noise seed override (omit to keep the preset seed)")
	fs.BoolVar(&o.annual, "annual", false, "average climate over the orbit")
	fs.StringVar(&o.format, "format", "stats", "output: stats, json or geojson")
	fs.StringVar(&o.heightMap, "heightmap", "", "JSON height map file replacing noise")
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	fs.IntVar(&o.workers, "workers", runtime.NumCPU(), "worker goroutines per pass")
	fs.BoolVar(&o.verbose, "v", false, "log pass timings")
	fs.StringVar(&o.issueToken, "issue-token", "", "print an admin token for this subject and exit")
	fs.StringVar(&o.secret, "secret", os.Getenv("JWT_SECRET"), "JWT secret for -issue-token")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	return o, nil
}

func run(o options) error {
	if o.issueToken != "" {
		if o.secret == "" {
			return fmt.Errorf("-secret or JWT_SECRET is required")
		}
		token, err := middleware.IssueToken(o.secret, o.issueToken, 24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	}

	preset, err := findPreset(o.preset, o.presetsFile)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	cfg, err := o.config(preset)
	if err != nil {
		return err
	}
	cfg.Log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world, err := worldgen.Generate(ctx, cfg)
	if err != nil {
		return err
	}

	if o.out == "" {
		return write(os.Stdout, world, o.format)
	}
	return writeFile(o.out, world, o.format)
}

// config applies the command-line overrides to the preset.
func (o options) config(preset worldgen.Preset) (worldgen.Config, error) {
	cfg := preset.Config()
	cfg.Workers = o.workers
	cfg.AnnualAverage = o.annual
	if o.resolution >= 0 {
		cfg.Parameters.GridResolution = o.resolution
	}
	if o.seedSet {
		cfg.Noise.Seed = o.seed
	}
	if o.heightMap != "" {
		h, err := readHeightMap(o.heightMap)
		if err != nil {
			return worldgen.Config{}, err
		}
		cfg.HeightMap = h
	}
	return cfg, nil
}

// writeFile reports a failed close, since buffered data may only hit the
// disk there.
func writeFile(path string, world *worldgen.World, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f, world, format)
}

func findPreset(name, presetsFile string) (worldgen.Preset, error) {
	if presetsFile != "" {
		extra, err := config.LoadPresets(presetsFile)
		if err != nil {
			return worldgen.Preset{}, err
		}
		for _, p := range extra {
			if p.Name == name {
				return p, nil
			}
		}
	}
	p, ok := worldgen.LookupPreset(name)
	if !ok {
		return worldgen.Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

func readHeightMap(path string) (*terrain.HeightMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var h terrain.HeightMap
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("decode height map %s: %w", path, err)
	}
	return &h, nil
}

func write(w io.Writer, world *worldgen.World, format string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	switch format {
	case "stats":
		return enc.Encode(struct {
			Fingerprint string              `json:"fingerprint"`
			Statistics  worldgen.Statistics `json:"statistics"`
		}{fmt.Sprintf("%016x", world.Fingerprint()), world.Statistics()})
	case "json":
		return enc.Encode(world.Cells())
	case "geojson":
		return enc.Encode(world.FeatureCollection())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
