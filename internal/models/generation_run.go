package models

// GenerationRun 一次世界生成的记录
type GenerationRun struct {
	ID              string  `json:"id" db:"id"` // UUID
	Preset          string  `json:"preset" db:"preset"`
	Resolution      int     `json:"resolution" db:"resolution"`
	Seed            int64   `json:"seed" db:"seed"`
	Source          string  `json:"source" db:"source"` // noise, heightmap
	AnnualAverage   bool    `json:"annual_average" db:"annual_average"`
	CellCount       int     `json:"cell_count" db:"cell_count"`
	LandFraction    float64 `json:"land_fraction" db:"land_fraction"`
	MeanTemperature float64 `json:"mean_temperature" db:"mean_temperature"`
	Fingerprint     string  `json:"fingerprint,omitempty" db:"fingerprint"`
	DurationMS      int64   `json:"duration_ms" db:"duration_ms"`
	Status          string  `json:"status" db:"status"`
	ErrorMessage    string  `json:"error_message,omitempty" db:"error_message"`
	CreatedAt       int64   `json:"created_at" db:"created_at"` // Unix timestamp
}

// RunStatus constants
const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
	RunStatusCancelled = "cancelled"
)
