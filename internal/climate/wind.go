package climate

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/spatial"
	"github.com/jengzang/worldsynth/internal/stats"
)

// Wind search and scaling.
const (
	WindSearchRadiusKm = 1500.0
	MaxWindNeighbors   = 6
	MinWindSpeed       = 1.0
	MaxWindSpeed       = 50.0

	gradientGain       = 0.5  // m/s per °C of averaged neighbour difference
	elevationWindBoost = 0.15 // per km of altitude
)

// Wind is a surface wind. Direction is where the wind blows toward, in
// degrees clockwise from north.
type Wind struct {
	Speed     float64 `json:"wind_speed"`
	Direction float64 `json:"wind_direction"`
}

// DefaultWind is used when a cell has no neighbours within
// WindSearchRadiusKm or the gradient is not finite.
var DefaultWind = Wind{Speed: 5, Direction: 270}

// Neighbor is the first-pass state of an adjacent cell.
type Neighbor struct {
	Lat         float64
	Lng         float64
	Temperature float64
}

// Vectors are (north, east) in m/s.
func prevailingWind(lat float64) mgl64.Vec2 {
	hemisphere := 1.0
	if lat < 0 {
		hemisphere = -1
	}
	switch a := math.Abs(lat); {
	case a < 30: // trade winds blow west and toward the equator
		return mgl64.Vec2{-1.5 * hemisphere, -5}
	case a < 60: // westerlies blow east and poleward
		return mgl64.Vec2{1.5 * hemisphere, 7}
	default: // polar easterlies
		return mgl64.Vec2{-1 * hemisphere, -3}
	}
}

// CoriolisParameter returns 2·Ω·sin(lat) with Ω in radians per hour.
func CoriolisParameter(p planet.Parameters, lat float64) float64 {
	omega := 2 * math.Pi / p.RotationPeriod
	return 2 * omega * math.Sin(lat*math.Pi/180)
}

type windCandidate struct {
	dist    float64
	bearing float64
	dT      float64
}

// ComputeWind derives the wind of a cell from the temperature of its
// neighbours. Air is pushed toward warmer neighbours (lower pressure),
// deflected by rotation, and added to the latitude band's prevailing wind.
func ComputeWind(p planet.Parameters, lat, lng, altitude, temperature float64, neighbors []Neighbor) Wind {
	candidates := make([]windCandidate, 0, len(neighbors))
	for _, n := range neighbors {
		d := spatial.GreatCircleKm(lat, lng, n.Lat, n.Lng, p.Radius)
		if d > WindSearchRadiusKm {
			continue
		}
		candidates = append(candidates, windCandidate{
			dist:    d,
			bearing: spatial.Bearing(lat, lng, n.Lat, n.Lng) * math.Pi / 180,
			dT:      n.Temperature - temperature,
		})
	}
	if len(candidates) == 0 {
		return DefaultWind
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})
	if len(candidates) > MaxWindNeighbors {
		candidates = candidates[:MaxWindNeighbors]
	}

	var gradient mgl64.Vec2
	for _, c := range candidates {
		gradient = gradient.Add(mgl64.Vec2{c.dT * math.Cos(c.bearing), c.dT * math.Sin(c.bearing)})
	}
	v := gradient.Mul(gradientGain / float64(len(candidates)))

	if !p.TidallyLocked() {
		// Deflect to the right in the northern hemisphere, left in the southern.
		f := CoriolisParameter(p, lat)
		v = mgl64.Vec2{v[0] - f*v[1], v[1] + f*v[0]}
	}

	v = v.Add(prevailingWind(lat))

	speed := v.Len() * (1 + elevationWindBoost*math.Max(0, altitude)/1000)
	direction := math.Atan2(v[1], v[0]) * 180 / math.Pi
	if math.IsNaN(speed) || math.IsInf(speed, 0) || math.IsNaN(direction) {
		return DefaultWind
	}

	return Wind{
		Speed:     stats.Clamp(speed, MinWindSpeed, MaxWindSpeed),
		Direction: spatial.NormalizeDegrees(direction),
	}
}
