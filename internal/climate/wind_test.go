package climate

import (
	"math"
	"testing"
)

func TestWindWithoutNeighbors(t *testing.T) {
	p := earth()
	if w := ComputeWind(p, 10, 10, 0, 20, nil); w != DefaultWind {
		t.Fatalf("wind without neighbors = %+v, want %+v", w, DefaultWind)
	}

	far := []Neighbor{{Lat: -40, Lng: 100, Temperature: 30}}
	if w := ComputeWind(p, 10, 10, 0, 20, far); w != DefaultWind {
		t.Fatalf("wind with only distant neighbors = %+v, want default", w)
	}
}

func TestWindBlowsTowardWarmth(t *testing.T) {
	p := earth()
	p.RotationPeriod = 5000 // locked: no Coriolis

	neighbors := []Neighbor{{Lat: 0, Lng: 1, Temperature: 60}}
	w := ComputeWind(p, 0, 0, 0, 20, neighbors)
	if w.Direction < 45 || w.Direction > 135 {
		t.Fatalf("wind toward a hot eastern neighbor blows to %f°", w.Direction)
	}
}

func TestCoriolisDeflectsRight(t *testing.T) {
	neighbors := []Neighbor{{Lat: 46, Lng: 0, Temperature: 40}}

	locked := earth()
	locked.RotationPeriod = 1000
	rotating := earth()

	wl := ComputeWind(locked, 45, 0, 0, 20, neighbors)
	wr := ComputeWind(rotating, 45, 0, 0, 20, neighbors)
	if wr.Direction <= wl.Direction {
		t.Fatalf("northern hemisphere deflection: rotating %f° should be right of locked %f°", wr.Direction, wl.Direction)
	}
}

func TestWindSpeedClamped(t *testing.T) {
	p := earth()
	hot := []Neighbor{{Lat: 10, Lng: 11, Temperature: 1e6}}
	if w := ComputeWind(p, 10, 10, 0, 0, hot); w.Speed != MaxWindSpeed {
		t.Fatalf("speed = %f, want clamp to %f", w.Speed, MaxWindSpeed)
	}

	for lat := -85.0; lat <= 85; lat += 5 {
		ring := []Neighbor{
			{Lat: lat + 1, Lng: 0, Temperature: 10},
			{Lat: lat - 1, Lng: 0, Temperature: 10},
			{Lat: lat, Lng: 1, Temperature: 10},
			{Lat: lat, Lng: -1, Temperature: 10},
		}
		w := ComputeWind(p, lat, 0, 3000, 10, ring)
		if w.Speed < MinWindSpeed || w.Speed > MaxWindSpeed {
			t.Fatalf("lat %f: speed %f out of range", lat, w.Speed)
		}
		if w.Direction < 0 || w.Direction >= 360 {
			t.Fatalf("lat %f: direction %f out of range", lat, w.Direction)
		}
	}
}

func TestWindNonFiniteFallsBack(t *testing.T) {
	p := earth()
	bad := []Neighbor{{Lat: 10, Lng: 11, Temperature: math.NaN()}}
	if w := ComputeWind(p, 10, 10, 0, 0, bad); w != DefaultWind {
		t.Fatalf("NaN neighbour temperature gave %+v, want default", w)
	}
}

func TestWindKeepsNearestNeighbors(t *testing.T) {
	p := earth()
	p.RotationPeriod = 5000

	// Six cold neighbours nearby, one scorching neighbour just inside the
	// radius. Only the nearest MaxWindNeighbors count.
	var ns []Neighbor
	for i := 0; i < MaxWindNeighbors; i++ {
		ns = append(ns, Neighbor{Lat: 0.5, Lng: float64(i) * 0.01, Temperature: 20})
	}
	ns = append(ns, Neighbor{Lat: 0, Lng: 12, Temperature: 1e6})

	w := ComputeWind(p, 0, 0, 0, 20, ns)
	if w.Speed == MaxWindSpeed {
		t.Fatal("distant neighbour beyond the nearest six influenced the wind")
	}
}
