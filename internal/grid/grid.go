// Package grid partitions the sphere into S2 cells at a fixed level and
// answers adjacency and point location queries over them.
package grid

import (
	"fmt"
	"slices"

	"github.com/golang/geo/s2"

	"github.com/jengzang/worldsynth/internal/planet"
	"github.com/jengzang/worldsynth/internal/spatial"
	"github.com/jengzang/worldsynth/internal/stats"
)

// CellID identifies a cell. Callers should treat it as an opaque key.
type CellID uint64

// String renders the id as a compact token, the form used at API boundaries.
func (id CellID) String() string {
	return s2.CellID(id).ToToken()
}

// ParseCellID parses a token produced by CellID.String.
func ParseCellID(token string) (CellID, error) {
	ci := s2.CellIDFromToken(token)
	if !ci.IsValid() {
		return 0, fmt.Errorf("invalid cell id %q", token)
	}
	return CellID(ci), nil
}

// MarshalText encodes the id as its token.
func (id CellID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText decodes a token.
func (id *CellID) UnmarshalText(text []byte) error {
	v, err := ParseCellID(string(text))
	if err != nil {
		return err
	}
	*id = v
	return nil
}

// Cell is one patch of the surface.
type Cell struct {
	ID        CellID
	Lat       float64 // degrees, [-90, 90]
	Lng       float64 // degrees, [-180, 180)
	Neighbors []CellID
}

// Grid is the full set of cells at one level. It is immutable after Build.
type Grid struct {
	level int
	cells []Cell
	index map[CellID]int
}

// CellCount returns the number of cells Build produces for a resolution.
func CellCount(resolution int) int {
	return 6 << (2 * resolution)
}

// Build enumerates every cell at the given resolution, in Hilbert order per
// cube face, and links each cell to the cells sharing an edge or a vertex.
func Build(resolution int) (*Grid, error) {
	if resolution < 0 || resolution > planet.MaxResolution {
		return nil, planet.Errorf("grid_resolution", "must be within [0, %d], got %d", planet.MaxResolution, resolution)
	}

	n := CellCount(resolution)
	g := &Grid{
		level: resolution,
		cells: make([]Cell, 0, n),
		index: make(map[CellID]int, n),
	}

	for face := 0; face < 6; face++ {
		f := s2.CellIDFromFace(face)
		end := f.ChildEndAtLevel(resolution)
		for ci := f.ChildBeginAtLevel(resolution); ci != end; ci = ci.Next() {
			ll := ci.LatLng()
			id := CellID(ci)
			g.index[id] = len(g.cells)
			g.cells = append(g.cells, Cell{
				ID:        id,
				Lat:       ll.Lat.Degrees(),
				Lng:       spatial.NormalizeLng(ll.Lng.Degrees()),
				Neighbors: neighborsOf(ci, resolution),
			})
		}
	}

	// Vertex neighbours at cube corners are not always reported in both
	// directions; make adjacency symmetric.
	for i := range g.cells {
		for _, nb := range g.cells[i].Neighbors {
			j := g.index[nb]
			if !slices.Contains(g.cells[j].Neighbors, g.cells[i].ID) {
				g.cells[j].Neighbors = append(g.cells[j].Neighbors, g.cells[i].ID)
			}
		}
	}

	return g, nil
}

func neighborsOf(ci s2.CellID, level int) []CellID {
	all := ci.AllNeighbors(level)
	out := make([]CellID, 0, len(all))
	for _, nb := range all {
		id := CellID(nb)
		if nb == ci || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Level returns the resolution the grid was built at.
func (g *Grid) Level() int {
	return g.level
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cells returns the cells in build order. The slice must not be modified.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// At returns the i-th cell in build order.
func (g *Grid) At(i int) Cell {
	return g.cells[i]
}

// Index returns the build-order position of id.
func (g *Grid) Index(id CellID) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Lookup returns the cell with the given id.
func (g *Grid) Lookup(id CellID) (Cell, bool) {
	i, ok := g.index[id]
	if !ok {
		return Cell{}, false
	}
	return g.cells[i], true
}

// Locate returns the id of the cell containing (lat, lng). Latitude is clamped
// to [-90, 90] and longitude wrapped, so every input maps to a built cell.
func (g *Grid) Locate(lat, lng float64) CellID {
	lat = stats.Clamp(lat, -90, 90)
	lng = spatial.NormalizeLng(lng)
	ci := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng)).Parent(g.level)
	return CellID(ci)
}
