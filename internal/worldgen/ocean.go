package worldgen

import (
	"container/heap"

	"github.com/jengzang/worldsynth/internal/grid"
	"github.com/jengzang/worldsynth/internal/spatial"
)

// OceanDistanceCapKm is the distance reported for land with no ocean
// within reach, including every cell of a world without ocean.
const OceanDistanceCapKm = 3000.0

// oceanDistances computes the distance from every cell to its nearest ocean
// cell once the ocean mask is final. All ocean cells seed a best-first
// search over the adjacency graph; each land cell inherits the ocean source
// of the neighbour that reaches it first and measures the great-circle
// distance to that source. The result does not depend on cell order or on
// how the first pass was scheduled.
func oceanDistances(g *grid.Grid, cells []CellRecord, radius float64) {
	seeds := make([]int, 0, len(cells)/4)
	for i := range cells {
		if cells[i].IsOcean {
			seeds = append(seeds, i)
		}
	}
	propagateOcean(g, cells, radius, seeds)
}

// propagateOcean runs the search from seeds, the indices of every ocean
// cell in any order.
func propagateOcean(g *grid.Grid, cells []CellRecord, radius float64, seeds []int) {
	n := len(cells)
	dist := make([]float64, n)
	source := make([]int, n)
	done := make([]bool, n)

	for i := range cells {
		dist[i] = OceanDistanceCapKm
		source[i] = -1
	}
	pq := make(oceanQueue, 0, len(seeds))
	for _, i := range seeds {
		dist[i] = 0
		source[i] = i
		pq = append(pq, oceanItem{cell: i, dist: 0})
	}
	heap.Init(&pq)

	for pq.Len() > 0 {
		it := heap.Pop(&pq).(oceanItem)
		if done[it.cell] {
			continue
		}
		done[it.cell] = true

		s := cells[source[it.cell]]
		for _, nb := range g.At(it.cell).Neighbors {
			j, ok := g.Index(nb)
			if !ok || done[j] || cells[j].IsOcean {
				continue
			}
			d := spatial.GreatCircleKm(cells[j].Lat, cells[j].Lng, s.Lat, s.Lng, radius)
			if d > OceanDistanceCapKm {
				continue
			}
			if d < dist[j] || (d == dist[j] && source[j] >= 0 && source[it.cell] < source[j]) {
				dist[j] = d
				source[j] = source[it.cell]
				heap.Push(&pq, oceanItem{cell: j, dist: d})
			}
		}
	}

	for i := range cells {
		cells[i].OceanDistanceKm = dist[i]
	}
}

type oceanItem struct {
	cell int
	dist float64
}

// oceanQueue is a min-heap on distance with the cell index breaking ties.
type oceanQueue []oceanItem

func (q oceanQueue) Len() int { return len(q) }

func (q oceanQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].cell < q[j].cell
}

func (q oceanQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *oceanQueue) Push(x any) { *q = append(*q, x.(oceanItem)) }

func (q *oceanQueue) Pop() any {
	old := *q
	it := old[len(old)-1]
	*q = old[:len(old)-1]
	return it
}
