package worldgen

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// fingerprint hashes the fixed little-endian encoding of every record.
func fingerprint(cells []CellRecord) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 128)
	for i := range cells {
		c := &cells[i]
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c.ID))
		for _, f := range [...]float64{
			c.Lat, c.Lng,
			c.Terrain.Elevation, c.Terrain.Altitude,
			c.Climate.Temperature, c.Climate.Precipitation, c.Climate.Humidity,
			c.Climate.Speed, c.Climate.Direction,
			c.OceanDistanceKm,
		} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
		if c.IsOcean {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		buf = append(buf, string(c.Biome)...)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
