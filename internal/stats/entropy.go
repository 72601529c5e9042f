package stats

import (
	"math"
)

// ShannonEntropy calculates the Shannon entropy of a distribution given as
// frequency counts. Returns entropy in bits (log base 2)
func ShannonEntropy(counts []float64) float64 {
	sum := Sum(counts)
	if sum == 0 {
		return 0
	}

	var entropy float64
	for _, v := range counts {
		if v > 0 {
			p := v / sum
			entropy -= p * math.Log2(p)
		}
	}

	return entropy
}

// NormalizedEntropy divides the Shannon entropy by log2(categories), giving
// 0 for a single populated category and 1 for a uniform spread.
// categories may exceed len(counts) when some categories were never observed.
func NormalizedEntropy(counts []float64, categories int) float64 {
	if categories <= 1 {
		return 0
	}
	return ShannonEntropy(counts) / math.Log2(float64(categories))
}
