package spatial

import (
	"math"
)

// CircularMean calculates the mean of circular data (angles in radians)
// weights: optional weights for each angle (can be nil for equal weights)
// Returns mean angle in radians
func CircularMean(angles []float64, weights []float64) float64 {
	sumSin, sumCos, _ := resultant(angles, weights)
	if sumSin == 0 && sumCos == 0 {
		return 0
	}
	return math.Atan2(sumSin, sumCos)
}

// CircularMeanDegrees calculates the mean of circular data in degrees
// Returns a value in [0, 360)
func CircularMeanDegrees(angles []float64, weights []float64) float64 {
	radians := make([]float64, len(angles))
	for i, angle := range angles {
		radians[i] = angle * math.Pi / 180
	}
	return NormalizeDegrees(CircularMean(radians, weights) * 180 / math.Pi)
}

// MeanResultantLength calculates the mean resultant length (R) of angles in degrees
// R ranges from 0 (uniform distribution) to 1 (all angles identical)
func MeanResultantLength(anglesDeg []float64, weights []float64) float64 {
	radians := make([]float64, len(anglesDeg))
	for i, angle := range anglesDeg {
		radians[i] = angle * math.Pi / 180
	}
	sumSin, sumCos, sumWeights := resultant(radians, weights)
	if sumWeights == 0 {
		return 0
	}
	return math.Sqrt(sumSin*sumSin+sumCos*sumCos) / sumWeights
}

func resultant(angles, weights []float64) (sumSin, sumCos, sumWeights float64) {
	for i, angle := range angles {
		w := 1.0
		if i < len(weights) {
			w = weights[i]
		}
		sumSin += w * math.Sin(angle)
		sumCos += w * math.Cos(angle)
		sumWeights += w
	}
	return sumSin, sumCos, sumWeights
}
