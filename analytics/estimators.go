package analytics

import "math"

// MovingAverage returns the mean of the trailing window elements. A
// sequence shorter than the window degrades to the mean of whatever
// exists; an empty sequence yields 0.
func MovingAverage(seq []float64, window int) float64 {
	if len(seq) == 0 || window <= 0 {
		return 0
	}
	if len(seq) > window {
		seq = seq[len(seq)-window:]
	}
	sum := 0.0
	for _, v := range seq {
		sum += v
	}
	return sum / float64(len(seq))
}

// Trend is the two-point slope of a daily sequence: (last - first) / len.
// Deliberately not a least-squares fit; downstream values depend on this
// exact form.
func Trend(seq []float64) float64 {
	if len(seq) < 2 {
		return 0
	}
	return (seq[len(seq)-1] - seq[0]) / float64(len(seq))
}

// CoefficientOfVariation returns stddev/mean of the sequence as a
// percentage, used as a data-stability proxy. A zero or empty mean
// yields 0.
func CoefficientOfVariation(seq []float64) float64 {
	if len(seq) == 0 {
		return 0
	}
	mean := 0.0
	for _, v := range seq {
		mean += v
	}
	mean /= float64(len(seq))
	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, v := range seq {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(seq))

	return math.Sqrt(variance) / mean * 100
}
