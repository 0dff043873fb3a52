package analysis

import "math"

// ParamError reports an invalid caller-supplied parameter, such as a
// non-positive n in a top-N query.
type ParamError struct{ Msg string }

func (e *ParamError) Error() string { return e.Msg }

// mean calculates the arithmetic mean of values.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd calculates the sample standard deviation (N-1 denominator).
// Fewer than two values have no defined spread and yield zero.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		diff := v - m
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
