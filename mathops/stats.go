package mathops

import (
	"errors"
	"math"
	"sort"
)

// Stats holds descriptive statistics for a sample. Mode is nil when no value
// occurs strictly more often than every other; that is an absent result, not
// an error. Variance and StdDev are the sample (n-1) forms and are 0 for a
// single value.
type Stats struct {
	Mean     float64  `json:"mean"`
	Median   float64  `json:"median"`
	Mode     *float64 `json:"mode"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Range    float64  `json:"range"`
	Variance float64  `json:"variance"`
	StdDev   float64  `json:"std_dev"`
}

// Statistics computes descriptive statistics for numbers, which must be
// non-empty.
func Statistics(numbers []float64) (*Stats, error) {
	if len(numbers) == 0 {
		return nil, errors.New("cannot calculate statistics on an empty list")
	}
	s := &Stats{Min: numbers[0], Max: numbers[0]}
	var sum float64
	for _, v := range numbers {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(numbers))
	s.Range = s.Max - s.Min
	s.Median = median(numbers)
	s.Mode = mode(numbers)
	if len(numbers) > 1 {
		var sq float64
		for _, v := range numbers {
			d := v - s.Mean
			sq += d * d
		}
		s.Variance = sq / float64(len(numbers)-1)
		s.StdDev = math.Sqrt(s.Variance)
	}
	return s, nil
}

func median(numbers []float64) float64 {
	sorted := append([]float64(nil), numbers...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// mode returns the unique most frequent value, or nil when the maximum
// frequency is shared.
func mode(numbers []float64) *float64 {
	counts := make(map[float64]int, len(numbers))
	for _, v := range numbers {
		counts[v]++
	}
	var best float64
	bestN, ties := 0, 0
	for v, n := range counts {
		switch {
		case n > bestN:
			best, bestN, ties = v, n, 1
		case n == bestN:
			ties++
		}
	}
	if ties != 1 {
		return nil
	}
	return &best
}
