package stats

import "math"

// Summary - Describes how records are distributed over bins
//   - Records is the total number of records over all bins
//   - EmptyBins is the number of bins holding no records
//   - MaxBinLength is the length of the longest bin
//   - Mean is the average bin length
//   - StdDev is the population standard deviation of bin lengths
type Summary struct {
	Records      int64
	EmptyBins    int64
	MaxBinLength int64
	Mean         float64
	StdDev       float64
}

// StdDev - Returns the population standard deviation of the given bin lengths, that is the divisor is the number
// of bins and not the number of bins - 1. An empty distribution gives 0.
func StdDev(lengths []int64) float64 {
	return Summarize(lengths).StdDev
}

// Summarize - Walks the bin lengths and returns a Summary
func Summarize(lengths []int64) (summary Summary) {
	n := len(lengths)
	if n == 0 {
		return
	}

	for _, l := range lengths {
		summary.Records += l
		if l == 0 {
			summary.EmptyBins++
		}
		if l > summary.MaxBinLength {
			summary.MaxBinLength = l
		}
	}

	summary.Mean = float64(summary.Records) / float64(n)

	var sq float64
	for _, l := range lengths {
		d := float64(l) - summary.Mean
		sq += d * d
	}
	summary.StdDev = math.Sqrt(sq / float64(n))

	return
}
