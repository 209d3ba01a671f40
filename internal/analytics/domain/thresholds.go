package domain

import (
	"math"
	"sort"
)

// thresholdSampleMin is the minimum number of non-zero writing days
// required before percentile thresholds are considered stable.
const thresholdSampleMin = 10

// Percentile ranks used for the intensity cut points.
const (
	lowPercentile    = 33
	mediumPercentile = 66
	highPercentile   = 90
)

// IntensityThresholds are the word-count cut points that partition daily
// totals into four heatmap intensity levels.
type IntensityThresholds struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// DefaultIntensityThresholds mirror a conventional daily writing goal
// scale and are used when the history is too sparse for percentiles.
func DefaultIntensityThresholds() IntensityThresholds {
	return IntensityThresholds{Low: 250, Medium: 750, High: 1500}
}

// EstimateThresholds derives intensity thresholds from daily word
// totals. Zero totals are ignored; with fewer than 10 non-zero days the
// fixed defaults are returned instead of noisy percentiles. Thresholds
// may be equal on degenerate distributions but never invert.
func EstimateThresholds(dailyTotals []int) IntensityThresholds {
	nonZero := make([]int, 0, len(dailyTotals))
	for _, total := range dailyTotals {
		if total > 0 {
			nonZero = append(nonZero, total)
		}
	}

	if len(nonZero) < thresholdSampleMin {
		return DefaultIntensityThresholds()
	}

	sort.Ints(nonZero)

	thresholds := IntensityThresholds{
		Low:    nearestRank(nonZero, lowPercentile),
		Medium: nearestRank(nonZero, mediumPercentile),
		High:   nearestRank(nonZero, highPercentile),
	}
	if thresholds.Medium < thresholds.Low {
		thresholds.Medium = thresholds.Low
	}
	if thresholds.High < thresholds.Medium {
		thresholds.High = thresholds.Medium
	}
	return thresholds
}

// nearestRank picks the percentile value via ceil(p/100 * n) - 1
// indexing, clamped to the first element. Not interpolated.
func nearestRank(sorted []int, percentile int) int {
	idx := int(math.Ceil(float64(percentile)/100*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}

// Level buckets a daily word count into an intensity level 0-3:
// 0 for no writing, then increasing intensity against the cut points.
func (t IntensityThresholds) Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count < t.Low:
		return 1
	case count < t.Medium:
		return 2
	default:
		return 3
	}
}
