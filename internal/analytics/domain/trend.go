package domain

// MoodTrend labels how recent mood averages compare to prior ones.
type MoodTrend string

const (
	TrendImproving MoodTrend = "improving"
	TrendDeclining MoodTrend = "declining"
	TrendStable    MoodTrend = "stable"
)

// TrendOptions tune the trend classifier. The sensitivity is a product
// tuning value, configurable rather than hard-coded.
type TrendOptions struct {
	// Sensitivity is the minimum mean difference on the 1-5 scale
	// before a trend is called improving or declining.
	Sensitivity float64
}

// DefaultTrendOptions returns the product-default sensitivity of 0.3.
func DefaultTrendOptions() TrendOptions {
	return TrendOptions{Sensitivity: 0.3}
}

// ClassifyMoodTrend splits the rated days of the window into two halves
// by date and compares their mean mood. It returns nil with fewer than
// 2 rated days rather than a misleading "stable". Days must be sorted
// by date ascending.
func ClassifyMoodTrend(days []DayAggregate, opts TrendOptions) *MoodTrend {
	rated := make([]float64, 0, len(days))
	for _, day := range days {
		if day.AverageMood != nil {
			rated = append(rated, *day.AverageMood)
		}
	}

	if len(rated) < 2 {
		return nil
	}

	half := len(rated) / 2
	firstMean := mean(rated[:half])
	secondMean := mean(rated[half:])

	trend := TrendStable
	switch diff := secondMean - firstMean; {
	case diff > opts.Sensitivity:
		trend = TrendImproving
	case diff < -opts.Sensitivity:
		trend = TrendDeclining
	}
	return &trend
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
