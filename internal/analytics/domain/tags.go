package domain

import (
	"sort"

	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

// TagStat aggregates the entries carrying one tag.
type TagStat struct {
	Name         string   `json:"name"`
	EntryCount   int      `json:"entryCount"`
	TotalWords   int      `json:"totalWords"`
	AverageWords float64  `json:"averageWords"`
	AverageMood  *float64 `json:"averageMood"`
}

// TagAnalytics summarizes tag usage across the window.
type TagAnalytics struct {
	Tags      []TagStat `json:"tags"`
	TotalTags int       `json:"totalTags"`
}

// AggregateTags rolls entries up per tag, ordered by entry count
// descending with name as the tie-breaker so output is deterministic.
func AggregateTags(entries []journal.Entry) TagAnalytics {
	type accumulator struct {
		entryCount int
		totalWords int
		moodSum    int
		moodCount  int
	}

	buckets := make(map[string]*accumulator)
	for _, entry := range entries {
		for _, tag := range entry.Tags {
			acc := buckets[tag]
			if acc == nil {
				acc = &accumulator{}
				buckets[tag] = acc
			}
			acc.entryCount++
			acc.totalWords += entry.WordCount
			if entry.Mood != nil {
				acc.moodSum += *entry.Mood
				acc.moodCount++
			}
		}
	}

	stats := make([]TagStat, 0, len(buckets))
	for name, acc := range buckets {
		stat := TagStat{
			Name:         name,
			EntryCount:   acc.entryCount,
			TotalWords:   acc.totalWords,
			AverageWords: float64(acc.totalWords) / float64(acc.entryCount),
		}
		if acc.moodCount > 0 {
			avg := float64(acc.moodSum) / float64(acc.moodCount)
			stat.AverageMood = &avg
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].EntryCount != stats[j].EntryCount {
			return stats[i].EntryCount > stats[j].EntryCount
		}
		return stats[i].Name < stats[j].Name
	})

	return TagAnalytics{Tags: stats, TotalTags: len(stats)}
}
