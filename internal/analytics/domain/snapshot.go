package domain

import (
	"strconv"
	"time"

	journal "github.com/felixgeelhaar/quill/internal/journal/domain"
)

// DefaultDailyGoal is the default daily word-count goal.
const DefaultDailyGoal = 750

// MoodTimelinePoint is one day of the mood timeline.
type MoodTimelinePoint struct {
	Date    LocalDate `json:"date"`
	Average *float64  `json:"average"`
	Count   int       `json:"count"`
}

// MoodAnalytics summarizes mood ratings across the window.
type MoodAnalytics struct {
	Average           *float64            `json:"average"`
	Distribution      map[string]int      `json:"distribution"`
	Timeline          []MoodTimelinePoint `json:"timeline"`
	TotalRatedEntries int                 `json:"totalRatedEntries"`
	Trend             *MoodTrend          `json:"trend"`
}

// WordTimelinePoint is one day of the word-count timeline.
type WordTimelinePoint struct {
	Date       LocalDate `json:"date"`
	WordCount  int       `json:"wordCount"`
	EntryCount int       `json:"entryCount"`
}

// WordCountAnalytics summarizes writing volume across the window.
type WordCountAnalytics struct {
	Total               int                 `json:"total"`
	AveragePerEntry     float64             `json:"averagePerEntry"`
	AveragePerDay       float64             `json:"averagePerDay"`
	Timeline            []WordTimelinePoint `json:"timeline"`
	TotalEntries        int                 `json:"totalEntries"`
	GoalAchievementRate float64             `json:"goalAchievementRate"`
	BestDay             *DayRecord          `json:"bestDay"`
}

// WritingPatterns describe when and how consistently the user writes.
type WritingPatterns struct {
	ConsistencyRate float64         `json:"consistencyRate"`
	TimeOfDay       TimeOfDayCounts `json:"timeOfDay"`
	DayOfWeek       DayOfWeekCounts `json:"dayOfWeek"`
	StreakHistory   []Streak        `json:"streakHistory"`
}

// MilestoneSummary wraps the evaluated milestone ladder.
type MilestoneSummary struct {
	Milestones []Milestone `json:"milestones"`
}

// GoalStreakSummary reports consecutive days meeting the word goal.
type GoalStreakSummary struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
	Goal    int `json:"goal"`
}

// HeatmapDay is one day of the heatmap series with its intensity level.
type HeatmapDay struct {
	Date  LocalDate `json:"date"`
	Level int       `json:"level"`
}

// HeatmapAnalytics carries the intensity thresholds together with the
// per-day levels they produce.
type HeatmapAnalytics struct {
	Thresholds IntensityThresholds `json:"thresholds"`
	Days       []HeatmapDay        `json:"days"`
}

// StatisticsSnapshot is the top-level immutable result for one
// (entries, period) pair. It is constructed fresh on each query, never
// mutated, and discarded after serialization.
type StatisticsSnapshot struct {
	Period             Period             `json:"period"`
	StartDate          LocalDate          `json:"startDate"`
	EndDate            LocalDate          `json:"endDate"`
	MoodAnalytics      MoodAnalytics      `json:"moodAnalytics"`
	WordCountAnalytics WordCountAnalytics `json:"wordCountAnalytics"`
	WritingPatterns    WritingPatterns    `json:"writingPatterns"`
	TagAnalytics       TagAnalytics       `json:"tagAnalytics"`
	Milestones         MilestoneSummary   `json:"milestones"`
	GoalStreak         GoalStreakSummary  `json:"goalStreak"`
	PersonalRecords    PersonalRecords    `json:"personalRecords"`
	Heatmap            HeatmapAnalytics   `json:"heatmap"`
}

// SnapshotParams parameterize one engine invocation. Zero values fall
// back to the product defaults; Now is explicit so the computation stays
// referentially transparent.
type SnapshotParams struct {
	Period     Period
	Location   *time.Location
	Goal       int
	Now        time.Time
	Ladders    MilestoneLadders
	Trend      TrendOptions
	Boundaries TimeOfDayBoundaries
	TopStreaks int
}

func (p SnapshotParams) withDefaults() SnapshotParams {
	if !p.Period.IsValid() {
		p.Period = Period30d
	}
	if p.Location == nil {
		p.Location = time.UTC
	}
	if p.Goal <= 0 {
		p.Goal = DefaultDailyGoal
	}
	if p.Now.IsZero() {
		p.Now = time.Now()
	}
	if len(p.Ladders.Entries) == 0 && len(p.Ladders.Words) == 0 && len(p.Ladders.Streak) == 0 {
		p.Ladders = DefaultMilestoneLadders()
	}
	if p.Trend.Sensitivity == 0 {
		p.Trend = DefaultTrendOptions()
	}
	if p.Boundaries == (TimeOfDayBoundaries{}) {
		p.Boundaries = DefaultTimeOfDayBoundaries()
	}
	if p.TopStreaks <= 0 {
		p.TopStreaks = DefaultStreakHistorySize
	}
	return p
}

// BuildSnapshot runs every analytics component in dependency order and
// assembles the unified snapshot for the requested period.
//
// Distributions, timelines, thresholds, and tag analytics are windowed;
// current streak, longest streak, milestones, and personal records look
// at the full history even when the window is shorter. That asymmetry is
// deliberate: records and streaks describe the whole journal, not the
// slice being displayed.
func BuildSnapshot(entries []journal.Entry, params SnapshotParams) StatisticsSnapshot {
	params = params.withDefaults()

	today := LocalDateOf(params.Now, params.Location)
	allDays := BucketByDay(entries, params.Location)

	var firstDay LocalDate
	if len(allDays) > 0 {
		firstDay = allDays[0].Date
	}
	start, end := params.Period.Window(today, firstDay)
	daysInWindow := start.DaysUntil(end) + 1

	windowDays := filterDays(allDays, start, end)
	windowEntries := filterEntries(entries, params.Location, start, end)

	goalPred := MetWordGoal(params.Goal)
	history := StreakHistory(allDays, WroteAnything)

	snapshot := StatisticsSnapshot{
		Period:             params.Period,
		StartDate:          start,
		EndDate:            end,
		MoodAnalytics:      buildMoodAnalytics(windowEntries, windowDays, params.Trend),
		WordCountAnalytics: buildWordCountAnalytics(windowDays, len(windowEntries), daysInWindow, params.Goal),
		WritingPatterns: WritingPatterns{
			ConsistencyRate: rate(len(windowDays), daysInWindow),
			TimeOfDay:       TimeOfDayDistribution(windowEntries, params.Location, params.Boundaries),
			DayOfWeek:       DayOfWeekDistribution(windowDays),
			StreakHistory:   TopStreaks(history, params.TopStreaks),
		},
		TagAnalytics: AggregateTags(windowEntries),
		Milestones: MilestoneSummary{
			Milestones: EvaluateMilestones(MilestoneTotals{
				TotalEntries:  len(entries),
				TotalWords:    totalWords(allDays),
				LongestStreak: LongestStreak(allDays, WroteAnything),
			}, params.Ladders),
		},
		GoalStreak: GoalStreakSummary{
			Current: CurrentStreak(allDays, goalPred, today),
			Longest: LongestStreak(allDays, goalPred),
			Goal:    params.Goal,
		},
		PersonalRecords: ComputeRecords(entries, allDays, params.Location, params.Goal),
		Heatmap:         buildHeatmap(windowDays),
	}

	return snapshot
}

func buildMoodAnalytics(entries []journal.Entry, days []DayAggregate, opts TrendOptions) MoodAnalytics {
	analytics := MoodAnalytics{
		Distribution: emptyMoodDistribution(),
		Timeline:     make([]MoodTimelinePoint, 0, len(days)),
	}

	moodSum := 0
	for _, entry := range entries {
		if entry.Mood == nil {
			continue
		}
		analytics.Distribution[strconv.Itoa(*entry.Mood)]++
		moodSum += *entry.Mood
		analytics.TotalRatedEntries++
	}
	if analytics.TotalRatedEntries > 0 {
		avg := float64(moodSum) / float64(analytics.TotalRatedEntries)
		analytics.Average = &avg
	}

	for _, day := range days {
		analytics.Timeline = append(analytics.Timeline, MoodTimelinePoint{
			Date:    day.Date,
			Average: day.AverageMood,
			Count:   day.RatedEntries,
		})
	}

	analytics.Trend = ClassifyMoodTrend(days, opts)
	return analytics
}

func buildWordCountAnalytics(days []DayAggregate, entryCount, daysInWindow, goal int) WordCountAnalytics {
	analytics := WordCountAnalytics{
		Timeline:     make([]WordTimelinePoint, 0, len(days)),
		TotalEntries: entryCount,
	}

	goalDays := 0
	for _, day := range days {
		analytics.Total += day.TotalWords
		analytics.Timeline = append(analytics.Timeline, WordTimelinePoint{
			Date:       day.Date,
			WordCount:  day.TotalWords,
			EntryCount: day.EntryCount,
		})
		if day.MeetsGoal(goal) {
			goalDays++
		}
		if analytics.BestDay == nil || day.TotalWords > analytics.BestDay.WordCount {
			analytics.BestDay = &DayRecord{Date: day.Date, WordCount: day.TotalWords}
		}
	}

	if entryCount > 0 {
		analytics.AveragePerEntry = float64(analytics.Total) / float64(entryCount)
	}
	if daysInWindow > 0 {
		analytics.AveragePerDay = float64(analytics.Total) / float64(daysInWindow)
	}
	analytics.GoalAchievementRate = rate(goalDays, daysInWindow)

	return analytics
}

func buildHeatmap(days []DayAggregate) HeatmapAnalytics {
	totals := make([]int, 0, len(days))
	for _, day := range days {
		totals = append(totals, day.TotalWords)
	}

	heatmap := HeatmapAnalytics{
		Thresholds: EstimateThresholds(totals),
		Days:       make([]HeatmapDay, 0, len(days)),
	}
	for _, day := range days {
		heatmap.Days = append(heatmap.Days, HeatmapDay{
			Date:  day.Date,
			Level: heatmap.Thresholds.Level(day.TotalWords),
		})
	}
	return heatmap
}

func emptyMoodDistribution() map[string]int {
	distribution := make(map[string]int, journal.MoodMax)
	for rating := journal.MoodMin; rating <= journal.MoodMax; rating++ {
		distribution[strconv.Itoa(rating)] = 0
	}
	return distribution
}

func filterEntries(entries []journal.Entry, loc *time.Location, start, end LocalDate) []journal.Entry {
	filtered := make([]journal.Entry, 0, len(entries))
	for _, entry := range journal.SortEntries(entries) {
		date := LocalDateOf(entry.Timestamp, loc)
		if date.Before(start) || date.After(end) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func totalWords(days []DayAggregate) int {
	total := 0
	for _, day := range days {
		total += day.TotalWords
	}
	return total
}

// rate converts count/total into a percentage, short-circuiting empty
// denominators to 0 so the output never carries NaN or Infinity.
func rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}
