package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/quill/internal/analytics/application"
	"github.com/felixgeelhaar/quill/internal/analytics/application/queries"
	"github.com/felixgeelhaar/quill/internal/analytics/domain"
	"github.com/felixgeelhaar/quill/internal/journal/infrastructure/persistence"
)

var (
	snapshotPeriod   string
	snapshotTimezone string
	snapshotGoal     int
	snapshotExport   string
	snapshotJSON     bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Compute a statistics snapshot",
	Long: `Compute the full statistics snapshot for a period.

Examples:
  quill stats snapshot                          # Last 30 days
  quill stats snapshot --period 90d --goal 500  # Custom window and goal
  quill stats snapshot --timezone Europe/Berlin # Explicit local days
  quill stats snapshot --export journal.json    # Analyze an export file`,
	Aliases: []string{"show", "view"},
	RunE: func(cmd *cobra.Command, args []string) error {
		service := analyticsService
		if snapshotExport != "" {
			// A journal export bypasses the database and the cache.
			service = application.NewService(persistence.NewExportFileSource(snapshotExport), nil, nil)
		}
		if service == nil {
			return fmt.Errorf("analytics service not available")
		}

		if !cmd.Flags().Changed("period") {
			snapshotPeriod = defaultPeriod
		}
		if !cmd.Flags().Changed("timezone") {
			snapshotTimezone = defaultTimezone
		}
		if !cmd.Flags().Changed("goal") && defaultGoal > 0 {
			snapshotGoal = defaultGoal
		}

		period, err := domain.ParsePeriod(snapshotPeriod)
		if err != nil {
			return fmt.Errorf("invalid period (use 7d, 30d, 90d, 1y, or all): %w", err)
		}

		snapshot, err := service.GetStatistics(cmd.Context(), queries.GetStatisticsQuery{
			UserID:   currentUserID,
			Period:   period,
			Timezone: snapshotTimezone,
			Goal:     snapshotGoal,
			Now:      time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to compute snapshot: %w", err)
		}

		if snapshotJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(snapshot)
		}

		printSnapshot(snapshot)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotPeriod, "period", "p", "30d", "analysis period (7d, 30d, 90d, 1y, all)")
	snapshotCmd.Flags().StringVarP(&snapshotTimezone, "timezone", "t", "", "IANA timezone for calendar days (default UTC)")
	snapshotCmd.Flags().IntVarP(&snapshotGoal, "goal", "g", domain.DefaultDailyGoal, "daily word-count goal")
	snapshotCmd.Flags().StringVar(&snapshotExport, "export", "", "analyze a journal JSON export instead of the database")
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "emit the snapshot as JSON")
}

func printSnapshot(s *domain.StatisticsSnapshot) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  WRITING STATISTICS  %s to %s (%s)\n", s.StartDate, s.EndDate, s.Period)
	fmt.Println(strings.Repeat("=", 60))

	words := s.WordCountAnalytics
	fmt.Println("  WORDS")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("    Total: %d | Entries: %d\n", words.Total, words.TotalEntries)
	fmt.Printf("    Avg/Entry: %.1f | Avg/Day: %.1f\n", words.AveragePerEntry, words.AveragePerDay)
	fmt.Printf("    Goal Achievement: %.1f%%\n", words.GoalAchievementRate)
	if words.BestDay != nil {
		fmt.Printf("    Best Day: %s (%d words)\n", words.BestDay.Date, words.BestDay.WordCount)
	}
	fmt.Println()

	patterns := s.WritingPatterns
	fmt.Println("  PATTERNS")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("    Consistency: %.1f%%\n", patterns.ConsistencyRate)
	fmt.Printf("    Time of Day: morning %d | afternoon %d | evening %d | night %d\n",
		patterns.TimeOfDay.Morning, patterns.TimeOfDay.Afternoon,
		patterns.TimeOfDay.Evening, patterns.TimeOfDay.Night)
	for _, streak := range patterns.StreakHistory {
		fmt.Printf("    Streak: %s to %s (%d days)\n", streak.StartDate, streak.EndDate, streak.Length)
	}
	fmt.Println()

	fmt.Println("  GOAL STREAK")
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("    Current: %d | Longest: %d | Goal: %d words/day\n",
		s.GoalStreak.Current, s.GoalStreak.Longest, s.GoalStreak.Goal)
	fmt.Println()

	mood := s.MoodAnalytics
	if mood.TotalRatedEntries > 0 {
		fmt.Println("  MOOD")
		fmt.Println(strings.Repeat("-", 60))
		if mood.Average != nil {
			fmt.Printf("    Average: %.2f/5 (%d rated entries)\n", *mood.Average, mood.TotalRatedEntries)
		}
		if mood.Trend != nil {
			fmt.Printf("    Trend: %s\n", *mood.Trend)
		}
		fmt.Println()
	}

	records := s.PersonalRecords
	fmt.Println("  RECORDS")
	fmt.Println(strings.Repeat("-", 60))
	if records.LongestEntry != nil {
		fmt.Printf("    Longest Entry: %d words on %s\n", records.LongestEntry.WordCount, records.LongestEntry.Date)
	}
	if records.MostWordsInDay != nil {
		fmt.Printf("    Most Words in a Day: %d on %s\n", records.MostWordsInDay.WordCount, records.MostWordsInDay.Date)
	}
	fmt.Printf("    Longest Streak: %d days | Longest Goal Streak: %d days\n",
		records.LongestStreak, records.LongestGoalStreak)
	fmt.Println()

	achieved := 0
	for _, milestone := range s.Milestones.Milestones {
		if milestone.Achieved {
			achieved++
		}
	}
	fmt.Printf("  Milestones achieved: %d/%d\n", achieved, len(s.Milestones.Milestones))
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
}
