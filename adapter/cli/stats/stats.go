// Package stats contains the CLI commands for writing analytics.
package stats

import (
	analyticsApp "github.com/felixgeelhaar/quill/internal/analytics/application"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	analyticsService *analyticsApp.Service
	currentUserID    uuid.UUID

	// Configured defaults, used when the matching flag is not set.
	defaultPeriod   = "30d"
	defaultTimezone = ""
	defaultGoal     = 0
)

// SetService configures the analytics service for CLI commands.
func SetService(service *analyticsApp.Service) {
	analyticsService = service
}

// SetCurrentUserID configures the user whose journal is analyzed.
func SetCurrentUserID(id uuid.UUID) {
	currentUserID = id
}

// SetDefaults configures the period, timezone, and goal used when the
// corresponding flags are omitted.
func SetDefaults(period, timezone string, goal int) {
	if period != "" {
		defaultPeriod = period
	}
	defaultTimezone = timezone
	defaultGoal = goal
}

// Cmd is the root command for analytics operations.
var Cmd = &cobra.Command{
	Use:   "stats",
	Short: "Writing statistics and analytics",
	Long: `View writing analytics derived from your journal entries.

The analytics engine computes:
- Writing and goal streaks with full streak history
- Word-count and mood timelines with trend classification
- Time-of-day and day-of-week writing patterns
- Milestones, personal records, and heatmap intensity levels

Examples:
  quill stats snapshot                  # Last 30 days
  quill stats snapshot --period 7d      # Last week
  quill stats snapshot --period all --json`,
}

func init() {
	Cmd.AddCommand(snapshotCmd)
}
