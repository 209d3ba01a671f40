package domain

// MilestoneType identifies which cumulative total a milestone tracks.
type MilestoneType string

const (
	MilestoneEntries MilestoneType = "entries"
	MilestoneWords   MilestoneType = "words"
	MilestoneStreak  MilestoneType = "streak"
)

// Milestone compares a cumulative total against one rung of a threshold
// ladder. Milestones are stateless: always recomputed from current
// totals, never stored.
type Milestone struct {
	Type     MilestoneType `json:"type"`
	Value    int           `json:"value"`
	Achieved bool          `json:"achieved"`
	Current  int           `json:"current"`
}

// MilestoneLadders are the ascending threshold ladders per milestone
// type. The exact values are a product decision; they are passed in as
// configuration rather than baked into the evaluator.
type MilestoneLadders struct {
	Entries []int
	Words   []int
	Streak  []int
}

// DefaultMilestoneLadders returns the product-default ladders.
func DefaultMilestoneLadders() MilestoneLadders {
	return MilestoneLadders{
		Entries: []int{1, 10, 50, 100, 365, 1000},
		Words:   []int{1000, 10000, 50000, 100000, 500000},
		Streak:  []int{3, 7, 14, 30, 100, 365},
	}
}

// MilestoneTotals are the cumulative full-history totals milestones are
// evaluated against.
type MilestoneTotals struct {
	TotalEntries  int
	TotalWords    int
	LongestStreak int
}

// EvaluateMilestones emits one milestone per ladder rung, in ladder
// order: entries first, then words, then streak.
func EvaluateMilestones(totals MilestoneTotals, ladders MilestoneLadders) []Milestone {
	milestones := make([]Milestone, 0, len(ladders.Entries)+len(ladders.Words)+len(ladders.Streak))
	milestones = appendLadder(milestones, MilestoneEntries, ladders.Entries, totals.TotalEntries)
	milestones = appendLadder(milestones, MilestoneWords, ladders.Words, totals.TotalWords)
	milestones = appendLadder(milestones, MilestoneStreak, ladders.Streak, totals.LongestStreak)
	return milestones
}

func appendLadder(milestones []Milestone, kind MilestoneType, ladder []int, current int) []Milestone {
	for _, threshold := range ladder {
		milestones = append(milestones, Milestone{
			Type:     kind,
			Value:    threshold,
			Achieved: current >= threshold,
			Current:  current,
		})
	}
	return milestones
}
