// Package dashboard turns a business's checklist rows into the dashboard summary.
// Everything here is pure; callers fetch the rows.
package dashboard

import (
	"math"
	"slices"
	"time"

	"github.com/Forhemit/StarterClub-sub002/internal/model"
)

const (
	MaxNextActions = 5
	MaxRecentWins  = 5
)

type Summary struct {
	Progress    int                    `json:"progress"`
	Total       int                    `json:"total"`
	Completed   int                    `json:"completed"`
	NextActions []model.ChecklistEntry `json:"next_actions"`
	RecentWins  []model.ChecklistEntry `json:"recent_wins"`
}

// Aggregate computes progress, next actions and recent wins. The input slice is not modified.
func Aggregate(rows []model.ChecklistEntry) Summary {
	next := make([]model.ChecklistEntry, 0, len(rows))
	wins := make([]model.ChecklistEntry, 0, len(rows))

	for _, row := range rows {
		if row.Status == model.ChecklistComplete {
			wins = append(wins, row)
		} else {
			next = append(next, row)
		}
	}

	// in_progress first, then not_started, then anything unrecognised; ties keep input order
	slices.SortStableFunc(next, func(a, b model.ChecklistEntry) int {
		return actionRank(a.Status) - actionRank(b.Status)
	})

	// newest completion first; a missing timestamp counts as the epoch
	slices.SortStableFunc(wins, func(a, b model.ChecklistEntry) int {
		return completedAt(b).Compare(completedAt(a))
	})

	return Summary{
		Progress:    Progress(len(wins), len(rows)),
		Total:       len(rows),
		Completed:   len(wins),
		NextActions: truncate(next, MaxNextActions),
		RecentWins:  truncate(wins, MaxRecentWins),
	}
}

// Progress returns round(100*completed/total), or 0 when total is 0.
func Progress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func actionRank(s model.ChecklistStatus) int {
	switch s {
	case model.ChecklistInProgress:
		return 0
	case model.ChecklistNotStarted:
		return 1
	default:
		return 2
	}
}

func completedAt(e model.ChecklistEntry) time.Time {
	if e.CompletedAt == nil {
		return time.Unix(0, 0)
	}
	return *e.CompletedAt
}

func truncate(rows []model.ChecklistEntry, n int) []model.ChecklistEntry {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
