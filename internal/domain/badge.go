package domain

import "time"

// Metric names the user statistic a badge tracks.
type Metric string

const (
	MetricTotalPoints    Metric = "total_points"
	MetricItemsCompleted Metric = "items_completed"
	MetricListsCreated   Metric = "lists_created"
	MetricListsFollowed  Metric = "lists_followed"
	MetricFollowersCount Metric = "followers_count"
)

func (m Metric) String() string { return string(m) }

func (m Metric) IsValid() bool {
	switch m {
	case MetricTotalPoints, MetricItemsCompleted, MetricListsCreated,
		MetricListsFollowed, MetricFollowersCount:
		return true
	}
	return false
}

// AllMetrics returns every known metric in a stable order.
func AllMetrics() []Metric {
	return []Metric{
		MetricTotalPoints,
		MetricItemsCompleted,
		MetricListsCreated,
		MetricListsFollowed,
		MetricFollowersCount,
	}
}

// UserStatistics is a point-in-time read of a user's aggregate counters.
type UserStatistics struct {
	TotalPoints    int64
	ItemsCompleted int64
	ListsCreated   int64
	ListsFollowed  int64
	FollowersCount int64
}

// Value returns the counter tracked by m. Unknown metrics read as 0.
func (s UserStatistics) Value(m Metric) int64 {
	switch m {
	case MetricTotalPoints:
		return s.TotalPoints
	case MetricItemsCompleted:
		return s.ItemsCompleted
	case MetricListsCreated:
		return s.ListsCreated
	case MetricListsFollowed:
		return s.ListsFollowed
	case MetricFollowersCount:
		return s.FollowersCount
	}
	return 0
}

// BadgeDefinition is an immutable catalog entry.
type BadgeDefinition struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Metric      Metric
	Threshold   int64
}

// BadgeProgress is the derived completion state of one badge for one user.
// It is recomputed on every read and never persisted.
type BadgeProgress struct {
	BadgeID      string
	Percentage   int
	IsEarned     bool
	CurrentValue int64
	Threshold    int64
}

// EarnedBadge is a persisted award.
type EarnedBadge struct {
	BadgeID  string
	EarnedAt time.Time
}
