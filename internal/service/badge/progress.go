package badge

import (
	"errors"
	"math"

	"github.com/bucketly/bucketly-backend/internal/domain"
)

// ComputeProgress derives one badge's completion state from a statistics
// snapshot. It is pure: identical inputs always give identical output.
//
// A badge with a non-positive threshold returns a *domain.ConfigurationError
// together with a usable progress value: 0% and earned only if it was
// already awarded.
func ComputeProgress(stats domain.UserStatistics, badge domain.BadgeDefinition, alreadyEarned bool) (domain.BadgeProgress, error) {
	value := stats.Value(badge.Metric)
	p := domain.BadgeProgress{
		BadgeID:      badge.ID,
		CurrentValue: value,
		Threshold:    badge.Threshold,
		IsEarned:     alreadyEarned,
	}

	if badge.Threshold <= 0 {
		return p, &domain.ConfigurationError{BadgeID: badge.ID, Threshold: badge.Threshold}
	}

	p.Percentage = percentage(value, badge.Threshold)
	p.IsEarned = alreadyEarned || p.Percentage >= 100
	return p, nil
}

// percentage is floor(min(value/threshold, 1) * 100) clamped to [0, 100].
// threshold must be positive.
func percentage(value, threshold int64) int {
	switch {
	case value <= 0:
		return 0
	case value >= threshold:
		return 100
	case value <= math.MaxInt64/100:
		return int(value * 100 / threshold)
	default:
		// value < threshold here, so float rounding must not reach 100.
		return min(int(math.Floor(float64(value)/float64(threshold)*100)), 99)
	}
}

// ComputeAllProgress applies ComputeProgress to every catalog badge. The map
// always holds exactly one entry per badge ID; configuration problems are
// joined into the returned error without dropping entries.
func ComputeAllProgress(stats domain.UserStatistics, catalog []domain.BadgeDefinition, earned map[string]struct{}) (map[string]domain.BadgeProgress, error) {
	out := make(map[string]domain.BadgeProgress, len(catalog))
	var errs []error
	for _, b := range catalog {
		_, already := earned[b.ID]
		p, err := ComputeProgress(stats, b, already)
		if err != nil {
			errs = append(errs, err)
		}
		out[b.ID] = p
	}
	return out, errors.Join(errs...)
}
