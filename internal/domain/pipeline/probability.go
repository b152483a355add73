package pipeline

import (
	"math"
	"time"

	"winnet_crm/internal/domain/entities"
)

const (
	defaultProbability = 25
	overduePenalty     = 50
	dueSoonPenalty     = 20
	dueSoonDays        = 7
)

var baseProbability = map[entities.QuoteStatus]int{
	entities.QuoteStatusDraft:    10,
	entities.QuoteStatusSent:     40,
	entities.QuoteStatusApproved: 100,
	entities.QuoteStatusRejected: 0,
}

// Probability is the closing-chance heuristic (0-100) for a quote. A zero due
// date means "no due date" and carries no penalty.
func Probability(status entities.QuoteStatus, dueDate, now time.Time) int {
	base, ok := baseProbability[status]
	if !ok {
		base = defaultProbability
	}
	if dueDate.IsZero() {
		return base
	}

	daysToDue := ceilDays(dueDate.Sub(now))
	switch {
	case daysToDue < 0:
		return max(0, base-overduePenalty)
	case daysToDue < dueSoonDays:
		return max(0, base-dueSoonPenalty)
	}
	return base
}

// DaysInStage counts whole days (rounded up) since the quote last changed.
func DaysInStage(updatedAt, now time.Time) int {
	return ceilDays(now.Sub(updatedAt))
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
