// Package stats derives summary rollups over an in-memory request
// collection. Pure aggregation: the caller loads the collection, this
// package only counts.
package stats

import (
	"math"

	"github.com/example/foia/internal/core/deadline"
	"github.com/example/foia/internal/models"

	"time"
)

// Stats is the dashboard rollup for a request collection. Rates are
// nearest-integer percentages.
type Stats struct {
	Total           int            `json:"total"`
	ByStatus        map[string]int `json:"byStatus"`
	AvgResponseTime int            `json:"avgResponseTime"` // whole days
	AvgCost         float64        `json:"avgCost"`
	FulfillmentRate int            `json:"fulfillmentRate"` // percent
	DenialRate      int            `json:"denialRate"`      // percent
	OverdueCount    int            `json:"overdueCount"`
}

// Compute aggregates the collection as of now. An empty collection yields
// all-zero fields; every ratio guards its denominator.
func Compute(requests []models.Request, now time.Time) Stats {
	s := Stats{
		Total:    len(requests),
		ByStatus: make(map[string]int),
	}
	if s.Total == 0 {
		return s
	}

	var (
		totalResponseDays int
		withResponseTime  int
		totalCost         float64
		withCost          int
	)

	for i := range requests {
		req := &requests[i]
		s.ByStatus[req.Status]++

		if req.SubmittedDate != nil && req.FulfilledDate != nil {
			totalResponseDays += deadline.DaysUntil(*req.FulfilledDate, *req.SubmittedDate)
			withResponseTime++
		}

		if req.ActualCost != nil {
			totalCost += *req.ActualCost
			withCost++
		}

		if deadline.IsOverdue(req, now) {
			s.OverdueCount++
		}
	}

	if withResponseTime > 0 {
		s.AvgResponseTime = roundInt(float64(totalResponseDays) / float64(withResponseTime))
	}
	if withCost > 0 {
		s.AvgCost = math.Floor(totalCost/float64(withCost)*100+0.5) / 100
	}

	completed := s.ByStatus[models.StatusFulfilled] + s.ByStatus[models.StatusPartial]
	s.FulfillmentRate = roundInt(100 * float64(completed) / float64(s.Total))
	s.DenialRate = roundInt(100 * float64(s.ByStatus[models.StatusDenied]) / float64(s.Total))

	return s
}

func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
