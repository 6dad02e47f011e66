package stats

import (
	"testing"
	"time"

	"github.com/example/foia/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func floatPtr(v float64) *float64 { return &v }

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil, date(2026, time.August, 20))

	if s.Total != 0 {
		t.Errorf("Total = %d, want 0", s.Total)
	}
	if s.AvgResponseTime != 0 || s.AvgCost != 0 {
		t.Errorf("averages = (%d, %v), want zeros", s.AvgResponseTime, s.AvgCost)
	}
	if s.FulfillmentRate != 0 || s.DenialRate != 0 {
		t.Errorf("rates = (%d, %d), want zeros", s.FulfillmentRate, s.DenialRate)
	}
	if s.OverdueCount != 0 {
		t.Errorf("OverdueCount = %d, want 0", s.OverdueCount)
	}
}

func TestCompute(t *testing.T) {
	now := date(2026, time.August, 20)

	requests := []models.Request{
		{
			// Fulfilled in 10 days, cost 40. Past due date but terminal,
			// so never counted overdue.
			Status:        models.StatusFulfilled,
			SubmittedDate: datePtr(2026, time.August, 1),
			FulfilledDate: datePtr(2026, time.August, 11),
			DueDate:       datePtr(2026, time.August, 5),
			ActualCost:    floatPtr(40),
		},
		{
			// Fulfilled in 20 days, cost 10.
			Status:        models.StatusFulfilled,
			SubmittedDate: datePtr(2026, time.July, 1),
			FulfilledDate: datePtr(2026, time.July, 21),
			ActualCost:    floatPtr(10),
		},
		{
			// Overdue and still open.
			Status:        models.StatusSubmitted,
			SubmittedDate: datePtr(2026, time.August, 1),
			DueDate:       datePtr(2026, time.August, 10),
		},
		{
			Status: models.StatusDenied,
		},
		{
			Status: models.StatusDraft,
		},
		{
			Status: models.StatusPartial,
		},
	}

	s := Compute(requests, now)

	if s.Total != 6 {
		t.Fatalf("Total = %d, want 6", s.Total)
	}
	if s.ByStatus[models.StatusFulfilled] != 2 {
		t.Errorf("ByStatus[fulfilled] = %d, want 2", s.ByStatus[models.StatusFulfilled])
	}
	if s.ByStatus[models.StatusDenied] != 1 {
		t.Errorf("ByStatus[denied] = %d, want 1", s.ByStatus[models.StatusDenied])
	}
	if s.AvgResponseTime != 15 {
		t.Errorf("AvgResponseTime = %d, want 15", s.AvgResponseTime)
	}
	if s.AvgCost != 25 {
		t.Errorf("AvgCost = %v, want 25", s.AvgCost)
	}
	// 3 of 6 fulfilled or partial.
	if s.FulfillmentRate != 50 {
		t.Errorf("FulfillmentRate = %d, want 50", s.FulfillmentRate)
	}
	// 1 of 6 denied = 16.67 -> 17.
	if s.DenialRate != 17 {
		t.Errorf("DenialRate = %d, want 17", s.DenialRate)
	}
	if s.OverdueCount != 1 {
		t.Errorf("OverdueCount = %d, want 1", s.OverdueCount)
	}
}

func TestComputeSkipsIncompleteAverages(t *testing.T) {
	// No record has both dates or an actual cost: averages stay zero
	// without dividing by zero.
	requests := []models.Request{
		{Status: models.StatusSubmitted, SubmittedDate: datePtr(2026, time.August, 1)},
		{Status: models.StatusDraft},
	}

	s := Compute(requests, date(2026, time.August, 20))

	if s.AvgResponseTime != 0 {
		t.Errorf("AvgResponseTime = %d, want 0", s.AvgResponseTime)
	}
	if s.AvgCost != 0 {
		t.Errorf("AvgCost = %v, want 0", s.AvgCost)
	}
}
