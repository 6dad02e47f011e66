// Package deadline contains the pure due-date arithmetic for public records
// requests. No I/O, only pure functions over the static reference tables.
//
// Business-day math skips Saturdays and Sundays only. Public holidays are
// deliberately not excluded; statutes and agency practice vary too much to
// bake a holiday table in here.
package deadline

import (
	"time"

	"github.com/example/foia/internal/models"
	"github.com/example/foia/internal/refdata"
)

// fallbackBusinessDays applies when a jurisdiction's statute sets no fixed
// response window.
const fallbackBusinessDays = 10

// DueDate computes the statutory due date for a request submitted on
// submittedOn in the given jurisdiction. The second return is false when the
// code is empty or unrecognized; such requests carry no statutory deadline.
func DueDate(code string, submittedOn time.Time) (time.Time, bool) {
	if code == "" {
		return time.Time{}, false
	}
	profile, ok := refdata.Lookup(code)
	if !ok {
		return time.Time{}, false
	}

	w := profile.Window
	switch {
	case w.Kind == refdata.WindowBusinessDays && w.Days > 0:
		return AddBusinessDays(submittedOn, w.Days), true
	case w.Kind == refdata.WindowCalendarDays && w.Days > 0:
		return submittedOn.AddDate(0, 0, w.Days), true
	default:
		// "Reasonable time" statutes and zero-valued windows default to
		// 10 business days.
		return AddBusinessDays(submittedOn, fallbackBusinessDays), true
	}
}

// AddBusinessDays advances t by n weekday units, skipping Saturdays and
// Sundays. A start on a weekend is not itself counted.
func AddBusinessDays(t time.Time, n int) time.Time {
	for n > 0 {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n--
		}
	}
	return t
}

// IsOverdue reports whether a request is past its due date. Fulfilled and
// denied requests are never overdue regardless of due date, and a request
// without a due date cannot be overdue.
func IsOverdue(req *models.Request, now time.Time) bool {
	if models.IsTerminal(req.Status) {
		return false
	}
	if req.DueDate == nil {
		return false
	}
	return now.After(*req.DueDate)
}

// DaysUntil returns the signed whole-day difference between due and now:
// positive means days remaining, negative means days overdue. Both instants
// are truncated to their calendar date first so time-of-day components never
// shift the result.
func DaysUntil(due, now time.Time) int {
	d := dateOnly(due)
	n := dateOnly(now)
	return int(d.Sub(n).Hours() / 24)
}

// BusinessDaysBetween counts the weekdays strictly after start up to and
// including end. Returns 0 when end is not after start.
func BusinessDaysBetween(start, end time.Time) int {
	s := dateOnly(start)
	e := dateOnly(end)
	count := 0
	for d := s.AddDate(0, 0, 1); !d.After(e); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
