package deadline

import (
	"testing"
	"time"

	"github.com/example/foia/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDate(t *testing.T) {
	// 2026-08-03 is a Monday.
	monday := date(2026, time.August, 3)

	tests := []struct {
		name      string
		code      string
		submitted time.Time
		want      time.Time
		wantOK    bool
	}{
		{
			name:      "NY five business days from Monday",
			code:      "NY",
			submitted: monday,
			want:      date(2026, time.August, 10),
			wantOK:    true,
		},
		{
			name:      "CA ten calendar days",
			code:      "CA",
			submitted: monday,
			want:      date(2026, time.August, 13),
			wantOK:    true,
		},
		{
			name:      "business days skip the weekend",
			code:      "NY",
			submitted: date(2026, time.August, 7), // Friday
			want:      date(2026, time.August, 14),
			wantOK:    true,
		},
		{
			name:      "no statutory window defaults to ten business days",
			code:      "FL",
			submitted: monday,
			want:      date(2026, time.August, 17),
			wantOK:    true,
		},
		{
			name:      "empty jurisdiction has no deadline",
			code:      "",
			submitted: monday,
			wantOK:    false,
		},
		{
			name:      "unrecognized jurisdiction has no deadline",
			code:      "ZZ",
			submitted: monday,
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DueDate(tt.code, tt.submitted)
			if ok != tt.wantOK {
				t.Fatalf("DueDate(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("DueDate(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestDueDateMonotonic(t *testing.T) {
	// Later submission never yields an earlier due date.
	start := date(2026, time.August, 3)
	prev, ok := DueDate("NY", start)
	if !ok {
		t.Fatal("DueDate(NY) not ok")
	}
	for i := 1; i < 30; i++ {
		next, ok := DueDate("NY", start.AddDate(0, 0, i))
		if !ok {
			t.Fatalf("DueDate(NY) not ok at offset %d", i)
		}
		if next.Before(prev) {
			t.Fatalf("due date went backwards at offset %d: %v < %v", i, next, prev)
		}
		prev = next
	}
}

func TestAddBusinessDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{"zero days is identity", date(2026, time.August, 3), 0, date(2026, time.August, 3)},
		{"one day midweek", date(2026, time.August, 3), 1, date(2026, time.August, 4)},
		{"Friday plus one lands on Monday", date(2026, time.August, 7), 1, date(2026, time.August, 10)},
		{"Saturday start is not counted", date(2026, time.August, 1), 1, date(2026, time.August, 3)},
		{"full week is five days", date(2026, time.August, 3), 5, date(2026, time.August, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddBusinessDays(tt.start, tt.n); !got.Equal(tt.want) {
				t.Errorf("AddBusinessDays(%v, %d) = %v, want %v", tt.start, tt.n, got, tt.want)
			}
		})
	}
}

func TestIsOverdue(t *testing.T) {
	now := date(2026, time.August, 20)
	past := date(2026, time.August, 10)
	future := date(2026, time.August, 30)

	tests := []struct {
		name   string
		status string
		due    *time.Time
		want   bool
	}{
		{"past due and submitted", models.StatusSubmitted, &past, true},
		{"past due but fulfilled", models.StatusFulfilled, &past, false},
		{"past due but denied", models.StatusDenied, &past, false},
		{"no due date", models.StatusSubmitted, nil, false},
		{"due in the future", models.StatusInProgress, &future, false},
		{"due exactly now is not overdue", models.StatusSubmitted, &now, false},
		{"past due draft", models.StatusDraft, &past, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &models.Request{Status: tt.status, DueDate: tt.due}
			if got := IsOverdue(req, now); got != tt.want {
				t.Errorf("IsOverdue(%s, due=%v) = %v, want %v", tt.status, tt.due, got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		due  time.Time
		now  time.Time
		want int
	}{
		{
			name: "two days remaining",
			due:  date(2026, time.August, 12),
			now:  date(2026, time.August, 10),
			want: 2,
		},
		{
			name: "three days overdue",
			due:  date(2026, time.August, 10),
			now:  date(2026, time.August, 13),
			want: -3,
		},
		{
			name: "same day",
			due:  date(2026, time.August, 10),
			now:  date(2026, time.August, 10),
			want: 0,
		},
		{
			name: "time of day does not shift whole-day difference",
			due:  time.Date(2026, time.August, 12, 23, 59, 0, 0, time.UTC),
			now:  time.Date(2026, time.August, 10, 0, 5, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.due, tt.now); got != tt.want {
				t.Errorf("DaysUntil(%v, %v) = %d, want %d", tt.due, tt.now, got, tt.want)
			}
		})
	}
}

func TestBusinessDaysBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"Monday to Friday same week", date(2026, time.August, 3), date(2026, time.August, 7), 4},
		{"across a weekend", date(2026, time.August, 7), date(2026, time.August, 10), 1},
		{"same day", date(2026, time.August, 3), date(2026, time.August, 3), 0},
		{"end before start", date(2026, time.August, 10), date(2026, time.August, 3), 0},
		{"full calendar week", date(2026, time.August, 3), date(2026, time.August, 10), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BusinessDaysBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("BusinessDaysBetween(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
