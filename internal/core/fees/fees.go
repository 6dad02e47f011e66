// Package fees contains the pure fee estimation logic. Estimates are
// illustrative projections built from the jurisdiction fee schedules; they
// carry every component so callers can render a full breakdown.
package fees

import (
	"math"

	"github.com/example/foia/internal/refdata"
)

// Per-minute rate for audio/video media, applied regardless of jurisdiction.
// A deliberate simplification: many jurisdictions charge per minute but the
// rates vary too widely for the reference table to track.
const mediaRatePerMinute = 0.50

// Record categories that trigger a flat video production fee.
const (
	CategoryBodyCamera        = "body-camera"
	CategorySurveillanceVideo = "surveillance-video"
	CategoryEmails            = "emails"
)

const (
	videoProductionFee   = 25.0
	electronicSurcharge  = 50.0
	waiverAdvisoryCutoff = 100.0
)

// Surcharge is one itemized category-specific fee.
type Surcharge struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Estimate is the full itemized cost projection. Every component is carried
// so the caller never has to reverse-engineer the total.
type Estimate struct {
	SearchHours  float64     `json:"searchTime"`
	SearchRate   float64     `json:"searchRate"`
	SearchCost   float64     `json:"searchCost"`
	Pages        int         `json:"pages"`
	CopyRate     float64     `json:"copyFee"`
	CopyCost     float64     `json:"copyCost"`
	AudioMinutes float64     `json:"audioMinutes"`
	MediaFee     float64     `json:"mediaFee"`
	Surcharges   []Surcharge `json:"otherFees"`
	Total        float64     `json:"total"`
	Note         string      `json:"notes,omitempty"`
}

// Compute builds an estimate for a request in the given jurisdiction. The
// jurisdiction resolves to its registered fee schedule or the documented
// default. Inputs are not validated: negative volumes propagate into
// negative components, a documented quirk of the estimator's total domain.
func Compute(code, category string, pages int, audioMinutes, searchHours float64) Estimate {
	schedule := refdata.ScheduleFor(code)

	est := Estimate{
		SearchHours:  searchHours,
		SearchRate:   schedule.SearchRate,
		SearchCost:   searchHours * schedule.SearchRate,
		Pages:        pages,
		CopyRate:     schedule.CopyFee,
		CopyCost:     float64(pages) * schedule.CopyFee,
		AudioMinutes: audioMinutes,
	}

	if audioMinutes > 0 {
		est.MediaFee = audioMinutes * mediaRatePerMinute
	}

	if category == CategoryBodyCamera || category == CategorySurveillanceVideo {
		est.Surcharges = append(est.Surcharges, Surcharge{
			Description: "Video production fee",
			Amount:      videoProductionFee,
		})
	}
	if category == CategoryEmails && pages > 100 {
		est.Surcharges = append(est.Surcharges, Surcharge{
			Description: "Electronic search surcharge",
			Amount:      electronicSurcharge,
		})
	}

	total := est.SearchCost + est.CopyCost + est.MediaFee
	for _, s := range est.Surcharges {
		total += s.Amount
	}
	est.Total = roundCents(total)

	if est.Total > waiverAdvisoryCutoff {
		est.Note = "Request a fee waiver if this serves public interest"
	}

	return est
}

// roundCents rounds half-up on the cent boundary.
func roundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
