package fees

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		category       string
		pages          int
		audioMinutes   float64
		searchHours    float64
		wantSearchCost float64
		wantCopyCost   float64
		wantMediaFee   float64
		wantSurcharges int
		wantTotal      float64
		wantNote       bool
	}{
		{
			name:           "CA email request over the page threshold",
			code:           "CA",
			category:       "emails",
			pages:          150,
			searchHours:    2,
			wantSearchCost: 0, // CA search rate is 0
			wantCopyCost:   15,
			wantSurcharges: 1, // electronic search surcharge
			wantTotal:      65.00,
		},
		{
			name:           "NY body camera with audio",
			code:           "NY",
			category:       "body-camera",
			pages:          10,
			audioMinutes:   20,
			searchHours:    1,
			wantSearchCost: 25,
			wantCopyCost:   2.5,
			wantMediaFee:   10,
			wantSurcharges: 1, // video production fee
			wantTotal:      62.50,
		},
		{
			name:      "unknown jurisdiction with zero volumes",
			code:      "ZZ",
			category:  "police-report",
			wantTotal: 0,
		},
		{
			name:           "emails at exactly 100 pages carry no surcharge",
			code:           "CA",
			category:       "emails",
			pages:          100,
			wantCopyCost:   10,
			wantSurcharges: 0,
			wantTotal:      10,
		},
		{
			name:           "surveillance video gets the production fee",
			code:           "TX",
			category:       "surveillance-video",
			wantSurcharges: 1,
			wantTotal:      25,
		},
		{
			name:           "default schedule for unregistered jurisdiction",
			code:           "WY",
			category:       "general",
			pages:          10,
			searchHours:    1,
			wantSearchCost: 20,
			wantCopyCost:   1.5,
			wantTotal:      21.50,
		},
		{
			name:           "large total attaches the waiver note",
			code:           "NY",
			category:       "emails",
			pages:          200,
			searchHours:    4,
			wantSearchCost: 100,
			wantCopyCost:   50,
			wantSurcharges: 1,
			wantTotal:      200,
			wantNote:       true,
		},
		{
			name:           "negative inputs propagate rather than error",
			code:           "NY",
			category:       "general",
			pages:          -10,
			searchHours:    -1,
			wantSearchCost: -25,
			wantCopyCost:   -2.5,
			wantTotal:      -27.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.code, tt.category, tt.pages, tt.audioMinutes, tt.searchHours)

			if got.SearchCost != tt.wantSearchCost {
				t.Errorf("SearchCost = %v, want %v", got.SearchCost, tt.wantSearchCost)
			}
			if got.CopyCost != tt.wantCopyCost {
				t.Errorf("CopyCost = %v, want %v", got.CopyCost, tt.wantCopyCost)
			}
			if got.MediaFee != tt.wantMediaFee {
				t.Errorf("MediaFee = %v, want %v", got.MediaFee, tt.wantMediaFee)
			}
			if len(got.Surcharges) != tt.wantSurcharges {
				t.Errorf("len(Surcharges) = %d, want %d", len(got.Surcharges), tt.wantSurcharges)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %v, want %v", got.Total, tt.wantTotal)
			}
			if (got.Note != "") != tt.wantNote {
				t.Errorf("Note = %q, wantNote %v", got.Note, tt.wantNote)
			}
		})
	}
}

func TestComputeCarriesRates(t *testing.T) {
	got := Compute("NY", "general", 4, 0, 2)
	if got.SearchRate != 25 {
		t.Errorf("SearchRate = %v, want 25", got.SearchRate)
	}
	if got.CopyRate != 0.25 {
		t.Errorf("CopyRate = %v, want 0.25", got.CopyRate)
	}
	if got.Pages != 4 || got.SearchHours != 2 {
		t.Errorf("inputs not echoed: pages=%d hours=%v", got.Pages, got.SearchHours)
	}
}

// The estimator is linear in pages and search hours for a fixed jurisdiction
// and category: doubling an input doubles its component.
func TestComputeLinearity(t *testing.T) {
	base := Compute("NY", "general", 10, 0, 2)
	doubledPages := Compute("NY", "general", 20, 0, 2)
	doubledHours := Compute("NY", "general", 10, 0, 4)

	if math.Abs(doubledPages.CopyCost-2*base.CopyCost) > 1e-9 {
		t.Errorf("copy cost not linear in pages: %v vs 2*%v", doubledPages.CopyCost, base.CopyCost)
	}
	if math.Abs(doubledHours.SearchCost-2*base.SearchCost) > 1e-9 {
		t.Errorf("search cost not linear in hours: %v vs 2*%v", doubledHours.SearchCost, base.SearchCost)
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.625, 0.63}, // exact half cent rounds up
		{1.004, 1.00},
		{1.006, 1.01},
		{62.499999999, 62.5},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundCents(tt.in); got != tt.want {
			t.Errorf("roundCents(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
