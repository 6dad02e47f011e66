// Package refdata holds the static legal reference tables: per-jurisdiction
// public records statutes, statutory response windows, and fee schedules.
// The tables are immutable lookup maps loaded once at process start. Rates
// are illustrative approximations, not legal advice.
package refdata

import "sort"

// WindowKind tags how a jurisdiction's response deadline is computed.
type WindowKind string

const (
	// WindowNone means the statute sets no fixed deadline ("reasonable time").
	WindowNone WindowKind = "none"
	// WindowBusinessDays counts weekdays only, Saturdays and Sundays excluded.
	WindowBusinessDays WindowKind = "business_days"
	// WindowCalendarDays counts every day.
	WindowCalendarDays WindowKind = "calendar_days"
)

// ResponseWindow describes the statutory time limit an agency has to respond.
type ResponseWindow struct {
	Kind WindowKind
	Days int
}

// Profile is the reference entry for one jurisdiction.
type Profile struct {
	Code        string
	Name        string
	Statute     string
	DisplayTime string
	Window      ResponseWindow
}

// FeeSchedule holds per-jurisdiction rates. Jurisdictions without an explicit
// entry use DefaultFeeSchedule.
type FeeSchedule struct {
	SearchRate       float64 // per hour
	CopyFee          float64 // per page
	CertificationFee float64
}

// DefaultFeeSchedule applies when no jurisdiction-specific schedule is
// registered: search $20/hr, copies $0.15/page, certification $10.
var DefaultFeeSchedule = FeeSchedule{SearchRate: 20, CopyFee: 0.15, CertificationFee: 10}

var feeSchedules = map[string]FeeSchedule{
	"CA": {SearchRate: 0, CopyFee: 0.10, CertificationFee: 15},
	"NY": {SearchRate: 25, CopyFee: 0.25, CertificationFee: 15},
	"TX": {SearchRate: 0, CopyFee: 0.10, CertificationFee: 5},
	"FL": {SearchRate: 0, CopyFee: 0.15, CertificationFee: 1},
	"IL": {SearchRate: 0, CopyFee: 0.10, CertificationFee: 10},
}

var profiles = map[string]Profile{
	"AL": {"AL", "Alabama", "Ala. Code § 36-12-40", "a reasonable time", ResponseWindow{WindowNone, 0}},
	"AK": {"AK", "Alaska", "Alaska Stat. § 40.25.110", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"AZ": {"AZ", "Arizona", "A.R.S. § 39-121", "promptly", ResponseWindow{WindowNone, 0}},
	"AR": {"AR", "Arkansas", "Ark. Code § 25-19-105", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"CA": {"CA", "California", "Cal. Gov. Code § 7922.535", "10 calendar days", ResponseWindow{WindowCalendarDays, 10}},
	"CO": {"CO", "Colorado", "C.R.S. § 24-72-203", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"CT": {"CT", "Connecticut", "Conn. Gen. Stat. § 1-210", "4 business days", ResponseWindow{WindowBusinessDays, 4}},
	"DE": {"DE", "Delaware", "29 Del. C. § 10003", "15 business days", ResponseWindow{WindowBusinessDays, 15}},
	"DC": {"DC", "District of Columbia", "D.C. Code § 2-532", "15 business days", ResponseWindow{WindowBusinessDays, 15}},
	"FL": {"FL", "Florida", "Fla. Stat. § 119.07", "a reasonable time", ResponseWindow{WindowNone, 0}},
	"GA": {"GA", "Georgia", "O.C.G.A. § 50-18-71", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"HI": {"HI", "Hawaii", "Haw. Rev. Stat. § 92F-11", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"ID": {"ID", "Idaho", "Idaho Code § 74-103", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"IL": {"IL", "Illinois", "5 ILCS 140/3", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"IN": {"IN", "Indiana", "Ind. Code § 5-14-3-9", "7 calendar days", ResponseWindow{WindowCalendarDays, 7}},
	"IA": {"IA", "Iowa", "Iowa Code § 22.8", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"KS": {"KS", "Kansas", "K.S.A. § 45-218", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"KY": {"KY", "Kentucky", "Ky. Rev. Stat. § 61.880", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"LA": {"LA", "Louisiana", "La. R.S. § 44:32", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"ME": {"ME", "Maine", "1 M.R.S. § 408-A", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"MD": {"MD", "Maryland", "Md. Code, Gen. Prov. § 4-203", "30 calendar days", ResponseWindow{WindowCalendarDays, 30}},
	"MA": {"MA", "Massachusetts", "Mass. Gen. Laws c. 66, § 10", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"MI": {"MI", "Michigan", "Mich. Comp. Laws § 15.235", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"MN": {"MN", "Minnesota", "Minn. Stat. § 13.03", "a reasonable time", ResponseWindow{WindowNone, 0}},
	"MS": {"MS", "Mississippi", "Miss. Code § 25-61-5", "7 business days", ResponseWindow{WindowBusinessDays, 7}},
	"MO": {"MO", "Missouri", "Mo. Rev. Stat. § 610.023", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"MT": {"MT", "Montana", "Mont. Code § 2-6-1006", "a reasonable time", ResponseWindow{WindowNone, 0}},
	"NE": {"NE", "Nebraska", "Neb. Rev. Stat. § 84-712", "4 business days", ResponseWindow{WindowBusinessDays, 4}},
	"NV": {"NV", "Nevada", "Nev. Rev. Stat. § 239.0107", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"NH": {"NH", "New Hampshire", "N.H. Rev. Stat. § 91-A:4", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"NJ": {"NJ", "New Jersey", "N.J.S.A. 47:1A-5", "7 business days", ResponseWindow{WindowBusinessDays, 7}},
	"NM": {"NM", "New Mexico", "N.M. Stat. § 14-2-8", "15 calendar days", ResponseWindow{WindowCalendarDays, 15}},
	"NY": {"NY", "New York", "N.Y. Pub. Off. Law § 89", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"NC": {"NC", "North Carolina", "N.C.G.S. § 132-6", "promptly", ResponseWindow{WindowNone, 0}},
	"ND": {"ND", "North Dakota", "N.D.C.C. § 44-04-18", "a reasonable time", ResponseWindow{WindowNone, 0}},
	"OH": {"OH", "Ohio", "Ohio Rev. Code § 149.43", "promptly", ResponseWindow{WindowNone, 0}},
	"OK": {"OK", "Oklahoma", "51 Okla. Stat. § 24A.5", "promptly", ResponseWindow{WindowNone, 0}},
	"OR": {"OR", "Oregon", "Or. Rev. Stat. § 192.324", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"PA": {"PA", "Pennsylvania", "65 P.S. § 67.901", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"RI": {"RI", "Rhode Island", "R.I. Gen. Laws § 38-2-3", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"SC": {"SC", "South Carolina", "S.C. Code § 30-4-30", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"SD": {"SD", "South Dakota", "SDCL § 1-27-37", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"TN": {"TN", "Tennessee", "Tenn. Code § 10-7-503", "7 business days", ResponseWindow{WindowBusinessDays, 7}},
	"TX": {"TX", "Texas", "Tex. Gov't Code § 552.221", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"UT": {"UT", "Utah", "Utah Code § 63G-2-204", "10 business days", ResponseWindow{WindowBusinessDays, 10}},
	"VT": {"VT", "Vermont", "1 V.S.A. § 318", "3 business days", ResponseWindow{WindowBusinessDays, 3}},
	"VA": {"VA", "Virginia", "Va. Code § 2.2-3704", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"WA": {"WA", "Washington", "RCW 42.56.520", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"WV": {"WV", "West Virginia", "W. Va. Code § 29B-1-3", "5 business days", ResponseWindow{WindowBusinessDays, 5}},
	"WI": {"WI", "Wisconsin", "Wis. Stat. § 19.35", "as soon as practicable", ResponseWindow{WindowNone, 0}},
	"WY": {"WY", "Wyoming", "Wyo. Stat. § 16-4-202", "7 business days", ResponseWindow{WindowBusinessDays, 7}},
}

// Lookup returns the profile for a jurisdiction code.
func Lookup(code string) (Profile, bool) {
	p, ok := profiles[code]
	return p, ok
}

// Valid reports whether code is a known jurisdiction.
func Valid(code string) bool {
	_, ok := profiles[code]
	return ok
}

// ScheduleFor returns the fee schedule for a jurisdiction, falling back to
// DefaultFeeSchedule when the code is empty or has no registered entry.
func ScheduleFor(code string) FeeSchedule {
	if s, ok := feeSchedules[code]; ok {
		return s
	}
	return DefaultFeeSchedule
}

// HasSchedule reports whether a jurisdiction has an explicit fee schedule.
func HasSchedule(code string) bool {
	_, ok := feeSchedules[code]
	return ok
}

// All returns every profile sorted by jurisdiction code.
func All() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
