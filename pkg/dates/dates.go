// Package dates provides total-function date helpers for display-layer code.
// Every function tolerates missing or malformed input and degrades to a
// sentinel value instead of returning an error or panicking.
package dates

import (
	"fmt"
	"strconv"
	"time"
)

// Sentinels returned for missing or unparsable dates.
const (
	NotAvailable = "N/A"
	InvalidDate  = "Invalid Date"
)

// ISODate is the canonical date-only layout used in Gateway payloads.
const ISODate = "2006-01-02"

// layouts accepted by ParseDateOrNone, most specific first.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	ISODate,
}

// ParseDateOrNone parses s against the accepted layouts and returns nil when
// s is empty or matches none of them.
func ParseDateOrNone(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Normalize reparses s and returns it in canonical ISO date form. The second
// return value is false when s cannot be parsed.
func Normalize(s string) (string, bool) {
	t := ParseDateOrNone(s)
	if t == nil {
		return "", false
	}
	return t.Format(ISODate), true
}

// Age returns whole elapsed years between dob and ref, accounting for whether
// the birthday has occurred yet in ref's year.
func Age(dob, ref time.Time) int {
	years := ref.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	if years < 0 {
		years = 0
	}
	return years
}

// SafeAge formats the age derived from a raw date-of-birth string, returning
// NotAvailable when the input is missing or unparsable.
func SafeAge(dob string, ref time.Time) string {
	t := ParseDateOrNone(dob)
	if t == nil {
		return NotAvailable
	}
	return strconv.Itoa(Age(*t, ref))
}

// HumanizeSince renders the elapsed time from a raw timestamp string to ref
// as a coarse relative phrase. Empty input yields NotAvailable and unparsable
// input yields InvalidDate.
func HumanizeSince(raw string, ref time.Time) string {
	if raw == "" {
		return NotAvailable
	}
	t := ParseDateOrNone(raw)
	if t == nil {
		return InvalidDate
	}
	d := ref.Sub(*t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// StayDays returns the billable whole days between admission and ref. A
// partial first day always counts as one full day.
func StayDays(admission, ref time.Time) int {
	days := int(ref.Sub(admission).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// SameDay reports whether a and b fall on the same calendar day in b's
// location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
