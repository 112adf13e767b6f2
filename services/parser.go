package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const productURLPrefix = "https://www.amazon.com/dp/"

var (
	// deliveryDateRegexp matches "Ddd, Mmm D" optionally followed by a
	// " - Ddd, Mmm D" range suffix. Abbreviations are case-sensitive:
	// "mon, Aug 2" is not a delivery date.
	deliveryDateRegexp = regexp.MustCompile(
		`^(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun), ` +
			`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) ([0-9]{1,2})` +
			`(?: - (?:Mon|Tue|Wed|Thu|Fri|Sat|Sun), ` +
			`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) [0-9]{1,2})?$`)

	// ratingRegexp matches the exact star-rating phrase, e.g. "4.5 out of 5 stars"
	ratingRegexp = regexp.MustCompile(`^([0-9]{1,2}(?:\.[0-9])?) out of 5 stars$`)
)

var monthsByAbbr = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseDeliveryDate converts a delivery promise like "Mon, Aug 2" or
// "Mon, Aug 2 - Wed, Aug 4" into a concrete date. The page never shows a
// year, so the current calendar year is assumed. For a range only the left
// bound is kept. The result is normalized to UTC midnight so that two
// listings delivered on the same day always compare equal.
//
// Returns nil for anything that does not match the pattern exactly, and for
// days that do not exist in the named month ("Feb 30").
func ParseDeliveryDate(text string) *time.Time {
	match := deliveryDateRegexp.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return nil
	}

	month := monthsByAbbr[match[1]]
	day, err := strconv.Atoi(match[2])
	if err != nil {
		return nil
	}

	date := time.Date(time.Now().UTC().Year(), month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2), so an impossible
	// day is detected by the round-trip check.
	if date.Month() != month || date.Day() != day {
		return nil
	}
	return &date
}

// ParsePrice combines the whole and fractional price texts shown as separate
// spans on the page. Both parts must be present. The two digit strings are
// concatenated as-is — no decimal point is inserted between them, so
// ("12", "99") yields 1299. That mirrors the upstream extraction exactly and
// callers depend on it; do not "fix" it here.
func ParsePrice(whole, fraction string) *float64 {
	if whole == "" || fraction == "" {
		return nil
	}

	value, err := strconv.ParseFloat(whole+fraction, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// ParseRating extracts the numeric rating from the accessibility text of a
// star widget ("4.5 out of 5 stars"). Anything that is not exactly that
// phrase yields nil.
func ParseRating(text string) *float64 {
	match := ratingRegexp.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return nil
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

// ParseRatingCount parses review counts like "1,234" into an integer,
// dropping thousands separators. nil if the text is not a non-negative
// number.
func ParseRatingCount(text string) *int {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	count, err := strconv.Atoi(cleaned)
	if err != nil || count < 0 {
		return nil
	}
	return &count
}

// ProductURL derives the canonical product URL from an ASIN. The mapping is
// deterministic and reversible: the ASIN is the last path segment.
func ProductURL(asin string) *string {
	asin = strings.TrimSpace(asin)
	if asin == "" {
		return nil
	}
	url := productURLPrefix + asin
	return &url
}
