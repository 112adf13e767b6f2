package services

import (
	"testing"
	"time"
)

func currentYearDate(month time.Month, day int) time.Time {
	return time.Date(time.Now().UTC().Year(), month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseDeliveryDate(t *testing.T) {
	tests := []struct {
		raw  string
		want *time.Time
	}{
		{"Mon, Aug 2", ptrTime(currentYearDate(time.August, 2))},
		{"Mon, Aug 2 - Wed, Aug 4", ptrTime(currentYearDate(time.August, 2))},
		{"Fri, Dec 31", ptrTime(currentYearDate(time.December, 31))},
		{"August 2", nil},
		{"Mon, August 2", nil},
		{"mon, Aug 2", nil},
		{"Mon, aug 2", nil},
		{"Tue, Feb 30", nil},
		{"Mon, Aug 2 and more", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseDeliveryDate(tt.raw)
		if tt.want == nil {
			if got != nil {
				t.Errorf("ParseDeliveryDate(%q) = %v; want nil", tt.raw, *got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseDeliveryDate(%q) = nil; want %v", tt.raw, *tt.want)
			continue
		}
		if !got.Equal(*tt.want) {
			t.Errorf("ParseDeliveryDate(%q) = %v; want %v", tt.raw, *got, *tt.want)
		}
	}
}

func TestParseDeliveryDateNormalizedToUTCMidnight(t *testing.T) {
	got := ParseDeliveryDate("Mon, Aug 2")
	if got == nil {
		t.Fatal("ParseDeliveryDate returned nil for a valid date")
	}
	h, m, sec := got.Clock()
	if h != 0 || m != 0 || sec != 0 || got.Location() != time.UTC {
		t.Errorf("expected UTC midnight, got %v", *got)
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		whole    string
		fraction string
		want     *float64
	}{
		// The two parts are concatenated without a decimal point; this is
		// the upstream contract, not a rounding bug.
		{"12", "99", ptrFloat(1299)},
		{"1", "00", ptrFloat(100)},
		{"0", "49", ptrFloat(49)},
		{"12", "", nil},
		{"", "99", nil},
		{"", "", nil},
		{"abc", "99", nil},
		{"12", "x9", nil},
	}

	for _, tt := range tests {
		got := ParsePrice(tt.whole, tt.fraction)
		if !floatPtrEqual(got, tt.want) {
			t.Errorf("ParsePrice(%q, %q) = %v; want %v",
				tt.whole, tt.fraction, fmtFloatPtr(got), fmtFloatPtr(tt.want))
		}
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		raw  string
		want *float64
	}{
		{"4.5 out of 5 stars", ptrFloat(4.5)},
		{"5 out of 5 stars", ptrFloat(5)},
		{"0 out of 5 stars", ptrFloat(0)},
		{"out of 5 stars", nil},
		{"4.5 out of 5", nil},
		{"4.55 out of 5 stars", nil},
		{"great, 4.5 out of 5 stars", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseRating(tt.raw)
		if !floatPtrEqual(got, tt.want) {
			t.Errorf("ParseRating(%q) = %v; want %v", tt.raw, fmtFloatPtr(got), fmtFloatPtr(tt.want))
		}
	}
}

func TestParseRatingCount(t *testing.T) {
	tests := []struct {
		raw  string
		want *int
	}{
		{"1,234", ptrInt(1234)},
		{"87", ptrInt(87)},
		{"12,345,678", ptrInt(12345678)},
		{"0", ptrInt(0)},
		{"", nil},
		{"no reviews", nil},
		{"-5", nil},
	}

	for _, tt := range tests {
		got := ParseRatingCount(tt.raw)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseRatingCount(%q) = %d; want nil", tt.raw, *got)
		case tt.want != nil && got == nil:
			t.Errorf("ParseRatingCount(%q) = nil; want %d", tt.raw, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("ParseRatingCount(%q) = %d; want %d", tt.raw, *got, *tt.want)
		}
	}
}

func TestProductURL(t *testing.T) {
	got := ProductURL("B0ABCD1234")
	if got == nil || *got != "https://www.amazon.com/dp/B0ABCD1234" {
		t.Errorf("ProductURL(\"B0ABCD1234\") = %v; want the canonical /dp/ URL", got)
	}

	if got := ProductURL(""); got != nil {
		t.Errorf("ProductURL(\"\") = %q; want nil", *got)
	}
	if got := ProductURL("   "); got != nil {
		t.Errorf("ProductURL(\"   \") = %q; want nil", *got)
	}
}

// test helpers shared across the services tests

func ptrTime(t time.Time) *time.Time { return &t }
func ptrFloat(f float64) *float64    { return &f }
func ptrInt(i int) *int              { return &i }

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtFloatPtr(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
