package services

import (
	"time"

	"amazon-deal-finder/models"
)

// The reducers below share one shape per axis: an extremum lookup and a
// filter returning every listing at that extremum, in input order. Listings
// missing the relevant field are ignored, never an error — an empty
// population simply yields nil / an empty slice.

// EarliestDeliveryDate returns the soonest delivery date present in the
// collection, or nil when no listing has one. Dates are compared by calendar
// day; builders already normalize them to UTC midnight.
func EarliestDeliveryDate(listings []*models.Listing) *time.Time {
	var earliest *time.Time
	for _, l := range listings {
		if l.DeliveryDate == nil {
			continue
		}
		if earliest == nil || l.DeliveryDate.Before(*earliest) {
			earliest = l.DeliveryDate
		}
	}
	return earliest
}

// ListingsWithEarliestDelivery returns every listing delivered on the
// earliest day, preserving input order.
func ListingsWithEarliestDelivery(listings []*models.Listing) []*models.Listing {
	earliest := EarliestDeliveryDate(listings)
	if earliest == nil {
		return nil
	}

	var matched []*models.Listing
	for _, l := range listings {
		if l.DeliveryDate != nil && sameDay(*l.DeliveryDate, *earliest) {
			matched = append(matched, l)
		}
	}
	return matched
}

// LowestPrice returns the minimum price in the collection, or nil when no
// listing has a price.
func LowestPrice(listings []*models.Listing) *float64 {
	var lowest *float64
	for _, l := range listings {
		if l.Price == nil {
			continue
		}
		if lowest == nil || *l.Price < *lowest {
			lowest = l.Price
		}
	}
	return lowest
}

// ListingsWithLowestPrice returns every listing priced exactly at the
// minimum, preserving input order.
func ListingsWithLowestPrice(listings []*models.Listing) []*models.Listing {
	lowest := LowestPrice(listings)
	if lowest == nil {
		return nil
	}

	var matched []*models.Listing
	for _, l := range listings {
		if l.Price != nil && *l.Price == *lowest {
			matched = append(matched, l)
		}
	}
	return matched
}

// HighestRating returns the maximum rating in the collection. A zero rating
// means the product has no reviews yet, so zero is treated the same as a
// missing rating. nil when no listing has a usable rating.
func HighestRating(listings []*models.Listing) *float64 {
	var highest *float64
	for _, l := range listings {
		if l.Rating == nil || *l.Rating == 0 {
			continue
		}
		if highest == nil || *l.Rating > *highest {
			highest = l.Rating
		}
	}
	return highest
}

// ListingsWithHighestRating returns every listing rated exactly at the
// maximum, preserving input order. The zero-rating rule above applies.
func ListingsWithHighestRating(listings []*models.Listing) []*models.Listing {
	highest := HighestRating(listings)
	if highest == nil {
		return nil
	}

	var matched []*models.Listing
	for _, l := range listings {
		if l.Rating != nil && *l.Rating == *highest {
			matched = append(matched, l)
		}
	}
	return matched
}

// sameDay reports whether two timestamps fall on the same calendar day,
// ignoring any time-of-day component.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
