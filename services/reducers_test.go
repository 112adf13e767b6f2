package services

import (
	"testing"
	"time"

	"amazon-deal-finder/models"
)

func pricedListing(asin string, price float64) *models.Listing {
	return &models.Listing{ProductURL: ProductURL(asin), Price: ptrFloat(price)}
}

func ratedListing(asin string, rating float64) *models.Listing {
	return &models.Listing{ProductURL: ProductURL(asin), Rating: ptrFloat(rating)}
}

func deliveredListing(asin string, month time.Month, day int) *models.Listing {
	return &models.Listing{ProductURL: ProductURL(asin), DeliveryDate: ptrTime(currentYearDate(month, day))}
}

func TestLowestPriceIgnoresMissing(t *testing.T) {
	listings := []*models.Listing{
		pricedListing("A", 5),
		pricedListing("B", 5),
		{ProductURL: ProductURL("C")}, // no price
		pricedListing("D", 8),
	}

	lowest := LowestPrice(listings)
	if lowest == nil || *lowest != 5 {
		t.Fatalf("LowestPrice: got %v, want 5", fmtFloatPtr(lowest))
	}

	matched := ListingsWithLowestPrice(listings)
	if len(matched) != 2 {
		t.Fatalf("ListingsWithLowestPrice: got %d listings, want 2", len(matched))
	}
	if matched[0] != listings[0] || matched[1] != listings[1] {
		t.Error("ListingsWithLowestPrice did not preserve input order")
	}
}

func TestHighestRatingTreatsZeroAsMissing(t *testing.T) {
	listings := []*models.Listing{
		ratedListing("A", 0),
		ratedListing("B", 4.2),
		{ProductURL: ProductURL("C")}, // no rating
		ratedListing("D", 3.9),
	}

	highest := HighestRating(listings)
	if highest == nil || *highest != 4.2 {
		t.Fatalf("HighestRating: got %v, want 4.2", fmtFloatPtr(highest))
	}

	matched := ListingsWithHighestRating(listings)
	if len(matched) != 1 || matched[0] != listings[1] {
		t.Errorf("ListingsWithHighestRating: got %d listings, want exactly listing B", len(matched))
	}
}

func TestHighestRatingAllZero(t *testing.T) {
	listings := []*models.Listing{ratedListing("A", 0), ratedListing("B", 0)}

	if got := HighestRating(listings); got != nil {
		t.Errorf("HighestRating over all-zero ratings: got %v, want nil", *got)
	}
	if got := ListingsWithHighestRating(listings); len(got) != 0 {
		t.Errorf("ListingsWithHighestRating over all-zero ratings: got %d listings, want 0", len(got))
	}
}

func TestEarliestDeliveryComparesByCalendarDay(t *testing.T) {
	early := currentYearDate(time.August, 1)
	lateClock := early.Add(7 * time.Hour) // same day, different clock

	listings := []*models.Listing{
		{ProductURL: ProductURL("A"), DeliveryDate: &lateClock},
		deliveredListing("B", time.August, 3),
		deliveredListing("C", time.August, 1),
		{ProductURL: ProductURL("D")}, // no date
	}

	matched := ListingsWithEarliestDelivery(listings)
	if len(matched) != 2 {
		t.Fatalf("ListingsWithEarliestDelivery: got %d listings, want 2", len(matched))
	}
	if matched[0] != listings[0] || matched[1] != listings[2] {
		t.Error("ListingsWithEarliestDelivery did not match both same-day listings in order")
	}
}

func TestReducersEmptyPopulation(t *testing.T) {
	// Listings exist but none carries the relevant field.
	listings := []*models.Listing{{ProductURL: ProductURL("A")}, {ProductURL: ProductURL("B")}}

	if got := LowestPrice(listings); got != nil {
		t.Errorf("LowestPrice: got %v, want nil", *got)
	}
	if got := EarliestDeliveryDate(listings); got != nil {
		t.Errorf("EarliestDeliveryDate: got %v, want nil", *got)
	}
	if got := HighestRating(listings); got != nil {
		t.Errorf("HighestRating: got %v, want nil", *got)
	}
	if got := ListingsWithLowestPrice(listings); len(got) != 0 {
		t.Errorf("ListingsWithLowestPrice: got %d listings, want 0", len(got))
	}
	if got := ListingsWithLowestPrice(nil); len(got) != 0 {
		t.Errorf("ListingsWithLowestPrice(nil): got %d listings, want 0", len(got))
	}
}
