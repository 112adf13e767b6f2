package services

import (
	"testing"
	"time"

	"amazon-deal-finder/models"
	"amazon-deal-finder/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLogger() }

func TestBuilderOneListingPerRawProduct(t *testing.T) {
	b := NewBuilder(newTestLogger())
	raw := []*models.RawProduct{
		{ASIN: "B000000001", Title: "Mouse A", PriceWhole: "12", PriceFraction: "99"},
		{ASIN: "B000000002", Title: "Mouse B"},
		{}, // entirely empty card still yields a listing
	}

	listings := b.Build(raw)
	if len(listings) != 3 {
		t.Fatalf("Build: got %d listings, want 3", len(listings))
	}
}

func TestBuilderKeepsEarliestDeliveryDate(t *testing.T) {
	b := NewBuilder(newTestLogger())
	raw := []*models.RawProduct{{
		ASIN:          "B000000001",
		DeliveryTexts: []string{"Wed, Aug 4", "Mon, Aug 2", "not a date"},
	}}

	listings := b.Build(raw)
	if listings[0].DeliveryDate == nil {
		t.Fatal("DeliveryDate is nil; want the earliest parsed date")
	}
	want := currentYearDate(time.August, 2)
	if !listings[0].DeliveryDate.Equal(want) {
		t.Errorf("DeliveryDate: got %v, want %v", *listings[0].DeliveryDate, want)
	}
}

func TestBuilderNoParsableDeliveryDate(t *testing.T) {
	b := NewBuilder(newTestLogger())
	raw := []*models.RawProduct{{
		ASIN:          "B000000001",
		DeliveryTexts: []string{"Overnight", "tomorrow"},
	}}

	listings := b.Build(raw)
	if listings[0].DeliveryDate != nil {
		t.Errorf("DeliveryDate: got %v, want nil", *listings[0].DeliveryDate)
	}
}

func TestBuilderFieldsParseIndependently(t *testing.T) {
	b := NewBuilder(newTestLogger())
	raw := []*models.RawProduct{{
		ASIN:            "B000000001",
		PriceWhole:      "12",
		PriceFraction:   "", // missing fraction kills the price, nothing else
		RatingText:      "4.5 out of 5 stars",
		RatingCountText: "1,234",
	}}

	l := b.Build(raw)[0]
	if l.Price != nil {
		t.Errorf("Price: got %v, want nil", *l.Price)
	}
	if l.Rating == nil || *l.Rating != 4.5 {
		t.Errorf("Rating: got %v, want 4.5", fmtFloatPtr(l.Rating))
	}
	if l.RatingCount == nil || *l.RatingCount != 1234 {
		t.Errorf("RatingCount: got %v, want 1234", l.RatingCount)
	}
	if l.ProductURL == nil {
		t.Error("ProductURL: got nil, want derived URL")
	}
}
