package models

import "time"

// RawProduct holds unprocessed text fields for one search-result card,
// exactly as extracted from the browser. Any field may be empty.
type RawProduct struct {
	ASIN            string
	Title           string
	PriceWhole      string
	PriceFraction   string
	RatingText      string
	RatingCountText string
	DeliveryTexts   []string
	ScrapedAt       time.Time
}

// Listing is the typed record built from one RawProduct. Every attribute is
// independently optional: a nil pointer means the field could not be
// extracted, which keeps "not extractable" distinct from a legitimate zero.
// Listings are built once and never mutated.
type Listing struct {
	Title        string
	ProductURL   *string
	Price        *float64
	DeliveryDate *time.Time
	Rating       *float64
	RatingCount  *int
}

// Criterion is an axis along which listings are ranked.
type Criterion string

const (
	CriterionPrice        Criterion = "PRICE"
	CriterionDeliveryDate Criterion = "DELIVERY_DATE"
	CriterionRating       Criterion = "RATING"
)

// OptimalProductURLs holds the winning product URL for each of the three
// canonical criteria orders. A nil entry means no listing could be chosen.
type OptimalProductURLs struct {
	Cheapest        *string
	FastestDelivery *string
	HighestRating   *string
}
