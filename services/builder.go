package services

import (
	"time"

	"amazon-deal-finder/models"
	"amazon-deal-finder/utils"
)

// Builder assembles typed Listings from raw scraped products.
type Builder struct {
	logger *utils.Logger
}

// NewBuilder creates a Builder with the given logger.
func NewBuilder(logger *utils.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build produces exactly one Listing per RawProduct, however many fields are
// missing. Raw products are never dropped: a card whose every field failed to
// parse still yields a (fully empty) Listing, which the reducers ignore.
func (b *Builder) Build(raw []*models.RawProduct) []*models.Listing {
	listings := make([]*models.Listing, 0, len(raw))

	for _, r := range raw {
		listing := &models.Listing{
			Title:        r.Title,
			ProductURL:   ProductURL(r.ASIN),
			Price:        ParsePrice(r.PriceWhole, r.PriceFraction),
			DeliveryDate: earliestDeliveryDate(r.DeliveryTexts),
			Rating:       ParseRating(r.RatingText),
			RatingCount:  ParseRatingCount(r.RatingCountText),
		}
		listings = append(listings, listing)

		if listing.ProductURL == nil {
			b.logger.Debug("[builder] Card %q has no extractable ASIN", r.Title)
		}
	}

	b.logger.Info("[builder] Built %d listings from %d raw cards", len(listings), len(raw))
	return listings
}

// earliestDeliveryDate parses every delivery text fragment found on a card
// and keeps the earliest date among those that parse. A card can carry
// several delivery promises (standard and expedited); the soonest one is the
// card's delivery date. nil if no fragment parses.
func earliestDeliveryDate(texts []string) *time.Time {
	var earliest *time.Time
	for _, text := range texts {
		date := ParseDeliveryDate(text)
		if date == nil {
			continue
		}
		if earliest == nil || date.Before(*earliest) {
			earliest = date
		}
	}
	return earliest
}
