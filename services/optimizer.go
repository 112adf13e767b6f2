package services

import (
	"amazon-deal-finder/models"
	"amazon-deal-finder/utils"
)

// Canonical criteria orders driven by the optimizer service. Each order
// front-loads the axis it is named after; the remaining criteria act as
// tie-breakers.
var (
	fastestDeliveryOrder = []models.Criterion{
		models.CriterionDeliveryDate, models.CriterionPrice, models.CriterionRating,
	}
	cheapestOrder = []models.Criterion{
		models.CriterionPrice, models.CriterionRating, models.CriterionDeliveryDate,
	}
	highestRatingOrder = []models.Criterion{
		models.CriterionRating, models.CriterionPrice, models.CriterionDeliveryDate,
	}
)

// OptimizerService narrows listing collections down to a single best match
// per criteria order.
type OptimizerService struct {
	logger *utils.Logger
}

// NewOptimizerService creates an OptimizerService with the given logger.
func NewOptimizerService(logger *utils.Logger) *OptimizerService {
	return &OptimizerService{logger: logger}
}

// Optimize narrows the listings through each criterion in order and returns
// the single best match, or nil when no choice can be made.
//
// A criterion that cannot discriminate — no current candidate carries that
// field — is skipped and the candidate set stays as it was. An unrecognized
// criterion anywhere in the list invalidates the whole call. After the last
// criterion, a rating tie-break runs over whatever candidates remain; ties
// beyond that resolve to the first candidate in input order.
func (s *OptimizerService) Optimize(listings []*models.Listing, criteria []models.Criterion) *models.Listing {
	candidates := listings

	for _, criterion := range criteria {
		narrowed, ok := narrowByCriterion(candidates, criterion)
		if !ok {
			s.logger.Warn("[optimizer] Unknown criterion %q — aborting optimization", criterion)
			return nil
		}
		if len(narrowed) == 0 {
			// Nothing to discriminate on; keep the current candidates.
			continue
		}
		candidates = narrowed
	}

	if len(candidates) > 1 {
		// Final disambiguation is always by rating, even when RATING already
		// appeared in the criteria list.
		if rated := ListingsWithHighestRating(candidates); len(rated) > 0 {
			candidates = rated
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// narrowByCriterion applies the at-extremum filter for one criterion.
// ok is false for a criterion tag outside the recognized set.
func narrowByCriterion(listings []*models.Listing, criterion models.Criterion) ([]*models.Listing, bool) {
	switch criterion {
	case models.CriterionPrice:
		return ListingsWithLowestPrice(listings), true
	case models.CriterionDeliveryDate:
		return ListingsWithEarliestDelivery(listings), true
	case models.CriterionRating:
		return ListingsWithHighestRating(listings), true
	default:
		return nil, false
	}
}

// FindOptimalProducts runs the three canonical optimizations and reports the
// winning product URL for each. The computation is pure: the same listings
// always produce the same result.
func (s *OptimizerService) FindOptimalProducts(listings []*models.Listing) *models.OptimalProductURLs {
	result := &models.OptimalProductURLs{}

	if fastest := s.Optimize(listings, fastestDeliveryOrder); fastest != nil {
		result.FastestDelivery = fastest.ProductURL
	}
	if cheapest := s.Optimize(listings, cheapestOrder); cheapest != nil {
		result.Cheapest = cheapest.ProductURL
	}
	if topRated := s.Optimize(listings, highestRatingOrder); topRated != nil {
		result.HighestRating = topRated.ProductURL
	}

	s.logger.Info("[optimizer] Optimized %d listings — cheapest: %s | fastest: %s | top rated: %s",
		len(listings), urlOrNone(result.Cheapest), urlOrNone(result.FastestDelivery), urlOrNone(result.HighestRating))

	return result
}

func urlOrNone(url *string) string {
	if url == nil {
		return "(none)"
	}
	return *url
}
