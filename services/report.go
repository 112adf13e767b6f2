package services

import (
	"fmt"
	"strings"

	"amazon-deal-finder/models"
)

// PrintReport renders the optimization outcome for human consumption. It is
// presentation only: every decision was already made by the optimizer.
func (s *OptimizerService) PrintReport(listings []*models.Listing, result *models.OptimalProductURLs) {
	sep := strings.Repeat("═", 64)
	thin := strings.Repeat("─", 64)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🛒 AMAZON DEAL FINDER RESULTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Listings considered : \033[1m%d\033[0m\n\n", len(listings))

	printWinner("Cheapest", listings, result.Cheapest, thin)
	printWinner("Fastest Delivery", listings, result.FastestDelivery, thin)
	printWinner("Highest Rating", listings, result.HighestRating, thin)

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

func printWinner(label string, listings []*models.Listing, url *string, thin string) {
	fmt.Printf("\033[1;33m  %s\033[0m\n", label)
	fmt.Printf("  %s\n", thin)

	winner := findByURL(listings, url)
	if winner == nil {
		fmt.Printf("  No listing selected\n\n")
		return
	}

	fmt.Printf("  %s\n", truncate(winner.Title, 58))
	if winner.Price != nil {
		fmt.Printf("  Price       : \033[1;32m%.2f\033[0m\n", *winner.Price)
	}
	if winner.DeliveryDate != nil {
		fmt.Printf("  Delivery    : %s\n", winner.DeliveryDate.Format("Mon, Jan 2"))
	}
	if winner.Rating != nil {
		count := ""
		if winner.RatingCount != nil {
			count = fmt.Sprintf(" (%d reviews)", *winner.RatingCount)
		}
		fmt.Printf("  Rating      : \033[1;32m%.1f ★\033[0m%s\n", *winner.Rating, count)
	}
	fmt.Printf("  URL         : %s\n\n", *url)
}

func findByURL(listings []*models.Listing, url *string) *models.Listing {
	if url == nil {
		return nil
	}
	for _, l := range listings {
		if l.ProductURL != nil && *l.ProductURL == *url {
			return l
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
