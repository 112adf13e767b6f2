package main

import (
	"fmt"
	"os"

	"amazon-deal-finder/config"
	"amazon-deal-finder/scraper/amazon"
	"amazon-deal-finder/services"
	"amazon-deal-finder/storage"
	"amazon-deal-finder/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Amazon Deal Finder starting ===")
	logger.Info("Config — query: %q | max listings: %d | concurrency: %d | rate: %dms",
		cfg.SearchQuery, cfg.MaxListings, cfg.MaxConcurrency, cfg.RateLimitMs)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	amazonScraper := amazon.New(cfg, logger)
	rawProducts, err := amazonScraper.Scrape()
	if err != nil {
		logger.Error("Amazon scrape failed: %v", err)
	}

	if len(rawProducts) == 0 {
		logger.Error("No products were scraped. Exiting.")
		os.Exit(1)
	}

	logger.Info("Scraped %d raw products — writing snapshot to CSV...", len(rawProducts))

	if err := csvWriter.WriteRaw(rawProducts); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("Raw snapshot saved to %s", cfg.CSVOutputPath)
	}

	builder := services.NewBuilder(logger)
	listings := builder.Build(rawProducts)

	optimizer := services.NewOptimizerService(logger)
	result := optimizer.FindOptimalProducts(listings)
	optimizer.PrintReport(listings, result)

	fmt.Printf("  Done. Raw snapshot → %s\n\n", cfg.CSVOutputPath)
}
