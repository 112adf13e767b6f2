package amazon

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"

	"amazon-deal-finder/config"
	"amazon-deal-finder/models"
	"amazon-deal-finder/utils"
)

// Scraper harvests raw product cards from Amazon search-results pages. It
// only collects text: every field stays exactly as rendered, and all typed
// parsing happens downstream in the services layer.
type Scraper struct {
	cfg      *config.Config
	logger   *utils.Logger
	pool     *utils.WorkerPool
	seenASIN *utils.StringSet
	retry    *utils.RetryConfig

	mu       sync.Mutex
	products []*models.RawProduct
}

// New creates a ready-to-use Amazon Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:      cfg,
		logger:   logger,
		pool:     utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitMs),
		seenASIN: utils.NewStringSet(),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		products: make([]*models.RawProduct, 0),
	}
}

// Scrape drives the search-results pagination until MaxListings cards have
// been collected or no next page exists.
func (s *Scraper) Scrape() ([]*models.RawProduct, error) {
	s.logger.Info("[amazon] Starting scrape — query: %q, target: %d listings",
		s.cfg.SearchQuery, s.cfg.MaxListings)

	chromeBin := findChromeBinary(s.cfg.ChromeBin)
	s.logger.Info("[amazon] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	silentCtx, cancelSilent := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelSilent()
	allocCtx = silentCtx

	currentURL := s.cfg.SearchURL()
	for page := 1; len(s.products) < s.cfg.MaxListings; page++ {
		s.logger.Info("[amazon] Scraping page %d — URL: %s", page, currentURL)

		pageProducts, nextURL, err := s.scrapePage(allocCtx, currentURL, page)
		if err != nil {
			s.logger.Error("[amazon] Page %d failed: %v", page, err)
			break
		}

		if len(pageProducts) == 0 {
			s.logger.Warn("[amazon] Page %d returned 0 product cards — stopping", page)
			break
		}

		// Cards frequently omit price or delivery on the search page; fill
		// those in from the product detail pages.
		s.enrichProducts(allocCtx, pageProducts)

		s.mu.Lock()
		s.products = append(s.products, pageProducts...)
		s.mu.Unlock()

		s.logger.Info("[amazon] Page %d done — collected %d products so far", page, len(s.products))

		if nextURL == "" {
			break
		}

		currentURL = nextURL
		time.Sleep(time.Duration(s.cfg.RateLimitMs) * time.Millisecond)
	}

	if len(s.products) > s.cfg.MaxListings {
		s.products = s.products[:s.cfg.MaxListings]
	}

	s.logger.Info("[amazon] Scrape complete — total raw products: %d", len(s.products))
	return s.products, nil
}

// scrapePage loads one search-results page and extracts its product cards.
func (s *Scraper) scrapePage(allocCtx context.Context, pageURL string, pageNum int) ([]*models.RawProduct, string, error) {
	var rawProducts []*models.RawProduct
	var nextURL string

	err := s.retry.Do(fmt.Sprintf("scrape-page-%d", pageNum), func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()

		ctx, cancelTimeout := context.WithTimeout(ctx, 90*time.Second)
		defer cancelTimeout()

		type cardData struct {
			ASIN          string   `json:"asin"`
			Title         string   `json:"title"`
			PriceWhole    string   `json:"priceWhole"`
			PriceFraction string   `json:"priceFraction"`
			Rating        string   `json:"rating"`
			RatingCount   string   `json:"ratingCount"`
			DeliveryTexts []string `json:"deliveryTexts"`
		}

		var cards []cardData
		var nextPageURL string

		err := chromedp.Run(ctx,
			chromedp.Navigate(pageURL),
			chromedp.Sleep(5*time.Second),

			// Scroll so lazy-loaded cards and delivery blocks render
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight / 2)`, nil),
			chromedp.Sleep(2*time.Second),
			chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
			chromedp.Sleep(2*time.Second),

			// Extract search-result cards as raw text fields
			chromedp.Evaluate(`
				(function() {
					var results = [];
					var limit = `+fmt.Sprintf("%d", s.cfg.MaxListings)+`;

					var cards = document.querySelectorAll('div[data-component-type="s-search-result"]');
					for (var i = 0; i < cards.length && results.length < limit; i++) {
						var card = cards[i];
						var asin = card.getAttribute('data-asin') || '';

						// Sponsored placements repeat organic results
						if (card.querySelector('[data-component-type="sp-sponsored-result"]')) continue;

						var titleEl = card.querySelector('h2 a span') ||
						              card.querySelector('h2 span') ||
						              card.querySelector('[data-cy="title-recipe"] span');
						var title = titleEl ? titleEl.innerText.trim() : '';

						var wholeEl = card.querySelector('span.a-price:not([data-a-strike]) .a-price-whole');
						var fracEl  = card.querySelector('span.a-price:not([data-a-strike]) .a-price-fraction');
						var whole = wholeEl ? wholeEl.innerText.replace(/[^0-9]/g, '') : '';
						var frac  = fracEl ? fracEl.innerText.replace(/[^0-9]/g, '') : '';

						// Star widget exposes "4.5 out of 5 stars" via its alt span
						var ratingEl = card.querySelector('i.a-icon-star-small span.a-icon-alt') ||
						               card.querySelector('i.a-icon-star span.a-icon-alt');
						var rating = ratingEl ? ratingEl.textContent.trim() : '';

						var countEl = card.querySelector('[data-cy="reviews-block"] a span') ||
						              card.querySelector('span.a-size-base.s-underline-text');
						var ratingCount = countEl ? countEl.innerText.trim() : '';

						// A card can show several delivery promises (standard
						// and expedited); keep the bold date fragments of each
						var deliveryTexts = [];
						var deliveryEls = card.querySelectorAll('[data-cy="delivery-recipe"] span.a-text-bold');
						for (var d = 0; d < deliveryEls.length; d++) {
							var t = deliveryEls[d].innerText.trim();
							if (t) deliveryTexts.push(t);
						}

						results.push({
							asin:          asin,
							title:         title,
							priceWhole:    whole,
							priceFraction: frac,
							rating:        rating,
							ratingCount:   ratingCount,
							deliveryTexts: deliveryTexts
						});
					}

					return results;
				})()
			`, &cards),

			// Find the next results page
			chromedp.Evaluate(`
				(function() {
					var next = document.querySelector('a.s-pagination-next:not(.s-pagination-disabled)') ||
					           document.querySelector('a[aria-label*="next page"]');
					return next && next.href ? next.href : '';
				})()
			`, &nextPageURL),
		)

		if err != nil {
			return fmt.Errorf("chromedp page scrape: %w", err)
		}

		s.logger.Debug("[amazon] Page %d — found %d cards", pageNum, len(cards))

		for _, c := range cards {
			if c.ASIN == "" {
				continue
			}
			if !s.seenASIN.Add(c.ASIN) {
				s.logger.Debug("[amazon] Skipping duplicate ASIN: %s", c.ASIN)
				continue
			}

			rawProducts = append(rawProducts, &models.RawProduct{
				ASIN:            c.ASIN,
				Title:           c.Title,
				PriceWhole:      c.PriceWhole,
				PriceFraction:   c.PriceFraction,
				RatingText:      c.Rating,
				RatingCountText: c.RatingCount,
				DeliveryTexts:   c.DeliveryTexts,
				ScrapedAt:       time.Now(),
			})
		}

		nextURL = nextPageURL
		return nil
	})

	return rawProducts, nextURL, err
}

// enrichProducts visits detail pages for cards that are missing price or
// delivery information on the search page.
func (s *Scraper) enrichProducts(allocCtx context.Context, products []*models.RawProduct) {
	for _, product := range products {
		p := product
		if p.ASIN == "" {
			continue
		}

		needsEnrichment := p.PriceWhole == "" || p.PriceFraction == "" || len(p.DeliveryTexts) == 0
		if !needsEnrichment {
			continue
		}

		s.pool.Submit(func() {
			enriched, err := s.scrapeDetailPage(allocCtx, p.ASIN)
			if err != nil {
				s.logger.Warn("[amazon] Detail page failed for %s: %v", p.ASIN, err)
				return
			}

			if p.PriceWhole == "" && enriched.PriceWhole != "" {
				p.PriceWhole = enriched.PriceWhole
				p.PriceFraction = enriched.PriceFraction
			}
			if len(p.DeliveryTexts) == 0 {
				p.DeliveryTexts = enriched.DeliveryTexts
			}
			if p.Title == "" {
				p.Title = enriched.Title
			}

			s.logger.Debug("[amazon] Enriched: %s", p.ASIN)
		})
	}
	s.pool.Wait()
}

// scrapeDetailPage visits one product page and extracts the fields the
// search card was missing.
func (s *Scraper) scrapeDetailPage(allocCtx context.Context, asin string) (*models.RawProduct, error) {
	product := &models.RawProduct{ASIN: asin}
	url := "https://" + s.cfg.AmazonDomain + "/dp/" + asin

	err := s.retry.Do("detail-page", func() error {
		ctx, cancel := chromedp.NewContext(allocCtx)
		defer cancel()

		ctx, cancelTimeout := context.WithTimeout(ctx, 60*time.Second)
		defer cancelTimeout()

		type detailData struct {
			Title         string   `json:"title"`
			PriceWhole    string   `json:"priceWhole"`
			PriceFraction string   `json:"priceFraction"`
			DeliveryTexts []string `json:"deliveryTexts"`
		}

		var details detailData

		err := chromedp.Run(ctx,
			chromedp.Navigate(url),
			chromedp.Sleep(4*time.Second),

			chromedp.Evaluate(`
				(function() {
					var result = { title: '', priceWhole: '', priceFraction: '', deliveryTexts: [] };

					var titleEl = document.querySelector('#productTitle');
					if (titleEl) result.title = titleEl.innerText.trim();

					var wholeEl = document.querySelector('#corePrice_feature_div .a-price-whole') ||
					              document.querySelector('#apex_desktop .a-price-whole');
					var fracEl  = document.querySelector('#corePrice_feature_div .a-price-fraction') ||
					              document.querySelector('#apex_desktop .a-price-fraction');
					if (wholeEl) result.priceWhole = wholeEl.innerText.replace(/[^0-9]/g, '');
					if (fracEl)  result.priceFraction = fracEl.innerText.replace(/[^0-9]/g, '');

					var deliveryEls = document.querySelectorAll(
						'#deliveryBlockMessage span.a-text-bold, #mir-layout-DELIVERY_BLOCK span.a-text-bold');
					for (var i = 0; i < deliveryEls.length; i++) {
						var t = deliveryEls[i].innerText.trim();
						if (t) result.deliveryTexts.push(t);
					}

					return result;
				})()
			`, &details),
		)

		if err != nil {
			return fmt.Errorf("chromedp detail extract: %w", err)
		}

		product.Title = details.Title
		product.PriceWhole = details.PriceWhole
		product.PriceFraction = details.PriceFraction
		product.DeliveryTexts = details.DeliveryTexts

		return nil
	})

	return product, err
}

// findChromeBinary locates a Chrome/Chromium binary, preferring the
// configured path.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
