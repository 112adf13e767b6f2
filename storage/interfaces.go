package storage

import "amazon-deal-finder/models"

// RawProductWriter is the interface for exporting unprocessed scraped data.
type RawProductWriter interface {
	WriteRaw(products []*models.RawProduct) error
	Close() error
}
