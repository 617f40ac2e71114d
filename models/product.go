package models

import "errors"

// Product is read-only catalog data. Category-specific attributes (capacity,
// energy rating, type, screen size, resolution) are optional and empty for
// products of other categories.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"` // NPR, whole rupees
	Image    string   `json:"image,omitempty"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Brand    string   `json:"brand"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`

	Capacity     string `json:"capacity,omitempty"`
	EnergyRating string `json:"energyRating,omitempty"`
	Type         string `json:"type,omitempty"`
	Size         string `json:"size,omitempty"`
	Resolution   string `json:"resolution,omitempty"`
}

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPopular   SortKey = "popular"
	SortRating    SortKey = "rating"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// ParseSortKey maps a query-string value to a SortKey. Empty input falls back
// to relevance ordering.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortRelevance, SortPopular, SortRating, SortPriceLow, SortPriceHigh:
		return SortKey(s), nil
	case "":
		return SortRelevance, nil
	default:
		return "", errors.New("invalid sort key")
	}
}

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterSpec describes one search request. Empty Brands/Categories mean no
// restriction; a nil PriceRange means no price restriction.
type FilterSpec struct {
	Query      string      `json:"query"`
	Brands     []string    `json:"brands,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Sort       SortKey     `json:"sort"`
}

// FacetMetadata lists the filter options the storefront can offer: distinct
// brands and categories plus the fixed price buckets.
type FacetMetadata struct {
	Brands      []string      `json:"brands"`
	Categories  []string      `json:"categories"`
	PriceRanges []PriceBucket `json:"priceRanges"`
}

// PriceBucket is a labelled price range; Max < 0 means unbounded above.
type PriceBucket struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
}
