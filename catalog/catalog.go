// Package catalog implements filtering, sorting and search over the in-memory
// product catalog. Everything here is a pure function over its inputs: the
// same (products, spec) pair always produces the same ordering.
package catalog

import (
	"sort"
	"strings"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

// Search filters and orders products according to the spec. Products are
// never mutated; the result is a fresh slice.
func Search(products []models.Product, spec models.FilterSpec) []models.Product {
	query := strings.ToLower(spec.Query)

	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesQuery(p, query) {
			continue
		}
		if len(spec.Brands) > 0 && !containsString(spec.Brands, p.Brand) {
			continue
		}
		if len(spec.Categories) > 0 && !containsString(spec.Categories, p.Category) {
			continue
		}
		if spec.PriceRange != nil && (p.Price < spec.PriceRange.Min || p.Price > spec.PriceRange.Max) {
			continue
		}
		results = append(results, p)
	}

	sortProducts(results, spec.Sort, query)
	return results
}

// BrowseCategory is the simpler category-page variant: products are already
// scoped to one category, the text filter only checks name and brand, and
// relevance mode is not offered (default is popular).
func BrowseCategory(products []models.Product, query string, key models.SortKey) []models.Product {
	q := strings.ToLower(query)

	results := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) {
			results = append(results, p)
		}
	}

	if key == models.SortRelevance || key == "" {
		key = models.SortPopular
	}
	sortProducts(results, key, "")
	return results
}

// Facets derives the filter options offered by the search page: distinct
// sorted brands and categories plus the fixed price buckets.
func Facets(products []models.Product) models.FacetMetadata {
	brandSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})
	for _, p := range products {
		brandSet[p.Brand] = struct{}{}
		categorySet[p.Category] = struct{}{}
	}

	brands := make([]string, 0, len(brandSet))
	for b := range brandSet {
		brands = append(brands, b)
	}
	sort.Strings(brands)

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return models.FacetMetadata{
		Brands:      brands,
		Categories:  categories,
		PriceRanges: PriceBuckets(),
	}
}

func matchesQuery(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// sortProducts orders in place, stably, so products the comparator does not
// distinguish keep their catalog order.
func sortProducts(products []models.Product, key models.SortKey, query string) {
	switch key {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case models.SortPopular:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Reviews > products[j].Reviews
		})
	default:
		// Relevance: lines whose name contains the query come first, then
		// both partitions order by review count. Deliberately asymmetric with
		// the other modes; the storefront depends on this exact ordering.
		sort.SliceStable(products, func(i, j int) bool {
			iName := strings.Contains(strings.ToLower(products[i].Name), query)
			jName := strings.Contains(strings.ToLower(products[j].Name), query)
			if iName != jName {
				return iName
			}
			return products[i].Reviews > products[j].Reviews
		})
	}
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
