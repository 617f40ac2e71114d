package catalogControllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sudippandey619/EcommerceSite-Homeappliance/cache"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/catalog"
	"github.com/Sudippandey619/EcommerceSite-Homeappliance/models"
)

// GET /products
func ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Products())
	}
}

// GET /products/facets
func GetFacets() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Facets(catalog.Products()))
	}
}

// GET /products/search?q=&brands=&categories=&min_price=&max_price=&sort=
func SearchProducts(redisCache *cache.Redis) gin.HandlerFunc {
	return func(c *gin.Context) {
		spec, err := parseFilterSpec(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		key := cache.SearchKey(spec)
		if cached, ok := redisCache.GetSearch(c.Request.Context(), key); ok {
			c.JSON(http.StatusOK, gin.H{"query": spec.Query, "count": len(cached), "products": cached, "cached": true})
			return
		}

		results := catalog.Search(catalog.Products(), spec)
		redisCache.SetSearch(c.Request.Context(), key, results)

		c.JSON(http.StatusOK, gin.H{"query": spec.Query, "count": len(results), "products": results})
	}
}

// GET /category/:name?q=&sort=
func BrowseCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("name")

		// The category page only offers the 4-way sort, no relevance mode.
		sortKey, err := models.ParseSortKey(c.DefaultQuery("sort", "popular"))
		if err != nil || sortKey == models.SortRelevance {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sort key"})
			return
		}

		products := catalog.BrowseCategory(catalog.CategoryProducts(slug), c.Query("q"), sortKey)
		c.JSON(http.StatusOK, gin.H{
			"category": catalog.CategoryName(slug),
			"slug":     slug,
			"count":    len(products),
			"products": products,
		})
	}
}

func parseFilterSpec(c *gin.Context) (models.FilterSpec, error) {
	spec := models.FilterSpec{Query: c.Query("q")}

	if brands := c.Query("brands"); brands != "" {
		spec.Brands = strings.Split(brands, ",")
	}
	if categories := c.Query("categories"); categories != "" {
		spec.Categories = strings.Split(categories, ",")
	}

	sortKey, err := models.ParseSortKey(c.Query("sort"))
	if err != nil {
		return spec, err
	}
	spec.Sort = sortKey

	minStr, maxStr := c.Query("min_price"), c.Query("max_price")
	if minStr != "" || maxStr != "" {
		pr := &models.PriceRange{Min: 0, Max: math.MaxInt32}
		if minStr != "" {
			if pr.Min, err = strconv.Atoi(minStr); err != nil {
				return spec, errors.New("invalid min_price")
			}
		}
		if maxStr != "" {
			if pr.Max, err = strconv.Atoi(maxStr); err != nil {
				return spec, errors.New("invalid max_price")
			}
		}
		spec.PriceRange = pr
	}

	return spec, nil
}
