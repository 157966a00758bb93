package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	catalogsvc "storefront/internal/service/catalog"
)

// catalogHandler runs an aggregate fetch for the requested category slugs
// and returns the merged list, or collapses to an error when any slug fails.
func catalogHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		slugs := splitSlugs(c.Query("categories"))
		if len(slugs) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categories query parameter required"})
			return
		}

		if _, err := svc.Load(c.Request.Context(), slugs); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": catalogsvc.UnavailableMessage})
			return
		}
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}

// catalogStateHandler exposes the last aggregate state without refetching.
func catalogStateHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Snapshot())
	}
}

func productHandler(products ProductGateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product id must be an integer"})
			return
		}

		product, err := products.FetchProduct(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": catalogsvc.UnavailableMessage})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func splitSlugs(raw string) []string {
	parts := strings.Split(raw, ",")
	slugs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			slugs = append(slugs, p)
		}
	}
	return slugs
}
