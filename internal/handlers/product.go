// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/carbonwise/carbonwise-backend/internal/i18n"
	"github.com/carbonwise/carbonwise-backend/internal/services"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

type ProductHandler struct {
	recommendations *services.RecommendationService
}

func NewProductHandler(recommendations *services.RecommendationService) *ProductHandler {
	return &ProductHandler{
		recommendations: recommendations,
	}
}

// GET /products/:barcode
func (h *ProductHandler) GetProduct(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		utils.BadRequestResponse(c, "Invalid barcode", nil)
		return
	}

	filters := services.RecommendFilters{}

	if limitStr := c.Query("num_recommendations"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			utils.BadRequestResponse(c, "num_recommendations must be a positive integer", nil)
			return
		}
		filters.Limit = limit
	}

	if languages := c.Query("include_languages"); languages != "" {
		filters.Languages = splitParam(languages)
	}
	if countries := c.Query("include_countries"); countries != "" {
		filters.Countries = splitParam(countries)
	}

	detail, err := h.recommendations.GetProductByID(c.Request.Context(), barcode, filters)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, detail)
}

func splitParam(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
