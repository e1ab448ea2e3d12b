// internal/handlers/history.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carbonwise/carbonwise-backend/internal/i18n"
	"github.com/carbonwise/carbonwise-backend/internal/services"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

type HistoryHandler struct {
	history *services.HistoryService
}

type AddHistoryRequest struct {
	ProductID string `json:"product_id" validate:"required,barcode"`
}

func NewHistoryHandler(history *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		history: history,
	}
}

// POST /history
func (h *HistoryHandler) AddToHistory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	entry, err := h.history.Append(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotAddable) {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyHistoryAddFailed), nil)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyHistoryAdded),
		"entry":   entry,
	})
}

// GET /history
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	entries, total, err := h.history.List(c.Request.Context(), userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(entries, total, params)
	utils.PaginatedResponse(c, result)
}

// DELETE /history/:scan_id
func (h *HistoryHandler) RemoveFromHistory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scanID, err := uuid.Parse(c.Param("scan_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid scan ID", nil)
		return
	}

	if err := h.history.Remove(c.Request.Context(), userID, scanID); err != nil {
		if errors.Is(err, services.ErrScanNotFound) {
			utils.NotFoundResponse(c, i18n.KeyHistoryScanMissing)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyHistoryRemoved),
	})
}

// GET /history/ecoscore
func (h *HistoryHandler) GetEcoscoreAverage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	average, err := h.history.Average(c.Request.Context(), userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"ecoscore_average": average,
	})
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, false
	}

	return userID, true
}
