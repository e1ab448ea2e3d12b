// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carbonwise/carbonwise-backend/internal/services"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

type UserHandler struct {
	history *services.HistoryService
}

func NewUserHandler(history *services.HistoryService) *UserHandler {
	return &UserHandler{
		history: history,
	}
}

// GET /users/:id/ecoscore
//
// Cross-user read used by the social screens; any authenticated caller may
// read another user's average.
func (h *UserHandler) GetUserEcoscore(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	average, err := h.history.Average(c.Request.Context(), userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user_id":          userID,
		"ecoscore_average": average,
	})
}
