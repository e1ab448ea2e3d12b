// internal/handlers/friend.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carbonwise/carbonwise-backend/internal/i18n"
	"github.com/carbonwise/carbonwise-backend/internal/services"
	"github.com/carbonwise/carbonwise-backend/internal/utils"
)

type FriendHandler struct {
	friendService *services.FriendService
}

type FriendRequestBody struct {
	AddresseeID string `json:"addressee_id" validate:"required,uuid"`
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// POST /friends/requests
func (h *FriendHandler) SendRequest(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req FriendRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	addresseeID, err := uuid.Parse(req.AddresseeID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid addressee ID", nil)
		return
	}

	request, err := h.friendService.SendRequest(userID, addresseeID)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyFriendAlreadyLinked))
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyUserNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFriendRequestSent),
		"request": request,
	})
}

// PUT /friends/requests/:id/accept
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid request ID", nil)
		return
	}

	request, err := h.friendService.AcceptRequest(requestID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyFriendNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFriendRequestAccepted),
		"request": request,
	})
}

// DELETE /friends/:id
func (h *FriendHandler) RemoveFriend(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid friend ID", nil)
		return
	}

	if err := h.friendService.Remove(userID, friendID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyFriendNotFound)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFriendRemoved),
	})
}

// GET /friends
func (h *FriendHandler) ListFriends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"friends": friends,
	})
}

// GET /friends/scores
func (h *FriendHandler) GetFriendScores(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scores, err := h.friendService.FriendScores(c.Request.Context(), userID)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"scores": scores,
	})
}
