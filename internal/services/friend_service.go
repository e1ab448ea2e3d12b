// internal/services/friend_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carbonwise/carbonwise-backend/internal/models"
)

// FriendService is the social-graph glue: plain CRUD over friend requests
// plus the cross-user ecoscore comparison built on the history service.
type FriendService struct {
	db            *gorm.DB
	history       *HistoryService
	notifications *NotificationService
}

type FriendScore struct {
	UserID          uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	EcoscoreAverage float64   `json:"ecoscore_average"`
}

func NewFriendService(db *gorm.DB, history *HistoryService, notifications *NotificationService) *FriendService {
	return &FriendService{
		db:            db,
		history:       history,
		notifications: notifications,
	}
}

func (s *FriendService) SendRequest(requesterID, addresseeID uuid.UUID) (*models.FriendRequest, error) {
	if requesterID == addresseeID {
		return nil, errors.New("cannot send a friend request to yourself")
	}

	var addressee models.User
	if err := s.db.First(&addressee, addresseeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Reject duplicates in either direction
	var existing models.FriendRequest
	err := s.db.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		requesterID, addresseeID, addresseeID, requesterID,
	).First(&existing).Error
	if err == nil {
		return nil, errors.New("friend request already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	request := &models.FriendRequest{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendStatusPending,
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("failed to create friend request: %w", err)
	}

	var requester models.User
	if err := s.db.First(&requester, requesterID).Error; err == nil {
		go s.notifications.SendFriendRequestNotification(&addressee, &requester)
	}

	return request, nil
}

func (s *FriendService) AcceptRequest(requestID, userID uuid.UUID) (*models.FriendRequest, error) {
	var request models.FriendRequest
	if err := s.db.Preload("Requester").Preload("Addressee").First(&request, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("friend request not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Only the addressee can accept
	if request.AddresseeID != userID {
		return nil, errors.New("friend request not found")
	}
	if request.Status != models.FriendStatusPending {
		return nil, errors.New("friend request is not pending")
	}

	if err := s.db.Model(&request).Update("status", models.FriendStatusAccepted).Error; err != nil {
		return nil, fmt.Errorf("failed to accept friend request: %w", err)
	}

	go s.notifications.SendFriendAcceptedNotification(&request.Requester, &request.Addressee)

	return &request, nil
}

// Remove deletes an accepted friendship between the user and friendID.
func (s *FriendService) Remove(userID, friendID uuid.UUID) error {
	result := s.db.Where(
		"status = ? AND ((requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?))",
		models.FriendStatusAccepted, userID, friendID, friendID, userID,
	).Delete(&models.FriendRequest{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove friend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("friend not found")
	}
	return nil
}

func (s *FriendService) ListFriends(userID uuid.UUID) ([]models.User, error) {
	var requests []models.FriendRequest
	err := s.db.Preload("Requester").Preload("Addressee").
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)",
			models.FriendStatusAccepted, userID, userID).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	friends := make([]models.User, 0, len(requests))
	for _, request := range requests {
		if request.RequesterID == userID {
			friends = append(friends, request.Addressee)
		} else {
			friends = append(friends, request.Requester)
		}
	}
	return friends, nil
}

// FriendScores returns the rolling average ecoscore of each friend, the data
// behind the comparison screen.
func (s *FriendService) FriendScores(ctx context.Context, userID uuid.UUID) ([]FriendScore, error) {
	friends, err := s.ListFriends(userID)
	if err != nil {
		return nil, err
	}

	scores := make([]FriendScore, 0, len(friends))
	for _, friend := range friends {
		average, err := s.history.Average(ctx, friend.ID)
		if err != nil {
			return nil, err
		}
		scores = append(scores, FriendScore{
			UserID:          friend.ID,
			Username:        friend.Username,
			EcoscoreAverage: average,
		})
	}
	return scores, nil
}
