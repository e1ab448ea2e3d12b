// internal/services/notification_service.go
package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carbonwise/carbonwise-backend/internal/config"
	"github.com/carbonwise/carbonwise-backend/internal/models"
)

// NotificationService dispatches push notifications through FCM. Delivery is
// best effort: failures are logged, never surfaced to the triggering request.
type NotificationService struct {
	httpClient *http.Client
	cfg        *config.Config
}

type fcmMessage struct {
	To           string            `json:"to"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cfg:        cfg,
	}
}

func (s *NotificationService) SendFriendRequestNotification(to *models.User, from *models.User) {
	s.push(to, "New friend request",
		fmt.Sprintf("%s wants to compare ecoscores with you", from.Username),
		map[string]string{
			"type":         "friend_request",
			"requester_id": from.ID.String(),
		})
}

func (s *NotificationService) SendFriendAcceptedNotification(to *models.User, from *models.User) {
	s.push(to, "Friend request accepted",
		fmt.Sprintf("%s accepted your friend request", from.Username),
		map[string]string{
			"type":      "friend_accepted",
			"friend_id": from.ID.String(),
		})
}

func (s *NotificationService) push(to *models.User, title, body string, data map[string]string) {
	if s.cfg.FCM.ServerKey == "" || to.DeviceToken == "" {
		return
	}

	payload, err := json.Marshal(fcmMessage{
		To: to.DeviceToken,
		Notification: fcmNotification{
			Title: title,
			Body:  body,
		},
		Data: data,
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to encode push notification")
		return
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.FCM.Endpoint, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Failed to build push request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.cfg.FCM.ServerKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("user_id", to.ID).Warn("Push notification failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"user_id": to.ID,
			"status":  resp.StatusCode,
		}).Warn("Push notification rejected")
	}
}
