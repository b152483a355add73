package response

import (
	"time"
	"winnet_crm/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotifications(list []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNotification(n))
	}
	return out
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{ID: n.ID, UserID: n.UserID, Message: n.Message, Read: n.Read, CreatedAt: n.CreatedAt}
}
