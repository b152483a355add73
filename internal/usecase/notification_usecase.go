package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"winnet_crm/internal/domain/entities"
	"winnet_crm/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrInvalidUserID         = errors.New("invalid user id")
)

type INotificationUseCase interface {
	ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// ListByUser returns the user's notifications, newest first.
func (u *NotificationUseCase) ListByUser(ctx context.Context, userID string, unreadOnly bool) ([]entities.Notification, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	all, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Notification, 0, len(all))
	for _, n := range all {
		if unreadOnly && n.Read {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
