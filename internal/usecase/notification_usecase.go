package usecase

import (
	"context"
	"errors"

	"jobboard/internal/domain/notification"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type Notification struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *Notification {
	return &Notification{notifications: notifications}
}

func (u *Notification) List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	out, err := u.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Notification) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.notifications.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}
