// Package notify is the outbound edge for domain events: it persists a
// notification for the recipient and pushes it over the real-time channel.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"jobboard/internal/domain/notification"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

// Event is a domain event addressed to a single recipient identity.
type Event struct {
	Recipient uuid.UUID
	Message   string
	Link      string
}

// Dispatcher fans an event out to the recipient. Implementations must never
// fail the caller: notification delivery is fire-and-forget and runs after
// the triggering state change has been committed.
type Dispatcher interface {
	Dispatch(ctx context.Context, evt Event)
}

type pusher interface {
	Push(recipient uuid.UUID, payload []byte)
}

type pushPayload struct {
	Type      string    `json:"type"`
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// Service persists the notification first, then attempts the push. Either
// step failing is logged and absorbed.
type Service struct {
	repo   repository.NotificationRepository
	push   pusher
	logger *log.Logger

	now func() time.Time
}

func NewService(repo repository.NotificationRepository, push pusher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{repo: repo, push: push, logger: logger, now: time.Now}
}

func (s *Service) Dispatch(ctx context.Context, evt Event) {
	if evt.Recipient == uuid.Nil || evt.Message == "" {
		return
	}

	n := notification.Notification{
		ID:        uuid.New(),
		UserID:    evt.Recipient,
		Message:   evt.Message,
		Link:      evt.Link,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Printf("Notify persist failed | recipient=%s err=%v", evt.Recipient, err)
		return
	}

	if s.push == nil {
		return
	}
	b, err := json.Marshal(pushPayload{
		Type:      "notification",
		ID:        n.ID,
		Message:   n.Message,
		Link:      n.Link,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Printf("Notify encode failed | recipient=%s err=%v", evt.Recipient, err)
		return
	}
	s.push.Push(evt.Recipient, b)
}

// Discard drops every event. Useful where delivery is irrelevant (tests,
// one-off tooling).
type Discard struct{}

func (Discard) Dispatch(context.Context, Event) {}
