package notification

import (
	"context"
	"fmt"
)

type Service interface {
	CreateNotification(ctx context.Context, draft Draft) (int64, error)
	GetNotification(ctx context.Context, id int64) (*Notification, error)
	ListNotifications(ctx context.Context) ([]Notification, error)
	ListUserNotifications(ctx context.Context, userID int64) ([]Notification, error)
	UpdateNotification(ctx context.Context, id int64, draft Draft) error
	DeleteNotification(ctx context.Context, id int64) error
	MarkRead(ctx context.Context, id int64) (int64, error)
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

type service struct {
	repo Repository
}

func NewNotificationService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateNotification(ctx context.Context, draft Draft) (int64, error) {
	n, err := draft.Normalize()
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return 0, fmt.Errorf("create notification: %w", err)
	}
	return id, nil
}

func (s *service) GetNotification(ctx context.Context, id int64) (*Notification, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListNotifications(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

func (s *service) ListUserNotifications(ctx context.Context, userID int64) ([]Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateNotification replaces the stored fields with the draft. An absent
// leida keeps the stored read flag.
func (s *service) UpdateNotification(ctx context.Context, id int64, draft Draft) error {
	n, err := draft.Normalize()
	if err != nil {
		return err
	}
	if draft.Read == nil {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return err
		}
		n.Read = current.Read
	}
	return s.repo.Update(ctx, id, n)
}

func (s *service) DeleteNotification(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) MarkRead(ctx context.Context, id int64) (int64, error) {
	return s.repo.MarkRead(ctx, id)
}

// MarkAllRead returns how many unread notifications were flipped. Having
// none to flip is reported as not found.
func (s *service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, ErrNoNotificationsToUpdate
	}
	return n, nil
}
