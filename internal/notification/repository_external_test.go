package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sebuszqo/LanaApp/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

// failingRepository is declared outside the package, so the service accepts
// any implementation of the exported contract.
type failingRepository struct {
	created []*notification.Notification
}

func (r *failingRepository) Create(_ context.Context, n *notification.Notification) (int64, error) {
	r.created = append(r.created, n)
	return 0, errStore
}

func (r *failingRepository) Get(context.Context, int64) (*notification.Notification, error) {
	return nil, notification.ErrNotificationNotFound
}

func (r *failingRepository) List(context.Context) ([]notification.Notification, error) {
	return nil, errStore
}

func (r *failingRepository) ListByUser(context.Context, int64) ([]notification.Notification, error) {
	return []notification.Notification{}, nil
}

func (r *failingRepository) Update(context.Context, int64, *notification.Notification) error {
	return errStore
}

func (r *failingRepository) Delete(context.Context, int64) error {
	return errStore
}

func (r *failingRepository) MarkRead(context.Context, int64) (int64, error) {
	return 0, nil
}

func (r *failingRepository) MarkAllRead(context.Context, int64) (int64, error) {
	return 0, nil
}

func TestService_WithExternalRepository(t *testing.T) {
	repo := &failingRepository{}
	svc := notification.NewNotificationService(repo)
	ctx := context.Background()

	_, err := svc.CreateNotification(ctx, notification.Draft{UserID: 1, Channel: notification.Push, Destination: "device-1"})
	assert.ErrorIs(t, err, errStore)
	require.Len(t, repo.created, 1)
	assert.Equal(t, notification.Pending, repo.created[0].Status)

	_, err = svc.MarkAllRead(ctx, 1)
	assert.ErrorIs(t, err, notification.ErrNoNotificationsToUpdate)

	list, err := svc.ListUserNotifications(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)
}
