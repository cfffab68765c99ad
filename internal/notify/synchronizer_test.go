package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdjleague/debatesync/internal/models"
)

type stubNotifyAPI struct {
	mu          sync.Mutex
	list        []models.Notification
	count       int
	mutationErr error

	listCalls  int
	countCalls int
	readIDs    []int
	unreadIDs  []int
	allRead    int
}

func (s *stubNotifyAPI) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	out := make([]models.Notification, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *stubNotifyAPI) UnreadCount(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countCalls++
	return s.count, nil
}

func (s *stubNotifyAPI) MarkRead(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutationErr != nil {
		return s.mutationErr
	}
	s.readIDs = append(s.readIDs, id)
	return nil
}

func (s *stubNotifyAPI) MarkUnread(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutationErr != nil {
		return s.mutationErr
	}
	s.unreadIDs = append(s.unreadIDs, id)
	return nil
}

func (s *stubNotifyAPI) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mutationErr != nil {
		return s.mutationErr
	}
	s.allRead++
	return nil
}

func feed() []models.Notification {
	return []models.Notification{
		{ID: 1, Type: models.NotificationRoundStart, Message: "Round 3 is starting", Read: false},
		{ID: 2, Type: models.NotificationRoleAssigned, Message: "You are Prime Minister", Read: false},
		{ID: 3, Type: models.NotificationSystem, Message: "Welcome", Read: true},
	}
}

func newTestSynchronizer(api API) *Synchronizer {
	s := NewSynchronizer(api, Config{CountInterval: 30 * time.Second, RefreshInterval: 5 * time.Minute})
	s.clock = clockwork.NewFakeClock()
	return s
}

func TestFetchAllDerivesUnreadFromList(t *testing.T) {
	api := &stubNotifyAPI{list: feed()}
	s := newTestSynchronizer(api)

	require.NoError(t, s.FetchAll(context.Background()))
	assert.Equal(t, 2, s.UnreadCount())
	assert.Len(t, s.Notifications(), 3)
}

func TestMarkReadThenUnreadRestoresCount(t *testing.T) {
	api := &stubNotifyAPI{list: feed()}
	s := newTestSynchronizer(api)
	require.NoError(t, s.FetchAll(context.Background()))

	before := s.UnreadCount()
	s.MarkRead(context.Background(), 1)
	assert.Equal(t, before-1, s.UnreadCount())
	s.MarkUnread(context.Background(), 1)
	assert.Equal(t, before, s.UnreadCount())

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, []int{1}, api.readIDs)
	assert.Equal(t, []int{1}, api.unreadIDs)
}

func TestMarkReadIsIdempotentLocally(t *testing.T) {
	api := &stubNotifyAPI{list: feed()}
	s := newTestSynchronizer(api)
	require.NoError(t, s.FetchAll(context.Background()))

	// Entry 3 is already read; no mutation should be issued and the counter
	// must not drift.
	s.MarkRead(context.Background(), 3)
	assert.Equal(t, 2, s.UnreadCount())

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Empty(t, api.readIDs)
}

func TestFailedMutationRevertsOptimisticChange(t *testing.T) {
	api := &stubNotifyAPI{list: feed(), mutationErr: errors.New("backend down")}
	s := newTestSynchronizer(api)
	require.NoError(t, s.FetchAll(context.Background()))

	var reported error
	s.OnError = func(err error) { reported = err }

	s.MarkRead(context.Background(), 1)

	assert.Equal(t, 2, s.UnreadCount())
	for _, n := range s.Notifications() {
		if n.ID == 1 {
			assert.False(t, n.Read, "read flag should have been reverted")
		}
	}
	assert.ErrorContains(t, reported, "backend down")
}

func TestMarkAllRead(t *testing.T) {
	api := &stubNotifyAPI{list: feed()}
	s := newTestSynchronizer(api)
	require.NoError(t, s.FetchAll(context.Background()))

	s.MarkAllRead(context.Background())

	assert.Equal(t, 0, s.UnreadCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestMarkAllReadRevertsOnFailure(t *testing.T) {
	api := &stubNotifyAPI{list: feed(), mutationErr: errors.New("backend down")}
	s := newTestSynchronizer(api)
	require.NoError(t, s.FetchAll(context.Background()))

	s.MarkAllRead(context.Background())

	assert.Equal(t, 2, s.UnreadCount())
	unread := 0
	for _, n := range s.Notifications() {
		if !n.Read {
			unread++
		}
	}
	assert.Equal(t, 2, unread)
}

func TestCountPollUpdatesCounterOnly(t *testing.T) {
	api := &stubNotifyAPI{list: feed(), count: 9}
	s := newTestSynchronizer(api)
	require.NoError(t, s.FetchAll(context.Background()))

	// The count-only poll may diverge from the list until the next FetchAll.
	s.fetchUnreadCount(context.Background())
	assert.Equal(t, 9, s.UnreadCount())
	assert.Len(t, s.Notifications(), 3)

	require.NoError(t, s.FetchAll(context.Background()))
	assert.Equal(t, 2, s.UnreadCount())
}

func TestSubscribeSignalsOnChange(t *testing.T) {
	api := &stubNotifyAPI{list: feed()}
	s := newTestSynchronizer(api)
	ch := s.Subscribe()

	require.NoError(t, s.FetchAll(context.Background()))

	select {
	case <-ch:
	default:
		t.Fatal("expected a change signal after FetchAll")
	}
}
