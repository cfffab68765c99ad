// Package notify keeps an eventually-consistent local view of the user's
// notification feed. Read/unread toggles are applied optimistically so the UI
// reacts immediately; the backend call runs afterwards and a failure reverts
// the toggle.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/rdjleague/debatesync/internal/models"
)

// API is the slice of the backend client the synchronizer needs.
type API interface {
	ListNotifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int) error
	MarkUnread(ctx context.Context, id int) error
	MarkAllRead(ctx context.Context) error
}

// Config holds the two polling intervals: a frequent count-only check and a
// less frequent full refresh.
type Config struct {
	CountInterval   time.Duration
	RefreshInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		CountInterval:   30 * time.Second,
		RefreshInterval: 5 * time.Minute,
	}
}

// Synchronizer owns the local notification list and unread counter.
type Synchronizer struct {
	api        API
	config     Config
	clock      clockwork.Clock
	instanceID string

	// OnError, if set, receives non-blocking errors from failed mutations,
	// e.g. to surface a toast. Set before use.
	OnError func(error)

	mu            sync.Mutex
	notifications []models.Notification
	unread        int
	running       bool
	stopChan      chan struct{}
	wg            sync.WaitGroup

	subsMu sync.Mutex
	subs   []chan struct{}
}

func NewSynchronizer(api API, cfg Config) *Synchronizer {
	if cfg.CountInterval <= 0 {
		cfg.CountInterval = DefaultConfig().CountInterval
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultConfig().RefreshInterval
	}
	return &Synchronizer{
		api:        api,
		config:     cfg,
		clock:      clockwork.NewRealClock(),
		instanceID: uuid.New().String()[:8],
		stopChan:   make(chan struct{}),
	}
}

// Start performs an initial full fetch, then polls the unread count and the
// full list on their own independent tickers until ctx is cancelled or Stop
// is called.
func (s *Synchronizer) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("notification synchronizer already running")
	}
	s.running = true
	s.mu.Unlock()

	if err := s.FetchAll(ctx); err != nil {
		log.Warn().Err(err).Str("instance", s.instanceID).Msg("initial notification fetch failed")
	}

	s.wg.Add(2)
	go s.pollLoop(ctx, s.config.CountInterval, s.fetchUnreadCount)
	go s.pollLoop(ctx, s.config.RefreshInterval, func(ctx context.Context) {
		if err := s.FetchAll(ctx); err != nil {
			log.Warn().Err(err).Str("instance", s.instanceID).Msg("notification refresh failed")
		}
	})

	log.Info().
		Str("instance", s.instanceID).
		Dur("count_interval", s.config.CountInterval).
		Dur("refresh_interval", s.config.RefreshInterval).
		Msg("notification synchronizer started")
	return nil
}

// Stop halts both polling loops.
func (s *Synchronizer) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
}

func (s *Synchronizer) pollLoop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case <-ticker.Chan():
			fn(ctx)
		}
	}
}

// FetchAll replaces the local list with the server's and recomputes the
// unread counter from the list itself, reconciling any drift the count-only
// poll introduced.
func (s *Synchronizer) FetchAll(ctx context.Context) error {
	list, err := s.api.ListNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}

	s.mu.Lock()
	s.notifications = list
	s.unread = countUnread(list)
	s.mu.Unlock()

	s.notifySubscribers()
	return nil
}

// fetchUnreadCount updates only the counter. The list may briefly disagree
// with it until the next FetchAll.
func (s *Synchronizer) fetchUnreadCount(ctx context.Context) {
	count, err := s.api.UnreadCount(ctx)
	if err != nil {
		log.Warn().Err(err).Str("instance", s.instanceID).Msg("notification count poll failed")
		return
	}

	s.mu.Lock()
	changed := s.unread != count
	s.unread = count
	s.mu.Unlock()

	if changed {
		s.notifySubscribers()
	}
}

// MarkRead flags one notification as read, locally first. A failed backend
// call reverts the flag and reports through OnError; the caller is never
// blocked on the mutation outcome. The id must refer to an entry in the
// local feed whose flag actually changes, otherwise no backend mutation is
// issued.
func (s *Synchronizer) MarkRead(ctx context.Context, id int) {
	s.setRead(ctx, id, true)
}

// MarkUnread flags one notification as unread, with the same optimistic
// apply-then-revert behavior as MarkRead.
func (s *Synchronizer) MarkUnread(ctx context.Context, id int) {
	s.setRead(ctx, id, false)
}

// setRead applies the toggle locally and mirrors it to the backend. Unknown
// ids and no-op toggles are skipped entirely: there is nothing to revert and
// repeating the server's current state would only re-send it.
func (s *Synchronizer) setRead(ctx context.Context, id int, read bool) {
	s.mu.Lock()
	prev, found := s.applyRead(id, read)
	s.mu.Unlock()
	if !found || prev == read {
		return
	}
	s.notifySubscribers()

	call := s.api.MarkRead
	if !read {
		call = s.api.MarkUnread
	}
	if err := call(ctx, id); err != nil {
		s.mu.Lock()
		s.applyRead(id, prev)
		s.mu.Unlock()
		s.notifySubscribers()
		s.reportError(fmt.Errorf("failed to update notification %d: %w", id, err))
	}
}

// applyRead flips the read flag on one entry and adjusts the counter.
// Caller holds mu.
func (s *Synchronizer) applyRead(id int, read bool) (prev bool, found bool) {
	for i := range s.notifications {
		if s.notifications[i].ID != id {
			continue
		}
		prev = s.notifications[i].Read
		s.notifications[i].Read = read
		if prev != read {
			if read {
				s.unread--
				if s.unread < 0 {
					s.unread = 0
				}
			} else {
				s.unread++
			}
		}
		return prev, true
	}
	return false, false
}

// MarkAllRead flags every notification read and zeroes the counter locally,
// then tells the backend. On failure the previous flags are restored.
func (s *Synchronizer) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	prevRead := make(map[int]bool, len(s.notifications))
	prevUnread := s.unread
	for i := range s.notifications {
		prevRead[s.notifications[i].ID] = s.notifications[i].Read
		s.notifications[i].Read = true
	}
	s.unread = 0
	s.mu.Unlock()
	s.notifySubscribers()

	if err := s.api.MarkAllRead(ctx); err != nil {
		s.mu.Lock()
		for i := range s.notifications {
			if prev, ok := prevRead[s.notifications[i].ID]; ok {
				s.notifications[i].Read = prev
			}
		}
		s.unread = prevUnread
		s.mu.Unlock()
		s.notifySubscribers()
		s.reportError(fmt.Errorf("failed to mark all notifications read: %w", err))
	}
}

// Notifications returns a copy of the local feed.
func (s *Synchronizer) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount returns the local unread counter.
func (s *Synchronizer) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

// Subscribe returns a channel that receives a signal whenever the local state
// changes. Signals are coalesced; slow consumers never block the
// synchronizer.
func (s *Synchronizer) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subsMu.Lock()
	s.subs = append(s.subs, ch)
	s.subsMu.Unlock()
	return ch
}

func (s *Synchronizer) notifySubscribers() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (s *Synchronizer) reportError(err error) {
	log.Warn().Err(err).Str("instance", s.instanceID).Msg("notification mutation failed")
	if s.OnError != nil {
		s.OnError(err)
	}
}

func countUnread(list []models.Notification) int {
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count
}
