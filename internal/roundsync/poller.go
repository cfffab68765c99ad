// Package roundsync keeps a round's participant list and status fresh while a
// waiting-room or setup view is on screen, and signals the one-shot
// transition to ACTIVE.
package roundsync

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

// API is the slice of the backend client the poller needs.
type API interface {
	GetParticipants(ctx context.Context, roundID int) ([]models.Participant, error)
	GetRoundStatus(ctx context.Context, roundID int) (models.RoundStatus, error)
}

// Config holds poller tuning knobs.
type Config struct {
	// PollInterval is the delay between healthy ticks.
	PollInterval time.Duration
	// MaxBackoff caps the exponential backoff applied after failed ticks.
	MaxBackoff time.Duration
	// MaxConsecutiveFailures stops the poller and fires OnStall once this
	// many ticks in a row have failed. Zero means poll forever.
	MaxConsecutiveFailures int
}

func DefaultConfig() Config {
	return Config{
		PollInterval:           5 * time.Second,
		MaxBackoff:             2 * time.Minute,
		MaxConsecutiveFailures: 20,
	}
}

// Snapshot is the poller's current view of the round.
type Snapshot struct {
	Participants []models.Participant
	Status       models.RoundStatus
}

// Poller periodically fetches a round's participants and status. Fetch
// failures (including 404 on a deleted round) are logged and retried with
// backoff; a run of MaxConsecutiveFailures failed ticks stops the poller and
// surfaces one terminal error. Observing the status become ACTIVE fires
// OnActive exactly once and stops the poller.
type Poller struct {
	api        API
	roundID    int
	config     Config
	clock      clockwork.Clock
	instanceID string

	// OnActive, if set, is called once when the round transitions to ACTIVE.
	// Set before Start.
	OnActive func()
	// OnStall, if set, is called once with the last error after
	// MaxConsecutiveFailures failed ticks. Set before Start.
	OnStall func(error)

	mu       sync.Mutex
	snapshot Snapshot
	seq      uint64
	applied  uint64
	running  bool
	stopped  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewPoller(api API, roundID int, cfg Config) *Poller {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.MaxBackoff < cfg.PollInterval {
		cfg.MaxBackoff = cfg.PollInterval
	}
	return &Poller{
		api:        api,
		roundID:    roundID,
		config:     cfg,
		clock:      clockwork.NewRealClock(),
		instanceID: uuid.New().String()[:8],
		stopChan:   make(chan struct{}),
	}
}

// Start begins polling. The first tick runs immediately.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("poller already started")
	}
	p.running = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run(ctx)

	log.Info().
		Str("instance", p.instanceID).
		Int("round_id", p.roundID).
		Dur("poll_interval", p.config.PollInterval).
		Msg("round poller started")
	return nil
}

// Stop halts polling. No further fetch is issued after Stop returns, and any
// fetch already in flight completes without updating the snapshot.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.stopChan)
	p.wg.Wait()

	log.Info().Str("instance", p.instanceID).Int("round_id", p.roundID).Msg("round poller stopped")
}

// Snapshot returns the most recent round view.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot
}

func (p *Poller) run(ctx context.Context) {
	defer p.wg.Done()

	failures := 0
	var lastErr error

	for {
		active, err := p.tick(ctx)
		if active {
			p.mu.Lock()
			p.stopped = true
			p.mu.Unlock()
			if p.OnActive != nil {
				p.OnActive()
			}
			return
		}

		if err != nil {
			failures++
			lastErr = err
			log.Warn().
				Err(err).
				Str("instance", p.instanceID).
				Int("round_id", p.roundID).
				Int("consecutive_failures", failures).
				Msg("round poll failed")
			if p.config.MaxConsecutiveFailures > 0 && failures >= p.config.MaxConsecutiveFailures {
				p.mu.Lock()
				p.stopped = true
				p.mu.Unlock()
				if p.OnStall != nil {
					p.OnStall(fmt.Errorf("round %d polling stalled after %d consecutive failures: %w",
						p.roundID, failures, lastErr))
				}
				return
			}
		} else {
			failures = 0
		}

		timer := p.clock.NewTimer(p.backoff(failures))
		select {
		case <-ctx.Done():
			stopAndDrainTimer(timer)
			return
		case <-p.stopChan:
			stopAndDrainTimer(timer)
			return
		case <-timer.Chan():
		}
	}
}

// backoff returns the delay before the next tick: the configured interval
// doubled per consecutive failure, capped at MaxBackoff.
func (p *Poller) backoff(failures int) time.Duration {
	delay := p.config.PollInterval
	for i := 1; i < failures; i++ {
		delay *= 2
		if delay >= p.config.MaxBackoff {
			return p.config.MaxBackoff
		}
	}
	return delay
}

// tick fetches participants and status independently and applies whatever
// succeeded. It returns active=true when the round has just transitioned to
// ACTIVE.
func (p *Poller) tick(ctx context.Context) (active bool, err error) {
	seq := p.nextSeq()

	participants, perr := p.api.GetParticipants(ctx, p.roundID)
	status, serr := p.api.GetRoundStatus(ctx, p.roundID)

	p.mu.Lock()
	defer p.mu.Unlock()

	// Results from a fetch that was overtaken by a later tick, or that landed
	// after Stop, are discarded rather than applied.
	if p.stopped || seq < p.applied {
		return false, nil
	}
	p.applied = seq

	wasActive := p.snapshot.Status == models.RoundStatusActive
	if perr == nil {
		p.snapshot.Participants = participants
	}
	if serr == nil {
		p.snapshot.Status = status
	}

	if serr == nil && status == models.RoundStatusActive && !wasActive {
		return true, nil
	}
	if perr != nil {
		return false, perr
	}
	return false, serr
}

func (p *Poller) nextSeq() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	return p.seq
}

// stopAndDrainTimer safely stops a timer and drains its channel so no
// goroutine is left blocked on a fired timer.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
