// Package tier fans out a user's tier changes to live subscribers.
package tier

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/werdnakof/ask-parents-25-questions/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type subscription struct {
	ch        chan domain.TierState
	done      chan struct{}
	once      sync.Once
	published bool
}

// Broker delivers tier states per user. Each subscriber holds at most one
// undelivered state; a newer state replaces an unread older one.
type Broker struct {
	log   *slog.Logger
	users userRepo

	mu     sync.Mutex
	subs   map[uuid.UUID]map[*subscription]struct{}
	closed bool
}

// NewBroker creates a broker that reads the initial state from users.
func NewBroker(log *slog.Logger, users userRepo) *Broker {
	return &Broker{
		log:   log.With("service", "tier"),
		users: users,
		subs:  make(map[uuid.UUID]map[*subscription]struct{}),
	}
}

// Subscribe returns a channel that first yields the user's current tier and
// then every published change. The channel is closed after cancel is called,
// ctx is done, or the broker is closed. cancel is safe to call more than once.
func (b *Broker) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan domain.TierState, func(), error) {
	sub := &subscription{
		ch:   make(chan domain.TierState, 1),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, nil, fmt.Errorf("tier broker closed")
	}
	set, ok := b.subs[userID]
	if !ok {
		set = make(map[*subscription]struct{})
		b.subs[userID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()

	cancel := func() { b.unsubscribe(userID, sub) }

	// Registered before the read so a concurrent Publish is never lost.
	user, err := b.users.GetByID(ctx, userID)
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	b.mu.Lock()
	if !sub.published && !sub.isClosed() {
		offer(sub.ch, user.Tier())
	}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-sub.done:
		}
	}()

	return sub.ch, cancel, nil
}

// Publish delivers state to every subscriber of userID without blocking.
func (b *Broker) Publish(userID uuid.UUID, state domain.TierState) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for sub := range b.subs[userID] {
		sub.published = true
		offer(sub.ch, state)
		n++
	}

	b.log.Debug("tier published",
		slog.String("user_id", userID.String()),
		slog.Bool("is_premium", state.IsPremium),
		slog.Int("subscribers", n),
	)
}

// Subscribers returns the number of live subscriptions for userID.
func (b *Broker) Subscribers(userID uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[userID])
}

// Close ends every subscription. Later Subscribe calls fail.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for userID, set := range b.subs {
		for sub := range set {
			sub.close()
		}
		delete(b.subs, userID)
	}
}

func (b *Broker) unsubscribe(userID uuid.UUID, sub *subscription) {
	b.mu.Lock()
	if set, ok := b.subs[userID]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(b.subs, userID)
		}
	}
	sub.close()
	b.mu.Unlock()
}

// close must be called with b.mu held so it never races with offer.
func (s *subscription) close() {
	s.once.Do(func() {
		close(s.done)
		close(s.ch)
	})
}

func (s *subscription) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// offer replaces any unread state in ch with state. ch has capacity one and
// b.mu serializes senders, so it never blocks.
func offer(ch chan domain.TierState, state domain.TierState) {
	select {
	case ch <- state:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- state:
	default:
	}
}
