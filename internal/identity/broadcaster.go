package identity

import (
	"context"
	"log/slog"
	"sync"

	"granazap/internal/models"

	"github.com/google/uuid"
)

// SessionEvent is one session-change notification. A nil Session means the
// user signed out.
type SessionEvent struct {
	Session *models.Session
	User    *models.SessionUser
}

// Broadcaster fans session-change events out to subscribers and fronts the
// provider for sign-in and sign-out. It holds no session of its own: the
// server handles many users at once, so the session a call operates on is
// always the caller's bearer token, never process state.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]chan SessionEvent

	signOutMu  sync.Mutex
	signingOut map[string]struct{}
	client     ProviderClientInterface
}

func NewBroadcaster(client ProviderClientInterface) *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uuid.UUID]chan SessionEvent),
		signingOut:  make(map[string]struct{}),
		client:      client,
	}
}

// Subscribe registers a consumer and returns its id plus the event channel.
// The channel is buffered so a slow consumer never blocks a publish; when
// the buffer is full the oldest pending event is simply superseded.
func (b *Broadcaster) Subscribe() (uuid.UUID, <-chan SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New()
	ch := make(chan SessionEvent, 1)
	b.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a consumer and closes its channel
func (b *Broadcaster) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// Publish notifies every subscriber of a session change. A nil session
// announces a sign-out.
func (b *Broadcaster) Publish(session *models.Session) {
	b.mu.Lock()
	defer b.mu.Unlock()

	event := SessionEvent{Session: session}
	if session != nil {
		event.User = session.User
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Drop the stale pending event and deliver the newest one
			select {
			case <-ch:
			default:
			}
			ch <- event
		}
	}
}

// SubscriberCount reports how many consumers are subscribed
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// SignIn authenticates against the provider and broadcasts the new session
func (b *Broadcaster) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	session, err := b.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	b.Publish(session)
	return session, nil
}

// SignOut revokes the caller's session remotely and announces the sign-out
// to subscribers. The in-flight guard is keyed by access token, so a
// double-clicked sign-out button fires exactly one remote revocation while
// other users' sign-outs proceed untouched. A revocation that misses its
// deadline is logged and abandoned; subscribers were already told.
func (b *Broadcaster) SignOut(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}

	b.signOutMu.Lock()
	if _, inFlight := b.signingOut[accessToken]; inFlight {
		b.signOutMu.Unlock()
		slog.Debug("sign-out already in flight for this session, ignoring duplicate request")
		return
	}
	b.signingOut[accessToken] = struct{}{}
	b.signOutMu.Unlock()

	defer func() {
		b.signOutMu.Lock()
		delete(b.signingOut, accessToken)
		b.signOutMu.Unlock()
	}()

	b.Publish(nil)

	if err := b.client.SignOut(ctx, accessToken); err != nil {
		if IsDeadline(err) {
			slog.Warn("remote sign-out missed its deadline, subscribers already notified")
			return
		}
		slog.Warn("remote sign-out failed, subscribers already notified", "error", err)
	}
}

// FetchUser looks up the current user at the provider. A fetch that misses
// its deadline degrades to a nil user so callers keep rendering instead of
// hanging on a slow provider.
func (b *Broadcaster) FetchUser(ctx context.Context, accessToken string) (*models.SessionUser, error) {
	user, err := b.client.GetUser(ctx, accessToken)
	if err != nil {
		if IsDeadline(err) {
			slog.Warn("user fetch missed its deadline, proceeding without a profile")
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
