package auth

import (
	"context"
	"time"
)

// TokenManager hands out bearer tokens for outgoing requests.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
}

// GenerationRecorder observes every token generation attempt.
type GenerationRecorder interface {
	ObserveTokenGeneration(err error)
}

// ManagerOption configures a JWTTokenManager.
type ManagerOption func(*JWTTokenManager)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) ManagerOption {
	return func(m *JWTTokenManager) {
		if clock != nil {
			m.clock = clock
		}
	}
}

// WithGenerationRecorder reports generation attempts to recorder.
func WithGenerationRecorder(recorder GenerationRecorder) ManagerOption {
	return func(m *JWTTokenManager) {
		m.recorder = recorder
	}
}

// JWTTokenManager caches one signed token and regenerates it once the cache
// window has passed. Concurrent callers that find the token expired produce
// exactly one regeneration.
type JWTTokenManager struct {
	generator Generator
	clock     func() time.Time
	recorder  GenerationRecorder

	// lock is a one-slot semaphore guarding token; waiters leave when their
	// context ends.
	lock  chan struct{}
	token *Token
}

// NewJWTTokenManager generates the first token immediately. A generation
// failure fails construction.
func NewJWTTokenManager(generator Generator, opts ...ManagerOption) (*JWTTokenManager, error) {
	if generator == nil {
		return nil, ErrNilGenerator
	}

	manager := &JWTTokenManager{
		generator: generator,
		clock:     time.Now,
		lock:      make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(manager)
	}

	err := manager.regenerate()
	if err != nil {
		return nil, err
	}

	return manager, nil
}

// GetToken implements TokenManager.
func (m *JWTTokenManager) GetToken(ctx context.Context) (string, error) {
	err := m.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer m.release()

	if m.token.Expired(m.clock()) {
		err = m.regenerate()
		if err != nil {
			return "", err
		}
	}

	return m.token.Value, nil
}

// RefreshToken implements TokenManager. It replaces the cached token
// regardless of its age.
func (m *JWTTokenManager) RefreshToken(ctx context.Context) error {
	err := m.acquire(ctx)
	if err != nil {
		return err
	}
	defer m.release()

	return m.regenerate()
}

// ExpiresAt returns when the cached token leaves the cache.
func (m *JWTTokenManager) ExpiresAt(ctx context.Context) (time.Time, error) {
	err := m.acquire(ctx)
	if err != nil {
		return time.Time{}, err
	}
	defer m.release()

	return m.token.ExpiresAt, nil
}

func (m *JWTTokenManager) acquire(ctx context.Context) error {
	select {
	case m.lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *JWTTokenManager) release() {
	<-m.lock
}

// regenerate must be called with the lock held, or before the manager is shared.
func (m *JWTTokenManager) regenerate() error {
	token, err := m.generator.Generate(m.clock())

	if m.recorder != nil {
		m.recorder.ObserveTokenGeneration(err)
	}

	if err != nil {
		return err
	}

	m.token = token

	return nil
}
