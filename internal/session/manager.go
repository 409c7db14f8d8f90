//go:generate mockgen -source ./manager.go -destination=./mocks/manager.go -package=mock_session
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/api"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/clienterr"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/credentials"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/delivery-client/internal/models"
)

type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
	LoggingOut
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case LoggingOut:
		return "logging_out"
	default:
		return "unknown"
	}
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error
}

// Manager owns the authentication state machine. The persisted token is
// always re-read from the credential store before authenticated calls, so
// a logout concurrent with an in-flight operation wins on the stored token.
type Manager struct {
	store  credentials.Store
	auth   AuthAPI
	logger *zap.Logger

	mu      sync.Mutex
	state   State
	user    *models.User
	onState func(State)
}

func NewManager(store credentials.Store, auth AuthAPI, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		auth:   auth,
		logger: logger,
		state:  Unauthenticated,
	}
}

// SetStateListener registers the composition root's transition hook. Must
// be called before Hydrate.
func (m *Manager) SetStateListener(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onState = fn
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) User() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil
	}
	userCopy := *m.user
	return &userCopy
}

// SetUserStatus records a server-confirmed availability change on the
// in-memory user.
func (m *Manager) SetUserStatus(activo bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user != nil {
		m.user.Status = activo
	}
}

// Token reads the persisted token fresh from the store. Returns
// clienterr.ErrNoToken when absent.
func (m *Manager) Token(ctx context.Context) (string, error) {
	token, ok, err := m.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	if !ok {
		return "", clienterr.ErrNoToken
	}
	return token, nil
}

// Hydrate restores session state at process start. A persisted token moves
// the session straight to Authenticated without a server round-trip; the
// token is trusted until a request fails on it.
func (m *Manager) Hydrate(ctx context.Context) error {
	token, ok, err := m.store.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to hydrate session: %w", err)
	}
	if !ok || token == "" {
		m.setState(Unauthenticated)
		return nil
	}

	m.logger.Debug("session hydrated from persisted token")
	m.setState(Authenticated)
	return nil
}

func (m *Manager) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, clienterr.Validation("email and password are required")
	}

	m.setState(Authenticating)

	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("login").Inc()
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.logger.Warn("failed to clear token after login failure", zap.Error(clearErr))
		}
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := m.store.Set(ctx, resp.User.Token); err != nil {
		m.setState(Unauthenticated)
		return nil, fmt.Errorf("failed to persist token: %w", err)
	}

	m.mu.Lock()
	user := resp.User.User
	m.user = &user
	m.mu.Unlock()

	metrics.LoginsTotal.Inc()
	m.logger.Info("login successful", zap.String("role", string(resp.User.Role)))
	m.setState(Authenticated)
	return resp, nil
}

// Logout ends the session. Local state always wins: the token is cleared
// and the state set to Unauthenticated even when the remote call fails. A
// 401 from the server means the token already expired and is not an error.
func (m *Manager) Logout(ctx context.Context) error {
	m.setState(LoggingOut)

	token, ok, err := m.store.Get(ctx)
	if err != nil {
		m.logger.Warn("failed to read token during logout", zap.Error(err))
	}
	if !ok || token == "" {
		m.finishLogout(ctx)
		return nil
	}

	var remoteErr error
	if err := m.auth.Logout(ctx, token); err != nil {
		if clienterr.IsAuthExpired(err) {
			m.logger.Debug("logout token already expired")
		} else {
			metrics.OperationErrorsTotal.WithLabelValues("logout").Inc()
			m.logger.Warn("remote logout failed", zap.Error(err))
			remoteErr = fmt.Errorf("remote logout failed: %w", err)
		}
	}

	m.finishLogout(ctx)
	metrics.LogoutsTotal.Inc()
	return remoteErr
}

func (m *Manager) finishLogout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Warn("failed to clear token", zap.Error(err))
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	m.setState(Unauthenticated)
}

// ChangePassword is authenticated-only and fails fast without a token. The
// session state does not change either way.
func (m *Manager) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	token, err := m.Token(ctx)
	if err != nil {
		return err
	}

	if err := m.auth.ChangePassword(ctx, token, currentPassword, newPassword); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("change_password").Inc()
		return fmt.Errorf("failed to change password: %w", err)
	}
	return nil
}

func (m *Manager) setState(next State) {
	m.mu.Lock()
	prev := m.state
	m.state = next
	listener := m.onState
	m.mu.Unlock()

	if prev != next {
		m.logger.Debug("session state transition",
			zap.String("from", prev.String()),
			zap.String("to", next.String()))
	}
	if listener != nil && prev != next {
		listener(next)
	}
}
