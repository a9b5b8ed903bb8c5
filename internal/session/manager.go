// Package session issues and validates per-browser sessions. The browser
// holds only a signed token carrying the session id; all session state lives
// in the backing store with a fixed two-hour absolute expiry.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotel-louvain/booking-system/internal/core/domain"
	"github.com/hotel-louvain/booking-system/internal/core/ports"
)

const (
	// CookieName is the session cookie set on login and registration.
	CookieName = "hl_session"
	// TTL is the absolute session lifetime. It is fixed at creation and
	// never renewed on activity.
	TTL = 2 * time.Hour
)

// Manager creates, resolves, and destroys sessions.
type Manager struct {
	store  ports.SessionStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewManager(store ports.SessionStore, secret string) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    TTL,
		now:    time.Now,
	}
}

// Start creates a session holding the user's identity snapshot and returns
// it with the signed cookie token.
func (m *Manager) Start(ctx context.Context, user *domain.User) (*domain.Session, string, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, "", err
	}

	now := m.now().UTC()
	sess := &domain.Session{
		ID: id,
		User: domain.SessionSnapshot{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, sess); err != nil {
		return nil, "", err
	}

	token, err := m.signToken(sess)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

// Resolve validates the cookie token, loads the session, and checks its
// absolute expiry. Any failure along the way surfaces as
// domain.ErrSessionNotFound; an expired record is deleted on sight.
func (m *Manager) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	id, err := m.verifyToken(token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Expired(m.now().UTC()) {
		_ = m.store.Delete(ctx, sess.ID)
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Destroy deletes the session record referenced by the token. Invalid tokens
// are a no-op: there is nothing server-side to destroy.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	id, err := m.verifyToken(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// Cookie builds the session cookie for a freshly started session.
func (m *Manager) Cookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie builds an expired cookie that removes the session from the
// browser.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (m *Manager) signToken(sess *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid": sess.ID,
		"exp": sess.ExpiresAt.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *Manager) verifyToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrSessionNotFound
	}

	id, _ := claims["sid"].(string)
	if id == "" {
		return "", domain.ErrSessionNotFound
	}
	return id, nil
}

func newSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
