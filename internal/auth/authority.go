package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"estatedesk-backend/internal/models"
	"estatedesk-backend/internal/repo"

	"github.com/google/uuid"
)

const (
	// CookieName carries the opaque session token.
	CookieName = "estatedesk_session"

	SessionTTL = 7 * 24 * time.Hour
)

var ErrNoSession = errors.New("no valid session")

// Authority resolves request identity from DB-backed session tokens. It is
// injected into routes explicitly so handlers stay testable.
type Authority struct {
	sessions repo.SessionRepoInterface
}

func NewAuthority(sessions repo.SessionRepoInterface) *Authority {
	return &Authority{sessions: sessions}
}

// IssueSession mints a fresh token for the user and stores it.
func (a *Authority) IssueSession(userID uuid.UUID) (*models.Session, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &models.Session{
		Token:     hex.EncodeToString(buf),
		UserUUID:  userID,
		ExpiresAt: time.Now().Add(SessionTTL),
		CreatedAt: time.Now(),
	}
	if err := a.sessions.CreateSession(session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return session, nil
}

// Resolve maps a token to its user, rejecting missing and expired sessions.
func (a *Authority) Resolve(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrNoSession
	}

	session, err := a.sessions.GetSessionByToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return uuid.Nil, ErrNoSession
	}
	return session.UserUUID, nil
}

func (a *Authority) Destroy(token string) error {
	if token == "" {
		return nil
	}
	return a.sessions.DeleteSession(token)
}
