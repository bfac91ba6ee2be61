// Package session persists the authenticated session (token + user record)
// between CLI runs.
//
// A Store hands back either a complete Session or nothing: a missing key, a
// malformed user record or an expired JWT all read as "logged out".
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
)

const (
	KeyToken = "token"
	KeyUser  = "user"
)

var ErrIncompleteSession = errors.New("session must carry both token and user")

// Store is the key/value session store.
type Store interface {
	// Load returns the persisted session, or nil when there is none.
	Load(ctx context.Context) (*models.Session, error)
	// Save persists token and user together.
	Save(ctx context.Context, s *models.Session) error
	// Clear removes both entries.
	Clear(ctx context.Context) error
	Close() error
}

func encode(s *models.Session) (string, string, error) {
	if !s.Valid() {
		return "", "", ErrIncompleteSession
	}
	b, err := json.Marshal(s.User)
	if err != nil {
		return "", "", fmt.Errorf("encoding user: %w", err)
	}
	return s.Token, string(b), nil
}

// decode rebuilds a session from the raw entries. When the result is nil the
// second value says why.
func decode(token, userJSON string, now time.Time) (*models.Session, string) {
	if token == "" || userJSON == "" {
		return nil, ""
	}

	var u models.User
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
		return nil, "malformed user record"
	}

	s := &models.Session{Token: token, User: u}
	if !s.Valid() {
		return nil, "user record without identity"
	}

	if exp, ok := TokenExpiry(token); ok && !exp.After(now) {
		return nil, "token expired"
	}
	return s, ""
}
