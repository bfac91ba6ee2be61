package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/repositories/metadata"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	s := NewSQLiteStore(db, nil)
	t.Cleanup(func() { _ = s.Close() })
	return s, db
}

func sampleSession() *models.Session {
	return &models.Session{
		Token: "opaque-token",
		User:  models.User{ID: 3, Username: "482913", Email: "a@b.co", Role: models.RoleUser, Status: models.StatusActive},
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

func TestSQLiteStore_SaveLoadClear(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	want := sampleSession()
	require.NoError(t, s.Save(ctx, want))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Token, got.Token)
	assert.Equal(t, want.User.Username, got.User.Username)
	assert.Equal(t, want.User.Email, got.User.Email)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteStore_SaveRejectsPartialSession(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	err := s.Save(ctx, &models.Session{Token: "t"})
	require.ErrorIs(t, err, ErrIncompleteSession)

	all, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLiteStore_LoadTreatsBrokenEntriesAsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		token string
		user  string
	}{
		{"token only", "t", ""},
		{"user only", "", `{"username":"1"}`},
		{"malformed user", "t", `{not json`},
		{"user without username", "t", `{"email":"a@b.co"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, db := newTestStore(t)
			ctx := context.Background()
			repo := metadata.NewSQLiteRepository(db)
			if tc.token != "" {
				require.NoError(t, repo.Set(ctx, KeyToken, tc.token))
			}
			if tc.user != "" {
				require.NoError(t, repo.Set(ctx, KeyUser, tc.user))
			}

			got, err := s.Load(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestSQLiteStore_ExpiredTokenIsAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	sess := sampleSession()
	sess.Token = signedToken(t, now.Add(-time.Minute))
	require.NoError(t, s.Save(ctx, sess))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	sess.Token = signedToken(t, now.Add(time.Hour))
	require.NoError(t, s.Save(ctx, sess))

	got, err = s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sess.Token, got.Token)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleSession()))

	next := sampleSession()
	next.Token = "second"
	next.User.Username = "777777"
	require.NoError(t, s.Save(ctx, next))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Token)
	assert.Equal(t, "777777", got.User.Username)
}

func TestInitDatabase_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.db")
	ctx := context.Background()

	db, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
