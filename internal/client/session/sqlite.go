package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/tunnelpanel/internal/client/models"
	"github.com/dmitrijs2005/tunnelpanel/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tunnelpanel/internal/dbx"
	"github.com/dmitrijs2005/tunnelpanel/internal/logging"
)

// SQLiteStore keeps the session in the local metadata table.
type SQLiteStore struct {
	db     *sql.DB
	logger logging.Logger
	now    func() time.Time
}

func NewSQLiteStore(db *sql.DB, logger logging.Logger) *SQLiteStore {
	if logger == nil {
		logger = logging.Nop()
	}
	return &SQLiteStore{db: db, logger: logger, now: time.Now}
}

func (s *SQLiteStore) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.Session, error) {
	r := s.repo(s.db)

	token, _, err := r.Get(ctx, KeyToken)
	if err != nil {
		return nil, err
	}
	userJSON, _, err := r.Get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}

	sess, reason := decode(token, userJSON, s.now())
	if sess == nil && reason != "" {
		s.logger.Warn(ctx, "ignoring stored session", "reason", reason)
	}
	return sess, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess *models.Session) error {
	token, userJSON, err := encode(sess)
	if err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		return r.Set(ctx, KeyUser, userJSON)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.repo(s.db).Delete(ctx, KeyToken, KeyUser)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
