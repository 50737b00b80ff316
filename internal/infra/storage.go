package infra

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Storage is the capability every repository is built on. It has exactly two
// variants: connected (DB returns the handle) and unavailable (DB reports
// false and repositories degrade every operation to its null/empty result).
// The variant is resolved once at startup and injected — there is no lazy
// reconnect and no global handle.
type Storage interface {
	DB() (*gorm.DB, bool)
}

type connected struct{ db *gorm.DB }

func (s connected) DB() (*gorm.DB, bool) { return s.db, true }

type unavailable struct{}

func (unavailable) DB() (*gorm.DB, bool) { return nil, false }

// NewStorage connects to postgres, or degrades to the unavailable variant
// when no DSN is configured or the connection fails. The process still serves
// traffic in that state: reads answer null/empty and writes are no-ops. This
// masks outages from callers, so the degradation is logged loudly here.
func NewStorage(dsn string) Storage {
	if dsn == "" {
		log.Warn().Msg("DATABASE_URL not set — storage unavailable, all reads return empty")
		return unavailable{}
	}
	db, err := NewDatabase(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("database connection failed — storage unavailable, all reads return empty")
		return unavailable{}
	}
	return connected{db: db}
}

// WithDB wraps an existing gorm handle as connected storage (used by tests
// and tooling that manage their own connection).
func WithDB(db *gorm.DB) Storage { return connected{db: db} }

// Unavailable returns the degraded variant.
func Unavailable() Storage { return unavailable{} }
