package repository

import (
	"context"
	"errors"

	"vitrine/internal/infra"
	"vitrine/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository defines the data access contract for users.
// Absence is never an error: lookups return (nil, nil) when no row matches or
// when storage is unavailable.
type UserRepository interface {
	// Upsert inserts the user or, on open_id conflict, updates exactly the
	// columns in updateCols. The caller guarantees updateCols is non-empty
	// (postgres rejects an empty DO UPDATE SET).
	Upsert(ctx context.Context, u *model.User, updateCols []string) error
	FindByOpenID(ctx context.Context, openID string) (*model.User, error)
}

type userRepo struct{ storage infra.Storage }

func NewUserRepository(storage infra.Storage) UserRepository { return &userRepo{storage: storage} }

func (r *userRepo) Upsert(ctx context.Context, u *model.User, updateCols []string) error {
	db, ok := r.storage.DB()
	if !ok {
		return nil
	}
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.AssignmentColumns(updateCols),
	}).Create(u).Error
}

func (r *userRepo) FindByOpenID(ctx context.Context, openID string) (*model.User, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	var u model.User
	err := db.WithContext(ctx).Where("open_id = ?", openID).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
