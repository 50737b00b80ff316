package repository

import (
	"context"
	"errors"

	"vitrine/internal/infra"
	"vitrine/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	// Create inserts and re-selects the row so DB-managed timestamps come
	// back populated. Returns (nil, nil) when storage is unavailable.
	Create(ctx context.Context, c *model.Cliente) (*model.Cliente, error)
	FindByUsuarioID(ctx context.Context, usuarioID int64) (*model.Cliente, error)
}

type clienteRepo struct{ storage infra.Storage }

func NewClienteRepository(storage infra.Storage) ClienteRepository {
	return &clienteRepo{storage: storage}
}

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) (*model.Cliente, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	if err := db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	var out model.Cliente
	err := db.WithContext(ctx).First(&out, c.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *clienteRepo) FindByUsuarioID(ctx context.Context, usuarioID int64) (*model.Cliente, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	var c model.Cliente
	err := db.WithContext(ctx).Where("usuario_id = ?", usuarioID).Limit(1).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
