package repository

import (
	"context"
	"errors"

	"vitrine/internal/infra"
	"vitrine/internal/model"

	"gorm.io/gorm"
)

type FornecedorRepository interface {
	Create(ctx context.Context, f *model.Fornecedor) (*model.Fornecedor, error)
	FindByUsuarioID(ctx context.Context, usuarioID int64) (*model.Fornecedor, error)
	// FindAtivo returns the first supplier with ativo=true — the storefront
	// expects exactly one, but with several rows the lowest id wins.
	FindAtivo(ctx context.Context) (*model.Fornecedor, error)
}

type fornecedorRepo struct{ storage infra.Storage }

func NewFornecedorRepository(storage infra.Storage) FornecedorRepository {
	return &fornecedorRepo{storage: storage}
}

func (r *fornecedorRepo) Create(ctx context.Context, f *model.Fornecedor) (*model.Fornecedor, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	if err := db.WithContext(ctx).Create(f).Error; err != nil {
		return nil, err
	}
	var out model.Fornecedor
	err := db.WithContext(ctx).First(&out, f.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *fornecedorRepo) FindByUsuarioID(ctx context.Context, usuarioID int64) (*model.Fornecedor, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	var f model.Fornecedor
	err := db.WithContext(ctx).Where("usuario_id = ?", usuarioID).Limit(1).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fornecedorRepo) FindAtivo(ctx context.Context) (*model.Fornecedor, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	var f model.Fornecedor
	err := db.WithContext(ctx).Where("ativo = ?", true).Order("id ASC").Limit(1).First(&f).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
