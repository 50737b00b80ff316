package repository

import (
	"context"
	"errors"

	"vitrine/internal/infra"
	"vitrine/internal/model"

	"gorm.io/gorm"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) (*model.Produto, error)
	FindByID(ctx context.Context, id int64) (*model.Produto, error)
	// ListByFornecedorID returns the supplier's active catalog, in
	// unspecified order. Empty slice on no match or unavailable storage.
	ListByFornecedorID(ctx context.Context, fornecedorID int64) ([]model.Produto, error)
	// UpdateCampos applies only the columns present in campos, then
	// re-selects. An empty campos map is a plain read-back.
	UpdateCampos(ctx context.Context, id int64, campos map[string]interface{}) (*model.Produto, error)
}

type produtoRepo struct{ storage infra.Storage }

func NewProdutoRepository(storage infra.Storage) ProdutoRepository {
	return &produtoRepo{storage: storage}
}

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) (*model.Produto, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return r.findByID(ctx, db, p.ID)
}

func (r *produtoRepo) FindByID(ctx context.Context, id int64) (*model.Produto, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	return r.findByID(ctx, db, id)
}

func (r *produtoRepo) ListByFornecedorID(ctx context.Context, fornecedorID int64) ([]model.Produto, error) {
	db, ok := r.storage.DB()
	if !ok {
		return []model.Produto{}, nil
	}
	produtos := []model.Produto{}
	err := db.WithContext(ctx).
		Where("fornecedor_id = ? AND ativo = ?", fornecedorID, true).
		Find(&produtos).Error
	if err != nil {
		return nil, err
	}
	return produtos, nil
}

func (r *produtoRepo) UpdateCampos(ctx context.Context, id int64, campos map[string]interface{}) (*model.Produto, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	if len(campos) > 0 {
		err := db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).Updates(campos).Error
		if err != nil {
			return nil, err
		}
	}
	return r.findByID(ctx, db, id)
}

func (r *produtoRepo) findByID(ctx context.Context, db *gorm.DB, id int64) (*model.Produto, error) {
	var p model.Produto
	err := db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
