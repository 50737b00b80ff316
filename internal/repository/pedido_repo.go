package repository

import (
	"context"
	"errors"

	"vitrine/internal/infra"
	"vitrine/internal/model"

	"gorm.io/gorm"
)

type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) (*model.Pedido, error)
	ListByClienteID(ctx context.Context, clienteID int64) ([]model.Pedido, error)
	ListByFornecedorID(ctx context.Context, fornecedorID int64) ([]model.Pedido, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Pedido, error)
}

type pedidoRepo struct{ storage infra.Storage }

func NewPedidoRepository(storage infra.Storage) PedidoRepository {
	return &pedidoRepo{storage: storage}
}

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) (*model.Pedido, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return r.findByID(ctx, db, p.ID)
}

func (r *pedidoRepo) ListByClienteID(ctx context.Context, clienteID int64) ([]model.Pedido, error) {
	db, ok := r.storage.DB()
	if !ok {
		return []model.Pedido{}, nil
	}
	pedidos := []model.Pedido{}
	if err := db.WithContext(ctx).Where("cliente_id = ?", clienteID).Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepo) ListByFornecedorID(ctx context.Context, fornecedorID int64) ([]model.Pedido, error) {
	db, ok := r.storage.DB()
	if !ok {
		return []model.Pedido{}, nil
	}
	pedidos := []model.Pedido{}
	if err := db.WithContext(ctx).Where("fornecedor_id = ?", fornecedorID).Find(&pedidos).Error; err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepo) UpdateStatus(ctx context.Context, id int64, status string) (*model.Pedido, error) {
	db, ok := r.storage.DB()
	if !ok {
		return nil, nil
	}
	err := db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).Update("status", status).Error
	if err != nil {
		return nil, err
	}
	return r.findByID(ctx, db, id)
}

func (r *pedidoRepo) findByID(ctx context.Context, db *gorm.DB, id int64) (*model.Pedido, error) {
	var p model.Pedido
	err := db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
