package service

import (
	"context"

	"vitrine/internal/dto"
	"vitrine/internal/model"
	"vitrine/internal/repository"
)

type PedidoService interface {
	// Criar accepts guest checkout: the caller is not required to be
	// authenticated and the submitted ids and prices are stored as-is.
	Criar(ctx context.Context, req dto.CriarPedidoRequest) (*model.Pedido, error)
	ListarCliente(ctx context.Context, usuarioID int64) ([]model.Pedido, error)
	ListarFornecedor(ctx context.Context, usuarioID int64) ([]model.Pedido, error)
	AtualizarStatus(ctx context.Context, id int64, status string) (*model.Pedido, error)
}

type pedidoService struct {
	repo repository.PedidoRepository
}

func NewPedidoService(repo repository.PedidoRepository) PedidoService {
	return &pedidoService{repo: repo}
}

func (s *pedidoService) Criar(ctx context.Context, req dto.CriarPedidoRequest) (*model.Pedido, error) {
	// PrecoTotal is not recomputed and estoque is not decremented — the
	// order records what the storefront submitted.
	return s.repo.Create(ctx, &model.Pedido{
		ClienteID:       req.ClienteID,
		FornecedorID:    req.FornecedorID,
		ProdutoID:       req.ProdutoID,
		Quantidade:      req.Quantidade,
		PrecoUnitario:   req.PrecoUnitario,
		PrecoTotal:      req.PrecoTotal,
		Status:          model.StatusPendente,
		NomeCliente:     req.NomeCliente,
		EmailCliente:    req.EmailCliente,
		TelefoneCliente: req.TelefoneCliente,
		EnderecoCliente: req.EnderecoCliente,
	})
}

// ListarCliente filters by the caller's user id used as cliente id. The
// storefront creates the profile row in signup order, so the ids align.
func (s *pedidoService) ListarCliente(ctx context.Context, usuarioID int64) ([]model.Pedido, error) {
	return s.repo.ListByClienteID(ctx, usuarioID)
}

func (s *pedidoService) ListarFornecedor(ctx context.Context, usuarioID int64) ([]model.Pedido, error) {
	return s.repo.ListByFornecedorID(ctx, usuarioID)
}

func (s *pedidoService) AtualizarStatus(ctx context.Context, id int64, status string) (*model.Pedido, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}
