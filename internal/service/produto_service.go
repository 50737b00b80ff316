package service

import (
	"context"

	"vitrine/internal/dto"
	"vitrine/internal/model"
	"vitrine/internal/repository"
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*model.Produto, error)
	Obter(ctx context.Context, id int64) (*model.Produto, error)
	ListarPorFornecedor(ctx context.Context, fornecedorID int64) ([]model.Produto, error)
	Atualizar(ctx context.Context, req dto.AtualizarProdutoRequest) (*model.Produto, error)
}

type produtoService struct {
	repo repository.ProdutoRepository
}

func NewProdutoService(repo repository.ProdutoRepository) ProdutoService {
	return &produtoService{repo: repo}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*model.Produto, error) {
	return s.repo.Create(ctx, &model.Produto{
		FornecedorID: req.FornecedorID,
		Nome:         req.Nome,
		Descricao:    req.Descricao,
		Preco:        req.Preco,
		Imagem:       req.Imagem,
		Estoque:      req.Estoque,
		Ativo:        true,
	})
}

func (s *produtoService) Obter(ctx context.Context, id int64) (*model.Produto, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *produtoService) ListarPorFornecedor(ctx context.Context, fornecedorID int64) ([]model.Produto, error) {
	return s.repo.ListByFornecedorID(ctx, fornecedorID)
}

func (s *produtoService) Atualizar(ctx context.Context, req dto.AtualizarProdutoRequest) (*model.Produto, error) {
	return s.repo.UpdateCampos(ctx, req.ID, buildProdutoUpdateSet(req))
}

// buildProdutoUpdateSet maps only the fields present in the request to their
// columns, so an omitted field is never overwritten with a zero value.
func buildProdutoUpdateSet(req dto.AtualizarProdutoRequest) map[string]interface{} {
	campos := map[string]interface{}{}
	if req.Nome != nil {
		campos["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		campos["descricao"] = *req.Descricao
	}
	if req.Preco != nil {
		campos["preco"] = *req.Preco
	}
	if req.Imagem != nil {
		campos["imagem"] = *req.Imagem
	}
	if req.Estoque != nil {
		campos["estoque"] = *req.Estoque
	}
	if req.Ativo != nil {
		campos["ativo"] = *req.Ativo
	}
	return campos
}
