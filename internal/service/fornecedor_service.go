package service

import (
	"context"

	"vitrine/internal/dto"
	"vitrine/internal/model"
	"vitrine/internal/repository"
)

type FornecedorService interface {
	Criar(ctx context.Context, usuarioID int64, req dto.CriarFornecedorRequest) (*model.Fornecedor, error)
	Obter(ctx context.Context, usuarioID int64) (*model.Fornecedor, error)
	ObterAtivo(ctx context.Context) (*model.Fornecedor, error)
}

type fornecedorService struct {
	repo repository.FornecedorRepository
}

func NewFornecedorService(repo repository.FornecedorRepository) FornecedorService {
	return &fornecedorService{repo: repo}
}

func (s *fornecedorService) Criar(ctx context.Context, usuarioID int64, req dto.CriarFornecedorRequest) (*model.Fornecedor, error) {
	existing, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.repo.Create(ctx, &model.Fornecedor{
		UsuarioID:   usuarioID,
		NomeEmpresa: req.NomeEmpresa,
		Descricao:   req.Descricao,
		Logo:        req.Logo,
		Ativo:       true,
	})
}

func (s *fornecedorService) Obter(ctx context.Context, usuarioID int64) (*model.Fornecedor, error) {
	return s.repo.FindByUsuarioID(ctx, usuarioID)
}

func (s *fornecedorService) ObterAtivo(ctx context.Context) (*model.Fornecedor, error) {
	return s.repo.FindAtivo(ctx)
}
