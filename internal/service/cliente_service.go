package service

import (
	"context"

	"vitrine/internal/dto"
	"vitrine/internal/model"
	"vitrine/internal/repository"
)

type ClienteService interface {
	Criar(ctx context.Context, usuarioID int64, req dto.CriarClienteRequest) (*model.Cliente, error)
	Obter(ctx context.Context, usuarioID int64) (*model.Cliente, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, usuarioID int64, req dto.CriarClienteRequest) (*model.Cliente, error) {
	// At most one profile per user; a repeat call returns the existing row.
	existing, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.repo.Create(ctx, &model.Cliente{
		UsuarioID: usuarioID,
		Telefone:  req.Telefone,
		Endereco:  req.Endereco,
		Cidade:    req.Cidade,
		Estado:    req.Estado,
		Cep:       req.Cep,
	})
}

func (s *clienteService) Obter(ctx context.Context, usuarioID int64) (*model.Cliente, error) {
	return s.repo.FindByUsuarioID(ctx, usuarioID)
}
