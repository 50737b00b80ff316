package service

import (
	"context"
	"testing"

	"vitrine/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCriarProduto_PrecoEmCentavos(t *testing.T) {
	svc := NewProdutoService(newStubProdutoRepo())

	produto, err := svc.Criar(context.Background(), dto.CriarProdutoRequest{
		FornecedorID: 1,
		Nome:         "Camiseta",
		Preco:        4999, // R$ 49,99
		Estoque:      10,
	})

	require.NoError(t, err)
	require.NotNil(t, produto)
	assert.Equal(t, int64(4999), produto.Preco)
	assert.True(t, produto.Ativo)
}

func TestBuildProdutoUpdateSet_SomenteCamposPresentes(t *testing.T) {
	campos := buildProdutoUpdateSet(dto.AtualizarProdutoRequest{
		ID:    1,
		Preco: int64Ptr(5999),
		Ativo: boolPtr(false),
	})

	assert.Equal(t, map[string]interface{}{
		"preco": int64(5999),
		"ativo": false,
	}, campos)
}

func TestAtualizarProduto_NaoSobrescreveCamposOmitidos(t *testing.T) {
	repo := newStubProdutoRepo()
	svc := NewProdutoService(repo)
	ctx := context.Background()

	criado, err := svc.Criar(ctx, dto.CriarProdutoRequest{
		FornecedorID: 1, Nome: "Caneca", Preco: 2500, Estoque: 8,
	})
	require.NoError(t, err)

	atualizado, err := svc.Atualizar(ctx, dto.AtualizarProdutoRequest{
		ID:    criado.ID,
		Preco: int64Ptr(2999),
	})

	require.NoError(t, err)
	require.NotNil(t, atualizado)
	assert.Equal(t, int64(2999), atualizado.Preco)
	assert.Equal(t, "Caneca", atualizado.Nome)
	assert.Equal(t, int64(8), atualizado.Estoque)
}

func TestAtualizarProduto_Inexistente(t *testing.T) {
	svc := NewProdutoService(newStubProdutoRepo())

	produto, err := svc.Atualizar(context.Background(), dto.AtualizarProdutoRequest{
		ID: 99, Preco: int64Ptr(100),
	})

	require.NoError(t, err)
	assert.Nil(t, produto)
}

func TestListarPorFornecedor_FiltraInativos(t *testing.T) {
	repo := newStubProdutoRepo()
	svc := NewProdutoService(repo)
	ctx := context.Background()

	ativo, err := svc.Criar(ctx, dto.CriarProdutoRequest{FornecedorID: 1, Nome: "Visível", Preco: 100})
	require.NoError(t, err)

	desativado, err := svc.Criar(ctx, dto.CriarProdutoRequest{FornecedorID: 1, Nome: "Oculto", Preco: 200})
	require.NoError(t, err)
	_, err = svc.Atualizar(ctx, dto.AtualizarProdutoRequest{ID: desativado.ID, Ativo: boolPtr(false)})
	require.NoError(t, err)

	produtos, err := svc.ListarPorFornecedor(ctx, 1)

	require.NoError(t, err)
	require.Len(t, produtos, 1)
	assert.Equal(t, ativo.ID, produtos[0].ID)
}
