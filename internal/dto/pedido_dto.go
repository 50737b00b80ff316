package dto

// CriarPedidoRequest is accepted without authentication (guest checkout).
// PrecoTotal is stored as submitted — the server does not recompute it.
type CriarPedidoRequest struct {
	ClienteID       int64   `json:"clienteId" validate:"required"`
	FornecedorID    int64   `json:"fornecedorId" validate:"required"`
	ProdutoID       int64   `json:"produtoId" validate:"required"`
	Quantidade      int64   `json:"quantidade" validate:"min=0"`
	PrecoUnitario   int64   `json:"precoUnitario" validate:"min=0"`
	PrecoTotal      int64   `json:"precoTotal" validate:"min=0"`
	NomeCliente     string  `json:"nomeCliente" validate:"required,max=255"`
	EmailCliente    string  `json:"emailCliente" validate:"required,max=320"`
	TelefoneCliente *string `json:"telefoneCliente" validate:"omitempty,max=20"`
	EnderecoCliente *string `json:"enderecoCliente"`
}

type AtualizarStatusRequest struct {
	ID     int64  `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=pendente confirmado enviado entregue cancelado"`
}
