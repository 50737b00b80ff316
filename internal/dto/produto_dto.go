package dto

type CriarProdutoRequest struct {
	FornecedorID int64   `json:"fornecedorId" validate:"required"`
	Nome         string  `json:"nome" validate:"required,max=255"`
	Descricao    *string `json:"descricao"`
	Preco        int64   `json:"preco" validate:"min=0"`
	Imagem       *string `json:"imagem"`
	Estoque      int64   `json:"estoque" validate:"min=0"`
}

// AtualizarProdutoRequest carries any subset of the mutable fields; only the
// fields present in the JSON body are written.
type AtualizarProdutoRequest struct {
	ID        int64   `json:"id" validate:"required"`
	Nome      *string `json:"nome" validate:"omitempty,max=255"`
	Descricao *string `json:"descricao"`
	Preco     *int64  `json:"preco" validate:"omitempty,min=0"`
	Imagem    *string `json:"imagem"`
	Estoque   *int64  `json:"estoque" validate:"omitempty,min=0"`
	Ativo     *bool   `json:"ativo"`
}
