package dto

type CriarFornecedorRequest struct {
	NomeEmpresa string  `json:"nomeEmpresa" validate:"required,max=255"`
	Descricao   *string `json:"descricao"`
	Logo        *string `json:"logo"`
}
