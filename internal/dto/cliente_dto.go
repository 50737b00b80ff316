package dto

// CriarClienteRequest — every field is optional; the profile is bound to the
// caller's user id, never to a caller-supplied one.
type CriarClienteRequest struct {
	Telefone *string `json:"telefone" validate:"omitempty,max=20"`
	Endereco *string `json:"endereco"`
	Cidade   *string `json:"cidade" validate:"omitempty,max=100"`
	Estado   *string `json:"estado" validate:"omitempty,len=2"`
	Cep      *string `json:"cep" validate:"omitempty,max=10"`
}
