package model

import "time"

// Pedido status values. Transitions are unconstrained: any value may follow
// any other — the dashboard drives the lifecycle.
const (
	StatusPendente   = "pendente"
	StatusConfirmado = "confirmado"
	StatusEnviado    = "enviado"
	StatusEntregue   = "entregue"
	StatusCancelado  = "cancelado"
)

// Pedido links a Cliente, Fornecedor and Produto by id (no FK enforcement).
// PrecoUnitario/PrecoTotal are taken as submitted at creation time and the
// NomeCliente/EmailCliente/... fields snapshot the delivery details so later
// Cliente edits don't rewrite order history.
type Pedido struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClienteID       int64     `gorm:"index;not null" json:"clienteId"`
	FornecedorID    int64     `gorm:"index;not null" json:"fornecedorId"`
	ProdutoID       int64     `gorm:"index;not null" json:"produtoId"`
	Quantidade      int64     `gorm:"not null" json:"quantidade"`
	PrecoUnitario   int64     `gorm:"not null" json:"precoUnitario"`
	PrecoTotal      int64     `gorm:"not null" json:"precoTotal"`
	Status          string    `gorm:"type:varchar(12);not null;default:'pendente'" json:"status"`
	NomeCliente     string    `gorm:"size:255;not null" json:"nomeCliente"`
	EmailCliente    string    `gorm:"size:320;not null" json:"emailCliente"`
	TelefoneCliente *string   `gorm:"size:20" json:"telefoneCliente"`
	EnderecoCliente *string   `json:"enderecoCliente"`
	CriadoEm        time.Time `gorm:"autoCreateTime;not null" json:"criadoEm"`
	AtualizadoEm    time.Time `gorm:"autoUpdateTime;not null" json:"atualizadoEm"`
}

func (Pedido) TableName() string { return "pedidos" }
