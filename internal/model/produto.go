package model

import "time"

// Produto is a catalog item owned by a Fornecedor.
// Preco is stored in centavos (integer minor units) to avoid floating-point
// rounding. Estoque is informational: order creation does not decrement it.
type Produto struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FornecedorID int64     `gorm:"index;not null" json:"fornecedorId"`
	Nome         string    `gorm:"size:255;not null" json:"nome"`
	Descricao    *string   `json:"descricao"`
	Preco        int64     `gorm:"not null" json:"preco"`
	Imagem       *string   `json:"imagem"`
	Estoque      int64     `gorm:"not null;default:0" json:"estoque"`
	Ativo        bool      `gorm:"not null;default:true" json:"ativo"`
	CriadoEm     time.Time `gorm:"autoCreateTime;not null" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime;not null" json:"atualizadoEm"`
}

func (Produto) TableName() string { return "produtos" }
