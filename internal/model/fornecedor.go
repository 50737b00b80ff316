package model

import "time"

// Fornecedor is the supplier-side profile, linked 1:1 to a User.
// The storefront assumes a single row with Ativo=true at any given time.
type Fornecedor struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID    int64     `gorm:"index;not null" json:"usuarioId"`
	NomeEmpresa  string    `gorm:"size:255;not null" json:"nomeEmpresa"`
	Descricao    *string   `json:"descricao"`
	Logo         *string   `json:"logo"`
	Ativo        bool      `gorm:"not null;default:true" json:"ativo"`
	CriadoEm     time.Time `gorm:"autoCreateTime;not null" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime;not null" json:"atualizadoEm"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
