package model

import "time"

// Cliente is the buyer-side profile, linked 1:1 to a User via UsuarioID.
// At most one row per user — enforced by the service, not by a constraint.
type Cliente struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UsuarioID    int64     `gorm:"index;not null" json:"usuarioId"`
	Telefone     *string   `gorm:"size:20" json:"telefone"`
	Endereco     *string   `json:"endereco"`
	Cidade       *string   `gorm:"size:100" json:"cidade"`
	Estado       *string   `gorm:"size:2" json:"estado"`
	Cep          *string   `gorm:"size:10" json:"cep"`
	CriadoEm     time.Time `gorm:"autoCreateTime;not null" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime;not null" json:"atualizadoEm"`
}

func (Cliente) TableName() string { return "clientes" }
