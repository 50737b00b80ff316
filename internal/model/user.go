package model

import "time"

// User roles. RoleAdmin is reserved for the supplier-side owner account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User backs the auth flow. Rows are created/updated exclusively through the
// openId upsert — the OAuth gateway posts the identity after each login.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OpenID       string    `gorm:"column:open_id;size:64;uniqueIndex;not null" json:"openId"`
	Name         *string   `json:"name"`
	Email        *string   `gorm:"size:320" json:"email"`
	LoginMethod  *string   `gorm:"size:64" json:"loginMethod"`
	Role         string    `gorm:"type:varchar(10);not null;default:'user'" json:"role"`
	LastSignedIn time.Time `gorm:"not null" json:"lastSignedIn"`
	CriadoEm     time.Time `gorm:"autoCreateTime;not null" json:"criadoEm"`
	AtualizadoEm time.Time `gorm:"autoUpdateTime;not null" json:"atualizadoEm"`
}

func (User) TableName() string { return "users" }
