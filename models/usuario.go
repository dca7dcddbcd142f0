package models

import "time"

const UsuarioTable = "pth_usuarios"

// Usuario é um colaborador cadastrado. O Email é a identidade de login;
// Tipo define os grupos de acesso (ADM -> Admin, SUP -> Supervisor).
type Usuario struct {
	ID    uint   `gorm:"primaryKey" json:"-"`
	Slug  string `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Nome  string `gorm:"size:255;not null" json:"nome"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`

	SenhaHash string `gorm:"size:72;not null" json:"-"`

	Cargo        string    `gorm:"size:3;not null" json:"cargo"`
	Tipo         string    `gorm:"size:3;not null" json:"tipo"`
	DataAdmissao time.Time `gorm:"not null" json:"data_admissao"`

	// Referência opaca para a foto; o armazenamento do arquivo é externo.
	Foto string `gorm:"size:255" json:"foto,omitempty"`

	LastSeenAt *time.Time `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Usuario) TableName() string { return UsuarioTable }

// Grupos devolve os grupos de acesso concedidos pelo tipo do usuário.
func (u *Usuario) Grupos() []string { return GruposDoTipo(u.Tipo) }
