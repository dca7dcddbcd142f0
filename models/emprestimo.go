package models

import "time"

const EmprestimoTable = "pth_emprestimos"

// Emprestimo é um empréstimo em aberto. Ao ser devolvido vira uma linha
// imutável em Historico e some desta tabela.
type Emprestimo struct {
	ID   uint   `gorm:"primaryKey" json:"-"`
	Slug string `gorm:"size:64;uniqueIndex;not null" json:"slug"`

	EquipamentoID uint `gorm:"index;not null" json:"-"`
	UsuarioID     uint `gorm:"index;not null" json:"-"`

	Quantidade int    `gorm:"not null" json:"quantidade"`
	Status     string `gorm:"size:3;not null;default:'EMP'" json:"status"`
	Observacao string `gorm:"type:text" json:"observacao,omitempty"`

	DataEmprestimo        time.Time  `gorm:"index;not null" json:"data_emprestimo"`
	DataDevolucaoPrevista *time.Time `json:"data_devolucao_prevista,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Emprestimo) TableName() string { return EmprestimoTable }
