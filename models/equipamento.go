package models

import "time"

const EquipamentoTable = "pth_equipamentos"

// Equipamento é um EPI do catálogo. QuantidadeEmprestada acompanha os
// empréstimos em aberto; a disponibilidade é sempre derivada, nunca gravada.
type Equipamento struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	Slug      string `gorm:"size:64;uniqueIndex;not null" json:"slug"`
	Nome      string `gorm:"size:255;not null" json:"nome"`
	Categoria string `gorm:"size:3;not null" json:"categoria"`

	Validade             time.Time `gorm:"not null" json:"validade"`
	QuantidadeTotal      int       `gorm:"not null;default:0" json:"quantidade_total"`
	QuantidadeEmprestada int       `gorm:"not null;default:0" json:"quantidade_emprestada"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Equipamento) TableName() string { return EquipamentoTable }

// QuantidadeDisponivel é o acessor derivado: total menos emprestada.
func (e *Equipamento) QuantidadeDisponivel() int {
	return e.QuantidadeTotal - e.QuantidadeEmprestada
}
