package models

import "time"

const HistoricoTable = "pth_historicos"

// Historico arquiva um empréstimo encerrado. É append-only: nenhuma
// operação de update ou delete existe sobre esta tabela.
//
// NomeEquipamento e NomeUsuario são snapshots desnormalizados de propósito:
// o histórico continua correto mesmo se o equipamento ou o usuário de
// origem for renomeado ou removido depois.
type Historico struct {
	ID uint `gorm:"primaryKey" json:"-"`

	// O slug é gerado uma única vez na criação (UUID aleatório, não
	// derivado do conteúdo) e nunca é recalculado.
	Slug string `gorm:"size:64;uniqueIndex;not null" json:"slug"`

	Quantidade int    `gorm:"not null" json:"quantidade"`
	Status     string `gorm:"size:3;not null;default:'DEV'" json:"status"`
	Observacao string `gorm:"type:text" json:"observacao,omitempty"`

	DataEmprestimo       time.Time `gorm:"not null" json:"data_emprestimo"`
	DataDevolucaoEfetiva time.Time `gorm:"not null" json:"data_devolucao_efetiva"`

	NomeEquipamento string `gorm:"size:255;not null" json:"nome_equipamento"`
	NomeUsuario     string `gorm:"size:255;not null" json:"nome_usuario"`

	CreatedAt time.Time `json:"created_at"`
}

func (Historico) TableName() string { return HistoricoTable }
