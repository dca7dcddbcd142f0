package db

import (
	"context"
	"strings"
	"time"

	"protechub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmprestarInput struct {
	EquipamentoSlug       string
	UsuarioSlug           string
	Quantidade            int
	Observacao            string
	DataDevolucaoPrevista *time.Time
}

// EmprestarEquipamento reserva unidades e abre o empréstimo numa transação.
// O incremento é condicionado à disponibilidade no WHERE, então duas
// requisições concorrentes nunca reservam além do total.
func (r *Repo) EmprestarEquipamento(ctx context.Context, in EmprestarInput) (*models.Emprestimo, error) {
	var loan *models.Emprestimo
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq models.Equipamento
		if err := tx.First(&eq, "slug = ?", in.EquipamentoSlug).Error; err != nil {
			return err
		}
		var usr models.Usuario
		if err := tx.First(&usr, "slug = ?", in.UsuarioSlug).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Equipamento{}).
			Where("id = ? AND quantidade_total - quantidade_emprestada >= ?", eq.ID, in.Quantidade).
			Update("quantidade_emprestada", gorm.Expr("quantidade_emprestada + ?", in.Quantidade))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSemDisponibilidade
		}

		l := &models.Emprestimo{
			Slug:                  uuid.NewString(),
			EquipamentoID:         eq.ID,
			UsuarioID:             usr.ID,
			Quantidade:            in.Quantidade,
			Status:                models.StatusEmprestado,
			Observacao:            in.Observacao,
			DataEmprestimo:        time.Now().UTC(),
			DataDevolucaoPrevista: in.DataDevolucaoPrevista,
		}
		if err := tx.Create(l).Error; err != nil {
			return err
		}
		loan = l
		return nil
	})
	return loan, err
}

type DevolverInput struct {
	Status     string // vazio = DEV
	Observacao string // anexada à observação do empréstimo
}

// DevolverEmprestimo encerra o empréstimo: libera as unidades, grava a
// linha imutável no histórico (com os nomes copiados, não referenciados) e
// remove o empréstimo aberto, tudo na mesma transação.
func (r *Repo) DevolverEmprestimo(ctx context.Context, slug string, in DevolverInput) (*models.Historico, error) {
	status := in.Status
	if status == "" {
		status = models.StatusDevolvido
	}

	var hist *models.Historico
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var l models.Emprestimo
		if err := tx.First(&l, "slug = ?", slug).Error; err != nil {
			return err
		}

		// Equipamento ou usuário podem ter sido removidos com o empréstimo
		// ainda aberto; o arquivo registra o que der para registrar.
		nomeEquipamento := "(removido)"
		var eq models.Equipamento
		if err := tx.First(&eq, "id = ?", l.EquipamentoID).Error; err == nil {
			nomeEquipamento = eq.Nome
			if err := tx.Model(&models.Equipamento{}).
				Where("id = ? AND quantidade_emprestada >= ?", eq.ID, l.Quantidade).
				Update("quantidade_emprestada", gorm.Expr("quantidade_emprestada - ?", l.Quantidade)).Error; err != nil {
				return err
			}
		}

		nomeUsuario := "(removido)"
		var usr models.Usuario
		if err := tx.First(&usr, "id = ?", l.UsuarioID).Error; err == nil {
			nomeUsuario = usr.Nome
		}

		obs := l.Observacao
		if extra := strings.TrimSpace(in.Observacao); extra != "" {
			obs = strings.TrimSpace(obs + " " + extra)
		}

		h := &models.Historico{
			Slug:                 uuid.NewString(),
			Quantidade:           l.Quantidade,
			Status:               status,
			Observacao:           obs,
			DataEmprestimo:       l.DataEmprestimo,
			DataDevolucaoEfetiva: time.Now().UTC(),
			NomeEquipamento:      nomeEquipamento,
			NomeUsuario:          nomeUsuario,
		}
		if err := tx.Create(h).Error; err != nil {
			return err
		}

		// Se outra devolução do mesmo empréstimo venceu a corrida, o delete
		// não acha a linha: desfaz o decremento e o histórico desta transação.
		res := tx.Delete(&models.Emprestimo{}, l.ID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		hist = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hist, nil
}

// EmprestimoRow é a projeção de listagem, com os nomes resolvidos por join.
type EmprestimoRow struct {
	Slug                  string     `json:"slug"`
	Quantidade            int        `json:"quantidade"`
	Status                string     `json:"status"`
	Observacao            string     `json:"observacao,omitempty"`
	DataEmprestimo        time.Time  `json:"data_emprestimo"`
	DataDevolucaoPrevista *time.Time `json:"data_devolucao_prevista,omitempty"`
	EquipamentoSlug       *string    `json:"equipamento_slug,omitempty"`
	NomeEquipamento       *string    `json:"nome_equipamento,omitempty"`
	UsuarioSlug           *string    `json:"usuario_slug,omitempty"`
	NomeUsuario           *string    `json:"nome_usuario,omitempty"`
}

func (r *Repo) ListEmprestimos(ctx context.Context) ([]EmprestimoRow, error) {
	var rows []EmprestimoRow
	err := r.DB.WithContext(ctx).
		Table(models.EmprestimoTable+" l").
		Select(`
			l.slug, l.quantidade, l.status, l.observacao,
			l.data_emprestimo, l.data_devolucao_prevista,
			e.slug AS equipamento_slug,
			e.nome AS nome_equipamento,
			u.slug AS usuario_slug,
			u.nome AS nome_usuario
		`).
		Joins("LEFT JOIN "+models.EquipamentoTable+" e ON e.id = l.equipamento_id").
		Joins("LEFT JOIN "+models.UsuarioTable+" u ON u.id = l.usuario_id").
		Order("l.data_emprestimo DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repo) FindEmprestimoBySlug(ctx context.Context, slug string) (*models.Emprestimo, error) {
	var l models.Emprestimo
	if err := r.DB.WithContext(ctx).First(&l, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &l, nil
}
