package db

import (
	"context"
	"strings"
	"time"

	"protechub/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateEquipamento(ctx context.Context, e *models.Equipamento) error {
	return r.DB.WithContext(ctx).Create(e).Error
}

func (r *Repo) FindEquipamentoBySlug(ctx context.Context, slug string) (*models.Equipamento, error) {
	var e models.Equipamento
	if err := r.DB.WithContext(ctx).First(&e, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

// ListEquipamentos filtra por substring do nome (case-insensitive) quando
// search não é vazio; senão devolve tudo.
func (r *Repo) ListEquipamentos(ctx context.Context, search string) ([]models.Equipamento, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Equipamento{})
	if q := strings.TrimSpace(search); q != "" {
		tx = tx.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	var es []models.Equipamento
	err := tx.Order("created_at DESC").Find(&es).Error
	return es, err
}

type UpdateEquipamentoInput struct {
	Nome            string
	Categoria       string
	Validade        time.Time
	QuantidadeTotal int
}

// UpdateEquipamento grava todos os campos de uma vez, com a nova quantidade
// total condicionada no WHERE para que duas atualizações concorrentes nunca
// deixem a disponibilidade negativa. Ou tudo entra, ou nada entra.
func (r *Repo) UpdateEquipamento(ctx context.Context, slug string, in UpdateEquipamentoInput) (*models.Equipamento, error) {
	var out models.Equipamento
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Equipamento{}).
			Where("slug = ? AND quantidade_emprestada <= ?", slug, in.QuantidadeTotal).
			Updates(map[string]any{
				"nome":             in.Nome,
				"categoria":        in.Categoria,
				"validade":         in.Validade,
				"quantidade_total": in.QuantidadeTotal,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Ou o slug não existe, ou a condição de quantidade barrou.
			var n int64
			if err := tx.Model(&models.Equipamento{}).Where("slug = ?", slug).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return gorm.ErrRecordNotFound
			}
			return ErrQuantidadeConflito
		}
		return tx.First(&out, "slug = ?", slug).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) DeleteEquipamentoBySlug(ctx context.Context, slug string) error {
	res := r.DB.WithContext(ctx).Where("slug = ?", slug).Delete(&models.Equipamento{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
