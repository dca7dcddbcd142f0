package db

import (
	"context"

	"protechub/models"
)

// O histórico é append-only: só existem criação (feita dentro de
// DevolverEmprestimo) e leitura.

func (r *Repo) ListHistoricos(ctx context.Context) ([]models.Historico, error) {
	var hs []models.Historico
	err := r.DB.WithContext(ctx).
		Order("data_devolucao_efetiva DESC").
		Find(&hs).Error
	return hs, err
}

func (r *Repo) FindHistoricoBySlug(ctx context.Context, slug string) (*models.Historico, error) {
	var h models.Historico
	if err := r.DB.WithContext(ctx).First(&h, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &h, nil
}
