package db

import (
	"context"
	"strings"
	"time"

	"protechub/models"

	"gorm.io/gorm"
)

func (r *Repo) CreateUsuario(ctx context.Context, u *models.Usuario) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *Repo) FindUsuarioBySlug(ctx context.Context, slug string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.DB.WithContext(ctx).First(&u, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) FindUsuarioByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	if err := r.DB.WithContext(ctx).First(&u, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repo) ListUsuarios(ctx context.Context, search string) ([]models.Usuario, error) {
	tx := r.DB.WithContext(ctx).Model(&models.Usuario{})
	if q := strings.TrimSpace(search); q != "" {
		tx = tx.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(q)+"%")
	}
	var us []models.Usuario
	err := tx.Order("created_at DESC").Find(&us).Error
	return us, err
}

type UpdateUsuarioInput struct {
	Nome         string
	Email        string
	Cargo        string
	Tipo         string
	DataAdmissao time.Time
	Foto         string
}

func (r *Repo) UpdateUsuario(ctx context.Context, slug string, in UpdateUsuarioInput) (*models.Usuario, error) {
	var out models.Usuario
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Usuario{}).
			Where("slug = ?", slug).
			Updates(map[string]any{
				"nome":          in.Nome,
				"email":         strings.ToLower(in.Email),
				"cargo":         in.Cargo,
				"tipo":          in.Tipo,
				"data_admissao": in.DataAdmissao,
				"foto":          in.Foto,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&out, "slug = ?", slug).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repo) DeleteUsuarioBySlug(ctx context.Context, slug string) error {
	res := r.DB.WithContext(ctx).Where("slug = ?", slug).Delete(&models.Usuario{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repo) TouchUsuarioSeen(ctx context.Context, slug string) error {
	return r.DB.WithContext(ctx).Model(&models.Usuario{}).
		Where("slug = ?", slug).
		Update("last_seen_at", time.Now().UTC()).Error
}

// CountAdmins diz se já existe algum Administrador (usado no bootstrap).
func (r *Repo) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&models.Usuario{}).
		Where("tipo = ?", models.TipoAdmin).
		Count(&n).Error
	return n, err
}
