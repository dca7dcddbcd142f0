package app

import (
	"context"
	"strings"
	"time"

	"protechub/db"
	"protechub/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BootstrapFirstAdmin semeia um Administrador quando o banco não tem nenhum,
// para a primeira instalação não nascer trancada para fora.
func (a *App) BootstrapFirstAdmin(ctx context.Context, repo *db.Repo) {
	cfg := a.Config
	if cfg.BootstrapEmail == "" || cfg.BootstrapSenha == "" {
		return
	}
	n, err := repo.CountAdmins(ctx)
	if err != nil {
		a.Log.Warnw("bootstrap: count admins", "err", err)
		return
	}
	if n > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.BootstrapSenha), bcrypt.DefaultCost)
	if err != nil {
		a.Log.Warnw("bootstrap: hash password", "err", err)
		return
	}

	u := &models.Usuario{
		Slug:         uuid.NewString(),
		Nome:         "Administrador",
		Email:        strings.ToLower(cfg.BootstrapEmail),
		SenhaHash:    string(hash),
		Cargo:        models.CargoAlmoxarife,
		Tipo:         models.TipoAdmin,
		DataAdmissao: time.Now().UTC(),
	}
	if err := repo.CreateUsuario(ctx, u); err != nil {
		a.Log.Warnw("bootstrap: create admin", "err", err)
		return
	}
	a.Log.Infow("bootstrap: first admin created", "email", u.Email)
}
