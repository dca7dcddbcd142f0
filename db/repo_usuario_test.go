package db

import (
	"context"
	"testing"
	"time"

	"protechub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListUsuarios_Busca(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	seedUsuario(t, r, "Maria Silva", "maria@ex.com", models.TipoColaborador)
	seedUsuario(t, r, "João Souza", "joao@ex.com", models.TipoSupervisor)

	us, err := r.ListUsuarios(ctx, "maria")
	require.NoError(t, err)
	require.Len(t, us, 1)
	assert.Equal(t, "Maria Silva", us[0].Nome)

	us, err = r.ListUsuarios(ctx, "")
	require.NoError(t, err)
	assert.Len(t, us, 2)
}

func TestFindUsuarioByEmail_CaseInsensitive(t *testing.T) {
	r := newTestRepo(t)
	seedUsuario(t, r, "Maria", "maria@ex.com", models.TipoAdmin)

	u, err := r.FindUsuarioByEmail(context.Background(), "MARIA@EX.COM")
	require.NoError(t, err)
	assert.Equal(t, "Maria", u.Nome)
}

func TestUpdateUsuario(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUsuario(t, r, "Maria", "maria@ex.com", models.TipoColaborador)

	out, err := r.UpdateUsuario(ctx, u.Slug, UpdateUsuarioInput{
		Nome:         "Maria Silva",
		Email:        "maria@ex.com",
		Cargo:        models.CargoAlmoxarife,
		Tipo:         models.TipoSupervisor,
		DataAdmissao: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", out.Nome)
	assert.Equal(t, u.Slug, out.Slug) // slug nunca muda
	assert.Equal(t, []string{models.GrupoSupervisor}, out.Grupos())

	_, err = r.UpdateUsuario(ctx, "nao-existe", UpdateUsuarioInput{Nome: "x", Email: "x@x.com"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteUsuario(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := seedUsuario(t, r, "Maria", "maria@ex.com", models.TipoColaborador)

	assert.ErrorIs(t, r.DeleteUsuarioBySlug(ctx, "nao-existe"), gorm.ErrRecordNotFound)
	require.NoError(t, r.DeleteUsuarioBySlug(ctx, u.Slug))

	var n int64
	require.NoError(t, r.DB.Model(&models.Usuario{}).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestCountAdmins(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	n, err := r.CountAdmins(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	seedUsuario(t, r, "Admin", "admin@ex.com", models.TipoAdmin)
	seedUsuario(t, r, "Maria", "maria@ex.com", models.TipoColaborador)

	n, err = r.CountAdmins(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
