package controllers_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"protechub/app"
	"protechub/config"
	"protechub/controllers"
	"protechub/db"
	"protechub/models"
	"protechub/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) *db.Repo {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dial := gormsqlite.Dialector{
		DriverName: "sqlite",
		DSN:        fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared", name),
	}
	conn, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := conn.AutoMigrate(
		&models.Equipamento{},
		&models.Usuario{},
		&models.Emprestimo{},
		&models.Historico{},
	); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	return db.NewRepo(conn)
}

// fakeSessions troca o Redis por um map nos testes.
type fakeSessions struct{ m map[string]*session.Sessao }

func newFakeSessions() *fakeSessions { return &fakeSessions{m: map[string]*session.Sessao{}} }

func (f *fakeSessions) Create(_ context.Context, id, usuarioSlug string) error {
	f.m[id] = &session.Sessao{UsuarioSlug: usuarioSlug, IssuedAt: time.Now().Unix()}
	return nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*session.Sessao, error) {
	s, ok := f.m[id]
	if !ok {
		return nil, errors.New("session not found")
	}
	return s, nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.m, id)
	return nil
}

func (f *fakeSessions) RevokeAllForUsuario(_ context.Context, usuarioSlug string) error {
	for id, s := range f.m {
		if s.UsuarioSlug == usuarioSlug {
			delete(f.m, id)
		}
	}
	return nil
}

var _ session.Store = (*fakeSessions)(nil)

// newTestRouter monta as mesmas rotas do routes.RegisterRoutes, sem o
// middleware de last-seen (que precisa de Redis).
func newTestRouter(t *testing.T, repo *db.Repo, sess session.Store) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &controllers.Srv{
		Repo:    repo,
		AppSess: sess,
		Log:     zap.NewNop().Sugar(),
		Cfg:     config.Config{SessionTTL: time.Hour},
	}

	authCtl := controllers.GetAuthController(s)
	equipCtl := controllers.GetEquipamentoController(s)
	usuarioCtl := controllers.GetUsuarioController(s)
	loanCtl := controllers.GetEmprestimoController(s)
	histCtl := controllers.GetHistoricoController(s)

	authMW := app.AuthRequired(sess, repo)
	gestaoMW := app.GroupRequired(models.GrupoAdmin, models.GrupoSupervisor)
	adminMW := app.GroupRequired(models.GrupoAdmin)

	r := gin.New()
	r.POST("/login", authCtl.Login)
	r.POST("/logout", authMW, authCtl.Logout)

	equipamentos := r.Group("/api/equipamentos", authMW, gestaoMW)
	{
		equipamentos.GET("", equipCtl.ListEquipamentos)
		equipamentos.POST("", equipCtl.CreateEquipamento)
		equipamentos.PUT("/:slug", equipCtl.UpdateEquipamento)
		equipamentos.DELETE("/:slug", equipCtl.DeleteEquipamento)
	}
	usuarios := r.Group("/api/usuarios", authMW, adminMW)
	{
		usuarios.GET("", usuarioCtl.ListUsuarios)
		usuarios.POST("", usuarioCtl.CreateUsuario)
		usuarios.PUT("/:slug", usuarioCtl.UpdateUsuario)
		usuarios.DELETE("/:slug", usuarioCtl.DeleteUsuario)
	}
	emprestimos := r.Group("/api/emprestimos", authMW, gestaoMW)
	{
		emprestimos.GET("", loanCtl.ListEmprestimos)
		emprestimos.POST("", loanCtl.Emprestar)
		emprestimos.POST("/:slug/devolver", loanCtl.Devolver)
	}
	historicos := r.Group("/api/historicos", authMW, gestaoMW)
	{
		historicos.GET("", histCtl.ListHistoricos)
	}
	return r
}

func seedUsuario(t *testing.T, repo *db.Repo, nome, email, senha, tipo string) *models.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	u := &models.Usuario{
		Slug:         uuid.NewString(),
		Nome:         nome,
		Email:        strings.ToLower(email),
		SenhaHash:    string(hash),
		Cargo:        models.CargoTecnico,
		Tipo:         tipo,
		DataAdmissao: time.Now().AddDate(-1, 0, 0),
	}
	if err := repo.CreateUsuario(context.Background(), u); err != nil {
		t.Fatalf("seed usuario: %v", err)
	}
	return u
}

func seedEquipamento(t *testing.T, repo *db.Repo, nome string, total, emprestada int) *models.Equipamento {
	t.Helper()
	e := &models.Equipamento{
		Slug:                 uuid.NewString(),
		Nome:                 nome,
		Categoria:            models.CategoriaCapacete,
		Validade:             time.Date(2027, time.June, 10, 0, 0, 0, 0, time.UTC),
		QuantidadeTotal:      total,
		QuantidadeEmprestada: emprestada,
	}
	if err := repo.CreateEquipamento(context.Background(), e); err != nil {
		t.Fatalf("seed equipamento: %v", err)
	}
	return e
}

// loginAs cria uma sessão direto no store e devolve o cookie dela.
func loginAs(t *testing.T, sess session.Store, u *models.Usuario) *http.Cookie {
	t.Helper()
	id := uuid.NewString()
	if err := sess.Create(context.Background(), id, u.Slug); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: app.AppSessionCookie, Value: id}
}
