package routes

import (
	"time"

	"protechub/app"
	"protechub/controllers"
	"protechub/models"
)

func RegisterRoutes(a *app.App) {
	r := a.Router
	s := controllers.GetSrv(a)

	authCtl := controllers.GetAuthController(s)
	equipCtl := controllers.GetEquipamentoController(s)
	usuarioCtl := controllers.GetUsuarioController(s)
	loanCtl := controllers.GetEmprestimoController(s)
	histCtl := controllers.GetHistoricoController(s)

	authMW := app.AuthRequired(s.AppSess, s.Repo)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// Equipamentos, empréstimos e histórico: Admin ou Supervisor.
	// Usuários: só Admin.
	gestaoMW := app.GroupRequired(models.GrupoAdmin, models.GrupoSupervisor)
	adminMW := app.GroupRequired(models.GrupoAdmin)

	// ------------------------------
	// Sessão (público + logado)
	// ------------------------------
	r.POST("/login", authCtl.Login)
	r.POST("/logout", authMW, authCtl.Logout)

	// ------------------------------
	// Equipamentos (Admin | Supervisor)
	// ------------------------------
	equipamentos := r.Group("/api/equipamentos", authMW, gestaoMW, seenMW)
	{
		equipamentos.GET("", equipCtl.ListEquipamentos) // ?search=
		equipamentos.POST("", equipCtl.CreateEquipamento)
		equipamentos.PUT("/:slug", equipCtl.UpdateEquipamento)
		equipamentos.DELETE("/:slug", equipCtl.DeleteEquipamento)
	}

	// ------------------------------
	// Usuários (só Admin)
	// ------------------------------
	usuarios := r.Group("/api/usuarios", authMW, adminMW, seenMW)
	{
		usuarios.GET("", usuarioCtl.ListUsuarios) // ?search=
		usuarios.POST("", usuarioCtl.CreateUsuario)
		usuarios.PUT("/:slug", usuarioCtl.UpdateUsuario)
		usuarios.DELETE("/:slug", usuarioCtl.DeleteUsuario)
	}

	// ------------------------------
	// Empréstimos e histórico (Admin | Supervisor)
	// ------------------------------
	emprestimos := r.Group("/api/emprestimos", authMW, gestaoMW, seenMW)
	{
		emprestimos.GET("", loanCtl.ListEmprestimos)
		emprestimos.POST("", loanCtl.Emprestar)
		emprestimos.POST("/:slug/devolver", loanCtl.Devolver)
	}

	historicos := r.Group("/api/historicos", authMW, gestaoMW, seenMW)
	{
		historicos.GET("", histCtl.ListHistoricos)
	}
}
