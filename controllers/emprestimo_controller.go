package controllers

import (
	"net/http"
	"time"

	"protechub/app"
	"protechub/db"

	"github.com/gin-gonic/gin"
)

type EmprestimoController struct{ *Srv }

func GetEmprestimoController(s *Srv) *EmprestimoController {
	return &EmprestimoController{Srv: s}
}

// POST /api/emprestimos
func (lc *EmprestimoController) Emprestar(c *gin.Context) {
	var in struct {
		EquipamentoSlug       string     `json:"equipamento_slug" binding:"required"`
		UsuarioSlug           string     `json:"usuario_slug" binding:"required"`
		Quantidade            int        `json:"quantidade" binding:"required,min=1"`
		Observacao            string     `json:"observacao"`
		DataDevolucaoPrevista *time.Time `json:"data_devolucao_prevista"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	loan, err := lc.Repo.EmprestarEquipamento(c.Request.Context(), db.EmprestarInput{
		EquipamentoSlug:       in.EquipamentoSlug,
		UsuarioSlug:           in.UsuarioSlug,
		Quantidade:            in.Quantidade,
		Observacao:            in.Observacao,
		DataDevolucaoPrevista: in.DataDevolucaoPrevista,
	})
	if err != nil {
		switch {
		case db.IsNotFound(err):
			c.JSON(http.StatusNotFound, app.H{"error": "equipamento ou usuário não encontrado"})
		case err == db.ErrSemDisponibilidade:
			c.JSON(http.StatusConflict, app.H{"error": "sem quantidade disponível suficiente"})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, app.H{
		"message":    "Empréstimo registrado com sucesso!",
		"emprestimo": loan,
	})
}

// POST /api/emprestimos/:slug/devolver
func (lc *EmprestimoController) Devolver(c *gin.Context) {
	slug := c.Param("slug")

	var in struct {
		Status     string `json:"status" binding:"omitempty,oneof=DEV DAN EXT"`
		Observacao string `json:"observacao"`
	}
	if err := c.ShouldBindJSON(&in); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	hist, err := lc.Repo.DevolverEmprestimo(c.Request.Context(), slug, db.DevolverInput{
		Status:     in.Status,
		Observacao: in.Observacao,
	})
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, app.H{"error": "empréstimo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"message":   "Devolução arquivada com sucesso!",
		"historico": hist,
	})
}

// GET /api/emprestimos
func (lc *EmprestimoController) ListEmprestimos(c *gin.Context) {
	rows, err := lc.Repo.ListEmprestimos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	views := make([]EmprestimoView, 0, len(rows))
	for _, r := range rows {
		views = append(views, toEmprestimoView(r))
	}
	c.JSON(http.StatusOK, app.H{"emprestimos": views})
}
