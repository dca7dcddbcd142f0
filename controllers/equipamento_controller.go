package controllers

import (
	"net/http"
	"time"

	"protechub/app"
	"protechub/db"
	"protechub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipamentoController struct{ *Srv }

func GetEquipamentoController(s *Srv) *EquipamentoController {
	return &EquipamentoController{Srv: s}
}

// GET /api/equipamentos?search=
func (ec *EquipamentoController) ListEquipamentos(c *gin.Context) {
	es, err := ec.Repo.ListEquipamentos(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	views := make([]EquipamentoView, 0, len(es))
	for _, e := range es {
		views = append(views, toEquipamentoView(e))
	}
	c.JSON(http.StatusOK, app.H{"equipamentos": views})
}

// POST /api/equipamentos
func (ec *EquipamentoController) CreateEquipamento(c *gin.Context) {
	var in struct {
		Nome            string    `json:"nome" binding:"required"`
		Categoria       string    `json:"categoria" binding:"required,oneof=CAP LUV OCU BOT AUR CIN"`
		Validade        time.Time `json:"validade" binding:"required"`
		QuantidadeTotal int       `json:"quantidade_total" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	// Identidade atribuída antes de montar o registro, nunca num hook de save
	e := &models.Equipamento{
		Slug:            uuid.NewString(),
		Nome:            in.Nome,
		Categoria:       in.Categoria,
		Validade:        in.Validade,
		QuantidadeTotal: in.QuantidadeTotal,
	}
	if err := ec.Repo.CreateEquipamento(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{
		"message":     "Equipamento criado com sucesso!",
		"equipamento": e,
	})
}

// PUT /api/equipamentos/:slug
//
// A ordem aqui importa: primeiro a trava de quantidade (contra o registro
// atual), só depois a validação dos demais campos.
func (ec *EquipamentoController) UpdateEquipamento(c *gin.Context) {
	slug := c.Param("slug")

	var in struct {
		Nome            string    `json:"nome"`
		Categoria       string    `json:"categoria"`
		Validade        time.Time `json:"validade"`
		QuantidadeTotal *int      `json:"quantidade_total"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	e, err := ec.Repo.FindEquipamentoBySlug(c.Request.Context(), slug)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, app.H{"error": "equipamento não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	if in.QuantidadeTotal != nil && *in.QuantidadeTotal-e.QuantidadeEmprestada < 0 {
		c.JSON(http.StatusConflict, app.H{
			"error": "O Equipamento não pode ter a quantidade total modificada pois não terá quantidade disponível suficiente!",
		})
		return
	}

	if errs := validarEquipamento(in.Nome, in.Categoria, in.Validade, in.QuantidadeTotal); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, app.H{"errors": errs})
		return
	}

	// O UPDATE condicional no repo refaz a checagem de quantidade dentro da
	// transação, cobrindo duas atualizações concorrentes no mesmo registro.
	out, err := ec.Repo.UpdateEquipamento(c.Request.Context(), slug, db.UpdateEquipamentoInput{
		Nome:            in.Nome,
		Categoria:       in.Categoria,
		Validade:        in.Validade,
		QuantidadeTotal: *in.QuantidadeTotal,
	})
	if err != nil {
		switch {
		case db.IsNotFound(err):
			c.JSON(http.StatusNotFound, app.H{"error": "equipamento não encontrado"})
		case err == db.ErrQuantidadeConflito:
			c.JSON(http.StatusConflict, app.H{
				"error": "O Equipamento não pode ter a quantidade total modificada pois não terá quantidade disponível suficiente!",
			})
		default:
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, app.H{
		"message":     "Equipamento atualizado com sucesso!",
		"equipamento": out,
	})
}

// DELETE /api/equipamentos/:slug
func (ec *EquipamentoController) DeleteEquipamento(c *gin.Context) {
	slug := c.Param("slug")
	if err := ec.Repo.DeleteEquipamentoBySlug(c.Request.Context(), slug); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, app.H{"error": "equipamento não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Equipamento deletado com sucesso!"})
}

func validarEquipamento(nome, categoria string, validade time.Time, total *int) map[string]string {
	errs := map[string]string{}
	if nome == "" {
		errs["nome"] = "obrigatório"
	}
	if _, ok := models.CategoriaLabels[categoria]; !ok {
		errs["categoria"] = "categoria inválida"
	}
	if validade.IsZero() {
		errs["validade"] = "obrigatório"
	}
	if total == nil {
		errs["quantidade_total"] = "obrigatório"
	} else if *total < 0 {
		errs["quantidade_total"] = "não pode ser negativa"
	}
	return errs
}
