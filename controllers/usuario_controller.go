package controllers

import (
	"net/http"
	"strings"
	"time"

	"protechub/app"
	"protechub/db"
	"protechub/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioController struct{ *Srv }

func GetUsuarioController(s *Srv) *UsuarioController { return &UsuarioController{Srv: s} }

// GET /api/usuarios?search=
func (uc *UsuarioController) ListUsuarios(c *gin.Context) {
	us, err := uc.Repo.ListUsuarios(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	views := make([]UsuarioView, 0, len(us))
	for _, u := range us {
		views = append(views, toUsuarioView(u))
	}
	c.JSON(http.StatusOK, app.H{"usuarios": views})
}

// POST /api/usuarios
func (uc *UsuarioController) CreateUsuario(c *gin.Context) {
	var in struct {
		Nome         string    `json:"nome" binding:"required"`
		Email        string    `json:"email" binding:"required,email"`
		Senha        string    `json:"senha" binding:"required,min=8"`
		Cargo        string    `json:"cargo" binding:"required,oneof=ALM ELE MEC SOL TEC"`
		Tipo         string    `json:"tipo" binding:"required,oneof=ADM SUP COL"`
		DataAdmissao time.Time `json:"data_admissao" binding:"required"`
		Foto         string    `json:"foto"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	u := &models.Usuario{
		Slug:         uuid.NewString(),
		Nome:         in.Nome,
		Email:        strings.ToLower(in.Email),
		SenhaHash:    string(hash),
		Cargo:        in.Cargo,
		Tipo:         in.Tipo,
		DataAdmissao: in.DataAdmissao,
		Foto:         in.Foto,
	}
	if err := uc.Repo.CreateUsuario(c.Request.Context(), u); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app.H{
		"message": "Usuário criado com sucesso!",
		"usuario": u,
	})
}

// PUT /api/usuarios/:slug
func (uc *UsuarioController) UpdateUsuario(c *gin.Context) {
	slug := c.Param("slug")

	var in struct {
		Nome         string    `json:"nome" binding:"required"`
		Email        string    `json:"email" binding:"required,email"`
		Cargo        string    `json:"cargo" binding:"required,oneof=ALM ELE MEC SOL TEC"`
		Tipo         string    `json:"tipo" binding:"required,oneof=ADM SUP COL"`
		DataAdmissao time.Time `json:"data_admissao" binding:"required"`
		Foto         string    `json:"foto"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	out, err := uc.Repo.UpdateUsuario(c.Request.Context(), slug, db.UpdateUsuarioInput{
		Nome:         in.Nome,
		Email:        in.Email,
		Cargo:        in.Cargo,
		Tipo:         in.Tipo,
		DataAdmissao: in.DataAdmissao,
		Foto:         in.Foto,
	})
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, app.H{"error": "usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{
		"message": "Usuário atualizado com sucesso!",
		"usuario": out,
	})
}

// DELETE /api/usuarios/:slug
func (uc *UsuarioController) DeleteUsuario(c *gin.Context) {
	slug := c.Param("slug")

	// Não deixa o operador se deletar e trancar todo mundo para fora
	if v, ok := c.Get("usuarioSlug"); ok {
		if self, _ := v.(string); self == slug {
			c.JSON(http.StatusBadRequest, app.H{"error": "não é possível deletar o próprio usuário"})
			return
		}
	}

	if err := uc.Repo.DeleteUsuarioBySlug(c.Request.Context(), slug); err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, app.H{"error": "usuário não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	// Usuário deletado não fica logado
	_ = uc.AppSess.RevokeAllForUsuario(c.Request.Context(), slug)

	c.JSON(http.StatusOK, app.H{"message": "Usuário deletado com sucesso!"})
}
