package controllers

import (
	"net/http"
	"strings"

	"protechub/app"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct{ *Srv }

func GetAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var in struct {
		Email string `json:"email" binding:"required,email"`
		Senha string `json:"senha" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := ac.Repo.FindUsuarioByEmail(c.Request.Context(), in.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "email ou senha inválidos"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "email ou senha inválidos"})
		return
	}

	if err := ac.issueSession(c.Request.Context(), c.Writer, u.Slug); err != nil {
		ac.Log.Errorw("issue session", "err", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "não foi possível criar a sessão"})
		return
	}
	c.JSON(http.StatusOK, app.H{"usuario": toUsuarioView(*u)})
}

// POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AppSessionCookie); err == nil && ck.Value != "" {
		_ = ac.AppSess.Delete(c.Request.Context(), ck.Value)
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   strings.HasPrefix(ac.Cfg.WebOrigin, "https://"),
	})
	c.JSON(http.StatusOK, app.H{"ok": true})
}
