package app

import (
	"net/http"

	"protechub/auth"
	"protechub/db"
	"protechub/session"

	"github.com/gin-gonic/gin"
)

const AppSessionCookie = "app_session"

const callerKey = "caller"

// AuthRequired resolve o cookie de sessão para um CallerContext imutável e
// barra quem não está logado. Nenhum handler toca a sessão viva.
func AuthRequired(appSess session.Store, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := auth.CallerContext{}

		if ck, err := c.Request.Cookie(AppSessionCookie); err == nil && ck.Value != "" {
			if sess, err := appSess.Get(c.Request.Context(), ck.Value); err == nil {
				// Confirma que o usuário ainda existe e deriva os grupos
				// do registro atual, não do que valia no login.
				if u, err := repo.FindUsuarioBySlug(c.Request.Context(), sess.UsuarioSlug); err == nil {
					caller = auth.CallerContext{Authenticated: true, Groups: u.Grupos()}
					c.Set("usuarioSlug", u.Slug)
					c.Set("usuarioNome", u.Nome)
				} else {
					_ = appSess.Delete(c.Request.Context(), ck.Value)
				}
			}
		}

		if d := auth.Decide(caller, nil); !d.Allowed() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": d.Reason})
			return
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// GroupRequired aplica o portão de grupo antes de qualquer leitura ou
// mutação do alvo. Exige AuthRequired antes na cadeia.
func GroupRequired(groups ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := c.MustGet(callerKey).(auth.CallerContext)
		d := auth.Decide(caller, groups)
		switch d.Kind {
		case auth.DecisionAllowed:
			c.Next()
		case auth.DecisionNotLoggedIn:
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": d.Reason})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": d.Reason})
		}
	}
}
