// controllers/srv.go
package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"protechub/app"
	"protechub/config"
	"protechub/db"
	"protechub/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Srv struct {
	Repo    *db.Repo
	AppSess session.Store
	Log     *zap.SugaredLogger
	Cfg     config.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:    db.NewRepo(a.DB),
		AppSess: a.AppSessions(),
		Log:     a.Log,
		Cfg:     a.Config,
	}
}

// --- helpers ---

func (s *Srv) setAppCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.Cfg.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AppSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

// issueSession cria a sessão no store e grava o cookie.
func (s *Srv) issueSession(ctx context.Context, w http.ResponseWriter, usuarioSlug string) error {
	id := uuid.NewString()
	if err := s.AppSess.Create(ctx, id, usuarioSlug); err != nil {
		return err
	}
	s.setAppCookie(w, id, s.Cfg.SessionTTL)
	return nil
}
