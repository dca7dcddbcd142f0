package controllers

import (
	"net/http"

	"protechub/app"

	"github.com/gin-gonic/gin"
)

type HistoricoController struct{ *Srv }

func GetHistoricoController(s *Srv) *HistoricoController {
	return &HistoricoController{Srv: s}
}

// GET /api/historicos
func (hc *HistoricoController) ListHistoricos(c *gin.Context) {
	hs, err := hc.Repo.ListHistoricos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}

	views := make([]HistoricoView, 0, len(hs))
	for _, h := range hs {
		views = append(views, toHistoricoView(h))
	}
	c.JSON(http.StatusOK, app.H{"historicos": views})
}
