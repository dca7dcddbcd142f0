package main

import (
	"context"

	"protechub/app"
	"protechub/db"
	"protechub/routes"
)

func main() {
	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(application)

	repo := db.NewRepo(application.DB)
	application.BootstrapFirstAdmin(context.Background(), repo)

	application.Log.Infof("listening on :%s", application.Config.Port)
	_ = r.Run(":" + application.Config.Port)
}
