package app

import (
	"context"
	"log"
	"time"

	"protechub/config"
	"protechub/db"
	"protechub/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Aliases curtos para os handlers
type Ctx = gin.Context
type H = gin.H

// App agrega as dependências compartilhadas
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *zap.SugaredLogger
	Config config.Config

	appSess session.Store
}

func (a *App) AppSessions() session.Store { return a.appSess }

func MustNew() *App {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	sugar := logger.Sugar()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB(cfg.DSN())

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Gin ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(sugar))
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:  r,
		DB:      dbConn,
		RDB:     rdb,
		Log:     sugar,
		Config:  cfg,
		appSess: session.NewAppSessionStore(rdb, cfg.SessionTTL),
	}
}

func (a *App) Close() {
	_ = a.RDB.Close()
	_ = a.Log.Sync()
}
