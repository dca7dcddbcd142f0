package app

import (
	"time"

	"protechub/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// TouchLastSeen atualiza o last_seen_at do operador logado, com throttle
// via Redis para não escrever no banco a cada requisição.
func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("usuarioSlug")
		if !ok {
			c.Next()
			return
		}
		slug, _ := v.(string)
		if slug == "" {
			c.Next()
			return
		}

		key := "pth:lastseen:" + slug
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchUsuarioSeen(c, slug) // ignora erro, não bloqueia
		}
		c.Next()
	}
}
