package http

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stratego/internal/api/ws"
	"stratego/internal/config"
	"stratego/internal/game"
	"stratego/internal/room"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg config.Config, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), corsMiddleware(hub.Origins()))

	// WebSocket for all match traffic
	r.GET("/ws", hub.HandleWS)

	r.GET("/healthz", HealthHandler(rm, hub))
	r.GET("/lobbies", ListLobbiesHandler(rm))
	r.GET("/config/rules", GetRulesHandler(game.DefaultTerrain()))

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
			log.Info("serving static client", zap.String("dir", cfg.StaticDir))
		}
	}

	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
		)
	}
}
