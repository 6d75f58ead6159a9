package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratego/internal/api/origin"
	"stratego/internal/room"
)

// LobbyLister is the read side of the lobby registry.
type LobbyLister interface {
	List() []room.Summary
}

// ConnCounter reports open transport connections.
type ConnCounter interface {
	Count() int
}

// @Summary List lobbies
// @Description Returns every open lobby with its seated player numbers and phase
// @Tags Lobby
// @Produce json
// @Success 200 {object} LobbiesResponse
// @Router /lobbies [get]
func ListLobbiesHandler(rm LobbyLister) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, LobbiesResponse{Lobbies: rm.List()})
	}
}

// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(rm LobbyLister, conns ConnCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:      "ok",
			Connections: conns.Count(),
			Lobbies:     len(rm.List()),
		})
	}
}

// corsMiddleware answers preflight requests and echoes listed origins.
func corsMiddleware(origins *origin.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		o := c.GetHeader("Origin")
		if origins.Listed(o) {
			c.Header("Access-Control-Allow-Origin", o)
			c.Header("Access-Control-Allow-Methods", "GET, POST")
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
