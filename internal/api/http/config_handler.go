package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stratego/internal/game"
)

// GetRulesHandler returns the board terrain and piece inventory
// @Summary Get match rules
// @Description Board size, terrain grid (0 plain, 1 obstacle, 2 home marker), piece counts and ranks
// @Tags Config
// @Produce json
// @Success 200 {object} RulesResponse
// @Router /config/rules [get]
func GetRulesHandler(terrain game.TerrainGrid) gin.HandlerFunc {
	resp := RulesResponse{
		BoardSize:     game.BoardSize,
		Terrain:       terrain,
		PieceCounts:   game.InitialCounts,
		Ranks:         game.Ranks(),
		PiecesPerSide: game.PiecesPerPlayer,
		HomeRows: map[game.Player][]int{
			game.Player1: game.HomeRows(game.Player1),
			game.Player2: game.HomeRows(game.Player2),
		},
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
