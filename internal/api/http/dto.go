package http

import (
	"stratego/internal/game"
	"stratego/internal/room"
)

// RulesResponse describes the fixed rules a client needs to render a match.
type RulesResponse struct {
	BoardSize     int                    `json:"boardSize"`
	Terrain       game.TerrainGrid       `json:"terrain"`
	PieceCounts   map[game.PieceType]int `json:"pieceCounts"`
	Ranks         map[game.PieceType]int `json:"ranks"`
	HomeRows      map[game.Player][]int  `json:"homeRows"`
	PiecesPerSide int                    `json:"piecesPerSide"`
}

// LobbiesResponse is the payload of GET /lobbies.
type LobbiesResponse struct {
	Lobbies []room.Summary `json:"lobbies"`
}

// HealthResponse is the payload of GET /healthz.
type HealthResponse struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
	Lobbies     int    `json:"lobbies"`
}
