package websocket

import (
	"context"
	"encoding/json"

	"github.com/xoarena/xoarena-backend/internal/entity"
)

const (
	actionConnect = "connect"
	actionNewGame = "game:new"
	actionTurn    = "game:turn"
	actionLeave   = "game:leave"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RequestPayload is what clients send along with an action.
type RequestPayload struct {
	Player struct {
		ID string `json:"id"`
	} `json:"player"`
	Game struct {
		Type     string `json:"type"`
		BotLevel string `json:"bot_level"`
	} `json:"game"`
	Cell *int `json:"cell,omitempty"`
}

// ResponsePayload is what the server sends back.
type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Error  string         `json:"error,omitempty"`
}

type playerService interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType, level string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}
