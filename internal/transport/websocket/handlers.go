package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/xoarena/xoarena-backend/internal/apperror"
)

var errMissingCell = errors.New("missing cell in turn payload")

// handleConnect - registers the player or restores an existing session.
func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := unmarshalPayload(msg)
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return err
	}

	player, err := that.players.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		that.sendError(conn, msg.Action, "failed to connect")
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.ID == payload.Player.ID {
		that.logger.Info("player connected", "playerID", player.ID)
	} else {
		that.logger.Info("registered new player", "playerID", player.ID)
	}

	return that.sendMessage(conn, msg.Action, &ResponsePayload{Player: player})
}

// handleNewGame - returns the player's current game or starts a new one of
// the requested type and difficulty.
func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := unmarshalPayload(msg)
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return err
	}

	player, err := that.players.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		that.sendError(conn, msg.Action, "failed to resolve player")
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	game, err := that.gameplay.GetOrCreateGame(ctx, player, payload.Game.Type, payload.Game.BotLevel)
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return fmt.Errorf("failed to get or create game: %w", err)
	}

	that.logger.Info("game ready", "gameID", game.ID, "type", game.Type, "botLevel", game.BotLevel)

	return that.sendMessage(conn, msg.Action, &ResponsePayload{Player: player, Game: game})
}

// handleTurn - applies the player's move; in a bot game the reply already
// contains the bot's answer.
func (that *Server) handleTurn(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := unmarshalPayload(msg)
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return err
	}

	if payload.Cell == nil {
		that.sendError(conn, msg.Action, errMissingCell.Error())
		return errMissingCell
	}

	game, err := that.gameplay.MakeTurn(ctx, payload.Player.ID, *payload.Cell)
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if sendErr := that.sendMessage(conn, msg.Action, &ResponsePayload{Game: game}); sendErr != nil {
		return sendErr
	}

	if game.IsFinished() {
		that.logger.Info("game finished", "gameID", game.ID, "winner", game.Winner)
		that.gameplay.CleanupGame(ctx, game)
	}

	return nil
}

// handleLeave - abandons the player's current game.
func (that *Server) handleLeave(ctx context.Context, conn *websocket.Conn, msg *Message) error {
	payload, err := unmarshalPayload(msg)
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return err
	}

	player, err := that.players.GetOrCreatePlayer(ctx, payload.Player.ID)
	if err != nil {
		that.sendError(conn, msg.Action, "failed to resolve player")
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	if player.GameID == "" {
		that.sendError(conn, msg.Action, apperror.ErrNoActiveGames.Error())
		return nil
	}

	game, err := that.gameplay.GetOrCreateGame(ctx, player, "", "")
	if err != nil {
		that.sendError(conn, msg.Action, err.Error())
		return fmt.Errorf("failed to get game: %w", err)
	}

	that.gameplay.CleanupGame(ctx, game)
	that.logger.Info("player left game", "playerID", player.ID, "gameID", game.ID)

	return that.sendMessage(conn, msg.Action, &ResponsePayload{Player: player})
}

func unmarshalPayload(msg *Message) (*RequestPayload, error) {
	var payload RequestPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
