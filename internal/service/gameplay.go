package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xoarena/xoarena-backend/internal/engine"
	"github.com/xoarena/xoarena-backend/internal/entity"
)

var ErrUnsupportedGameType = errors.New("unsupported game type")

type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType, level string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	defaultLevel engine.Difficulty
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService, defaultLevel engine.Difficulty) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		defaultLevel:  defaultLevel,
	}
}

// MakeTurn - applies the player's move and, in a bot game, the bot's answer
// within the same call.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	mark := player.Mark
	if game.IsLocal() {
		// in a hotseat game one connection drives both marks
		mark = game.Turn
	}

	if err = game.MakeTurn(mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsWithBot() && game.IsOngoing() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// GetOrCreateGame - returns the player's current game or starts a new one of
// the requested type. The level argument is only meaningful for bot games;
// when empty the configured default difficulty is used.
func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, gameType, level string) (*entity.Game, error) {
	if player.GameID != "" {
		game, err := that.gameService.GetGameByID(ctx, player.GameID)
		if err != nil {
			return nil, fmt.Errorf("failed to get game: %w", err)
		}

		return game, nil
	}

	game, err := that.createGame(ctx, player, gameType, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create new game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, gameType, level string) (*entity.Game, error) {
	if gameType != entity.LocalType && gameType != entity.WithBotType {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGameType, gameType)
	}

	botLevel, err := that.resolveLevel(gameType, level)
	if err != nil {
		return nil, err
	}

	game, err := that.gameService.CreateGame(ctx, player, gameType, botLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	switch {
	case game.IsWithBot():
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}
	case game.IsLocal():
		// hotseat starts right away, both marks share the connection
		game.Status = entity.StatusOngoing
		if err = that.gameService.UpdateGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to update game: %w", err)
		}
	}

	return game, nil
}

func (that *gamePlayService) resolveLevel(gameType, level string) (engine.Difficulty, error) {
	if gameType != entity.WithBotType {
		return "", nil
	}

	if level == "" {
		return that.defaultLevel, nil
	}

	parsed, err := engine.ParseDifficulty(level)
	if err != nil {
		return "", fmt.Errorf("failed to resolve bot level: %w", err)
	}

	return parsed, nil
}

func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	botPlayer := entity.NewBotPlayer(game.ID)

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	playerMark, botMark := game.GetRandomMarks()
	for _, player := range game.Players {
		if !player.IsBot() {
			player.Mark = playerMark
			if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
				return fmt.Errorf("failed to update player: %w", err)
			}
		}
	}
	botPlayer.Mark = botMark

	if err := that.playerService.UpdatePlayer(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	if botMark == entity.PlayerX {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game with bot: %w", err)
	}

	return nil
}

func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.UpdatePlayer(ctx, player); err != nil {
			log.Error("failed to update player", "player", player.ID, "error", err)
		}
	}
}
