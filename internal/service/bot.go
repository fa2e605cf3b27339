package service

import (
	"errors"
	"fmt"

	"github.com/xoarena/xoarena-backend/internal/engine"
	"github.com/xoarena/xoarena-backend/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn - asks the decision engine for a cell at the game's difficulty
// and plays it for the bot player.
func (that *botService) MakeTurn(game *entity.Game) error {
	var botPlayer *entity.Player
	for _, player := range game.Players {
		if player.IsBot() {
			botPlayer = player
			break
		}
	}

	if botPlayer == nil {
		return ErrBotNotFound
	}

	humanMark := entity.ToggleMark(botPlayer.Mark)

	chosenCell, ok := engine.ChooseMove(&game.Board, game.BotLevel, botPlayer.Mark, humanMark)
	if !ok {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(botPlayer.Mark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}
