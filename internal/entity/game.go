package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/xoarena/xoarena-backend/internal/apperror"
	"github.com/xoarena/xoarena-backend/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = engine.PlayerX
	PlayerO   = engine.PlayerO
	PlayerTie = "-"

	EmptyCell = engine.EmptyCell
)

const (
	LocalType   = "local"
	WithBotType = "bot"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrUnknownGameStatus = errors.New("unknown game status")
)

type Game struct {
	ID       string            `json:"id"`
	Board    [9]string         `json:"board"`
	Winner   string            `json:"winner"`
	WinLine  *[3]int           `json:"win_line,omitempty"`
	Status   string            `json:"status"`
	Turn     string            `json:"player_turn"`
	Players  []*Player         `json:"players,omitempty"`
	Type     string            `json:"type,omitempty"`
	BotLevel engine.Difficulty `json:"bot_level,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{},
		Turn:   PlayerX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// UpdateState - re-derives winner, winning line and status from the board.
func (that *Game) UpdateState() {
	switch result := engine.CheckResult(that.Board); {
	case result.Winner != EmptyCell:
		line := result.Line
		that.Winner = result.Winner
		that.WinLine = &line
		that.Status = StatusFinished
		that.Turn = ""
	case result.Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = ToggleMark(playerMark)

	that.UpdateState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsLocal() bool {
	return that.Type == LocalType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

func ToggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
