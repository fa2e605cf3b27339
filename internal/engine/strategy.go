package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the move-choice strategy of the bot.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty - validates a difficulty received from a client.
func ParseDifficulty(raw string) (Difficulty, error) {
	switch level := Difficulty(raw); level {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, raw)
	}
}

// ChooseMove - picks a cell for the AI holding aiMark against humanMark.
// It reports false when the board has no empty cell; the caller must not
// place a mark in that case.
//
// easy plays uniformly at random, medium takes a winning cell, then a
// blocking cell, then falls back to random, and hard plays the minimax
// move, which never loses.
func ChooseMove(board *[9]string, level Difficulty, aiMark, humanMark string) (int, bool) {
	switch level {
	case DifficultyEasy:
		return randomMove(*board)
	case DifficultyMedium:
		return tacticalMove(board, aiMark, humanMark)
	case DifficultyHard:
		return bestMove(board, aiMark, humanMark)
	default:
		// unreachable with a parsed Difficulty
		return 0, false
	}
}

// randomMove - uniform random choice among the empty cells.
func randomMove(board [9]string) (int, bool) {
	cells := EmptyCells(board)
	if len(cells) == 0 {
		return 0, false
	}

	return cells[rand.Intn(len(cells))], true //nolint: gosec // it's ok
}

// tacticalMove - one-ply lookahead: complete an own combo if possible,
// otherwise block the opponent's, otherwise play random. A winning cell
// always pre-empts a blocking one, and combos are scanned in their fixed
// enumeration order.
func tacticalMove(board *[9]string, aiMark, humanMark string) (int, bool) {
	for _, combo := range WinCombos {
		if cell, ok := WinningMove(*board, combo, aiMark); ok {
			return cell, true
		}
	}

	for _, combo := range WinCombos {
		if cell, ok := WinningMove(*board, combo, humanMark); ok {
			return cell, true
		}
	}

	return randomMove(*board)
}

// bestMove - scores every empty cell with minimax and keeps the first cell
// with the strictly greatest score. Cells are tried in ascending order, so
// ties resolve to the lowest index.
func bestMove(board *[9]string, aiMark, humanMark string) (int, bool) {
	cells := EmptyCells(*board)
	if len(cells) == 0 {
		return 0, false
	}

	bestCell := cells[0]
	bestScore := math.MinInt

	for _, cell := range cells {
		board[cell] = aiMark
		score := minimax(board, 0, false, math.MinInt, math.MaxInt, aiMark, humanMark)
		board[cell] = EmptyCell

		if score > bestScore {
			bestScore = score
			bestCell = cell
		}
	}

	return bestCell, true
}
