package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scorePosition(board *[9]string, aiToMove bool) int {
	return minimax(board, 0, aiToMove, math.MinInt, math.MaxInt, PlayerX, PlayerO)
}

func TestMinimax_TerminalScores(t *testing.T) {
	t.Run("Positive score when the AI has already won", func(t *testing.T) {
		// Given: a board where X holds the top row
		board := parseBoard(t, "XXXOO....")

		// When: scoring the position for X
		score := scorePosition(&board, false)

		// Then: the score is the full win value at depth zero
		assert.Equal(t, winScore, score)
	})

	t.Run("Negative score when the human has already won", func(t *testing.T) {
		// Given: a board where O holds the left column
		board := parseBoard(t, "OX.OX.O..")

		// When: scoring the position for X
		score := scorePosition(&board, true)

		// Then: the score is the full loss value at depth zero
		assert.Equal(t, -winScore, score)
	})

	t.Run("Zero score on a completed draw", func(t *testing.T) {
		// Given: a full board with no winner
		board := parseBoard(t, "XOXXOOOXX")

		// When: scoring the position for X
		score := scorePosition(&board, true)

		// Then: the draw is worth exactly zero
		assert.Equal(t, 0, score)
	})
}

func TestMinimax_LeavesBoardUntouched(t *testing.T) {
	t.Run("Board is identical after a deep search", func(t *testing.T) {
		// Given: a mid-game position with several continuations
		board := parseBoard(t, "X.O.X.O..")
		snapshot := board

		// When: running a full search from that position
		scorePosition(&board, true)
		scorePosition(&board, false)

		// Then: every exploratory placement has been undone
		assert.Equal(t, snapshot, board)
	})

	t.Run("Board is identical after searching an empty board", func(t *testing.T) {
		// Given: an empty board
		var board [9]string

		// When: running a full search
		score := scorePosition(&board, true)

		// Then: perfect play from an empty board is a draw and the board is untouched
		assert.Equal(t, 0, score)
		assert.Equal(t, [9]string{}, board)
	})
}

func TestMinimax_DepthPreference(t *testing.T) {
	t.Run("An immediate win scores higher than a delayed one", func(t *testing.T) {
		// Given: X to move with a win in one at cell 2 and slower wins elsewhere
		board := parseBoard(t, "XX.OO....")

		// When: scoring each candidate cell the way the hard strategy does
		scores := make(map[int]int)
		for _, cell := range EmptyCells(board) {
			board[cell] = PlayerX
			scores[cell] = scorePosition(&board, false)
			board[cell] = EmptyCell
		}

		// Then: the one-move win has the single highest score
		require.Equal(t, winScore, scores[2])
		for cell, score := range scores {
			if cell != 2 {
				assert.Less(t, score, winScore, "cell %d", cell)
			}
		}
	})

	t.Run("A forced loss is recognized", func(t *testing.T) {
		// Given: O threatens the middle row and it is O's turn
		board := parseBoard(t, "X..OO..X.")

		// When: scoring the position for X with O to move
		score := scorePosition(&board, false)

		// Then: O wins at once, one ply down
		assert.Equal(t, 1-winScore, score)
	})
}
