package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseBoard - builds a board from a 9-rune string, '.' meaning an empty cell.
func parseBoard(t *testing.T, s string) [9]string {
	t.Helper()

	require.Len(t, s, 9)

	var board [9]string
	for i, r := range s {
		if r != '.' {
			board[i] = string(r)
		}
	}

	return board
}

func TestWinner(t *testing.T) {
	t.Run("Detects a win on every combo", func(t *testing.T) {
		for _, combo := range WinCombos {
			// Given: a board where X fills one full combo
			var board [9]string
			for _, idx := range combo {
				board[idx] = PlayerX
			}

			// When: looking for a winner
			winner := Winner(board)

			// Then: X should be reported for that combo
			require.Equal(t, PlayerX, winner, "combo %v", combo)
		}
	})

	t.Run("Detects a win for O", func(t *testing.T) {
		// Given: a board where O holds the middle column
		board := parseBoard(t, ".O.XOX.O.")

		// When: looking for a winner
		winner := Winner(board)

		// Then: O should be reported
		assert.Equal(t, PlayerO, winner)
	})

	t.Run("Returns empty when no combo is complete", func(t *testing.T) {
		// Given: a board with marks but no complete combo
		board := parseBoard(t, "XO.OX.OX.")

		// When: looking for a winner
		winner := Winner(board)

		// Then: no winner should be reported
		assert.Equal(t, EmptyCell, winner)
	})

	t.Run("Returns empty on an empty board", func(t *testing.T) {
		assert.Equal(t, EmptyCell, Winner([9]string{}))
	})
}

func TestEmptyCells(t *testing.T) {
	t.Run("Returns all indices for an empty board", func(t *testing.T) {
		// Given: an empty board
		var board [9]string

		// When: enumerating empty cells
		cells := EmptyCells(board)

		// Then: all 9 indices should come back in ascending order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, cells)
	})

	t.Run("Returns nothing for a full board", func(t *testing.T) {
		// Given: a full board
		board := parseBoard(t, "XOXXOOOXX")

		// When: enumerating empty cells
		cells := EmptyCells(board)

		// Then: there should be no empty cell
		assert.Empty(t, cells)
	})

	t.Run("Returns only empty indices in ascending order", func(t *testing.T) {
		// Given: a partially filled board
		board := parseBoard(t, "X.O.X.O..")

		// When: enumerating empty cells
		cells := EmptyCells(board)

		// Then: exactly the empty indices should come back, ascending
		assert.Equal(t, []int{1, 3, 5, 7, 8}, cells)
	})
}

func TestWinningMove(t *testing.T) {
	t.Run("Finds the completing cell", func(t *testing.T) {
		// Given: X holds cells 0 and 1 of the top row
		board := parseBoard(t, "XX..O.O..")

		// When: checking the top row for X
		cell, ok := WinningMove(board, [3]int{0, 1, 2}, PlayerX)

		// Then: cell 2 completes the row
		require.True(t, ok)
		assert.Equal(t, 2, cell)
	})

	t.Run("Finds the cell to block when called with the opponent mark", func(t *testing.T) {
		// Given: O holds cells 3 and 5 of the middle row
		board := parseBoard(t, "X..O.O.X.")

		// When: checking the middle row for O
		cell, ok := WinningMove(board, [3]int{3, 4, 5}, PlayerO)

		// Then: cell 4 is the block
		require.True(t, ok)
		assert.Equal(t, 4, cell)
	})

	t.Run("Returns false with a single mark in the combo", func(t *testing.T) {
		// Given: X holds only cell 0
		board := parseBoard(t, "X........")

		// When: checking the top row for X
		_, ok := WinningMove(board, [3]int{0, 1, 2}, PlayerX)

		// Then: there is no completing move
		assert.False(t, ok)
	})

	t.Run("Returns false when the combo has no mark", func(t *testing.T) {
		_, ok := WinningMove([9]string{}, [3]int{0, 1, 2}, PlayerX)
		assert.False(t, ok)
	})

	t.Run("Returns false when the combo is already full", func(t *testing.T) {
		// Given: the top row holds X, X, O
		board := parseBoard(t, "XXO......")

		// When: checking the top row for X
		_, ok := WinningMove(board, [3]int{0, 1, 2}, PlayerX)

		// Then: there is no empty cell to play
		assert.False(t, ok)
	})

	t.Run("Returns false when two marks belong to the opponent", func(t *testing.T) {
		// Given: O holds cells 0 and 1
		board := parseBoard(t, "OO.......")

		// When: checking the top row for X
		_, ok := WinningMove(board, [3]int{0, 1, 2}, PlayerX)

		// Then: the combo cannot be completed by X
		assert.False(t, ok)
	})
}

func TestCheckResult(t *testing.T) {
	t.Run("Reports the winner and the winning combo", func(t *testing.T) {
		// Given: X fills the top row, O has two marks
		board := parseBoard(t, "XXXOO....")

		// When: classifying the board
		result := CheckResult(board)

		// Then: X wins on the top row
		require.True(t, result.Finished())
		assert.Equal(t, PlayerX, result.Winner)
		assert.Equal(t, [3]int{0, 1, 2}, result.Line)
		assert.False(t, result.Draw)
	})

	t.Run("Reports a draw on a full board with no winner", func(t *testing.T) {
		// Given: a full board with no three-in-a-row
		board := parseBoard(t, "XOXXOOOXX")

		// When: classifying the board
		result := CheckResult(board)

		// Then: the game is a draw
		require.True(t, result.Finished())
		assert.True(t, result.Draw)
		assert.Equal(t, EmptyCell, result.Winner)
	})

	t.Run("Reports in progress while cells remain and no combo is complete", func(t *testing.T) {
		// Given: a partially filled board
		board := parseBoard(t, "XO..X...O")

		// When: classifying the board
		result := CheckResult(board)

		// Then: the zero result means the game continues
		assert.False(t, result.Finished())
		assert.Equal(t, Result{}, result)
	})
}
