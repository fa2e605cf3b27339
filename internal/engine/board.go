package engine

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// WinCombos - the 8 winning triples: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Result - the outcome of a board position. The zero value means the game
// is still in progress.
type Result struct {
	Winner string `json:"winner,omitempty"`
	Line   [3]int `json:"line,omitempty"`
	Draw   bool   `json:"draw,omitempty"`
}

func (that Result) Finished() bool {
	return that.Draw || that.Winner != EmptyCell
}

// Winner - returns the mark that completed a winning combo, or an empty
// string if no combo is complete.
func Winner(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// EmptyCells - returns the indices of all empty cells in ascending order.
func EmptyCells(board [9]string) []int {
	cells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

// WinningMove - returns the empty cell that completes the given combo for
// mark. There is such a cell only when exactly two cells of the combo hold
// mark and the third is empty. Called with the opponent's mark it finds the
// cell that must be blocked.
func WinningMove(board [9]string, combo [3]int, mark string) (int, bool) {
	markCount := 0
	emptyIdx := -1

	for _, idx := range combo {
		switch board[idx] {
		case mark:
			markCount++
		case EmptyCell:
			emptyIdx = idx
		}
	}

	if markCount == 2 && emptyIdx != -1 {
		return emptyIdx, true
	}

	return 0, false
}

// CheckResult - classifies a board position. A completed combo wins for its
// mark; a full board with no winner is a draw; otherwise the game continues
// and the zero Result is returned.
func CheckResult(board [9]string) Result {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Result{Winner: a, Line: combo}
		}
	}

	for _, cell := range board {
		if cell == EmptyCell {
			return Result{}
		}
	}

	return Result{Draw: true}
}
