package engine

// winScore is the base value of a terminal win. Subtracting the depth makes
// a faster win score higher and a later loss score less negative, so the
// search prefers quick wins and drags out unavoidable losses.
const winScore = 10

// minimax - scores a position from the AI's perspective by exhaustive
// adversarial search with alpha-beta pruning. The board is mutated in place
// while exploring and every placement is undone before returning, so the
// caller sees the board unchanged. Moves are generated in ascending cell
// order, which keeps tie-breaking between equal moves reproducible.
func minimax(board *[9]string, depth int, maximizing bool, alpha, beta int, aiMark, humanMark string) int {
	switch Winner(*board) {
	case aiMark:
		return winScore - depth
	case humanMark:
		return depth - winScore
	}

	cells := EmptyCells(*board)
	if len(cells) == 0 {
		return 0
	}

	if maximizing {
		best := -winScore
		for _, cell := range cells {
			board[cell] = aiMark
			score := minimax(board, depth+1, false, alpha, beta, aiMark, humanMark)
			board[cell] = EmptyCell

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := winScore
	for _, cell := range cells {
		board[cell] = humanMark
		score := minimax(board, depth+1, true, alpha, beta, aiMark, humanMark)
		board[cell] = EmptyCell

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}

	return best
}
