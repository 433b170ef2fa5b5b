package game

import "strings"

// IsLegal reports whether guess honors every hint revealed on board.
// A completed board imposes no constraint.
func IsLegal(guess Word, board BoardState) bool {
	return CheckHardMode(guess, board) == nil
}

// CheckHardMode scans every prior row of board and returns the first
// violation, or nil. A Correct tile pins its letter to its position; a
// Present tile requires the letter somewhere in the guess.
func CheckHardMode(guess Word, board BoardState) *HardModeError {
	if board.Completed {
		return nil
	}
	for _, row := range board.History {
		for col, v := range row.Verdicts {
			letter := row.Guess[col]
			switch v {
			case VerdictCorrect:
				if guess[col] != letter {
					return &HardModeError{Board: board.Index, Position: col, Letter: letter, Rule: RuleKeepCorrect}
				}
			case VerdictPresent:
				if strings.IndexByte(string(guess), letter) < 0 {
					return &HardModeError{Board: board.Index, Position: col, Letter: letter, Rule: RuleUsePresent}
				}
			}
		}
	}
	return nil
}
