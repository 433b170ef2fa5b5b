package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith builds a board whose history is target scored against guesses.
func boardWith(index int, target string, guesses ...string) BoardState {
	b := BoardState{Index: index, Target: MustWord(target)}
	for _, g := range guesses {
		w := MustWord(g)
		b.History = append(b.History, Row{Guess: w, Verdicts: Evaluate(w, b.Target)})
	}
	return b
}

func TestCheckHardMode(t *testing.T) {
	// STARE vs CRANE → [absent, present(R), correct(A), absent, correct(E)]
	board := boardWith(0, "STARE", "CRANE")

	tests := []struct {
		name     string
		guess    string
		wantRule HardModeRule
		wantPos  int
		wantChar byte
	}{
		{name: "keeps correct and uses present", guess: "BRAKE"},
		{name: "moves the correct letter", guess: "AROSE", wantRule: RuleKeepCorrect, wantPos: 2, wantChar: 'A'},
		{name: "drops present letter", guess: "FLAKE", wantRule: RuleUsePresent, wantPos: 1, wantChar: 'R'},
		{name: "drops correct position", guess: "BRINE", wantRule: RuleKeepCorrect, wantPos: 2, wantChar: 'A'},
		{name: "present letter may stay in place", guess: "TRADE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := CheckHardMode(MustWord(tt.guess), board)
			if tt.wantRule == "" {
				assert.Nil(t, v)
				assert.True(t, IsLegal(MustWord(tt.guess), board))
				return
			}
			require.NotNil(t, v)
			assert.Equal(t, tt.wantRule, v.Rule)
			assert.Equal(t, tt.wantPos, v.Position)
			assert.Equal(t, tt.wantChar, v.Letter)
			assert.False(t, IsLegal(MustWord(tt.guess), board))
		})
	}
}

func TestCheckHardMode_ScansEveryPriorRow(t *testing.T) {
	// CLOUD vs CRANE → C correct; CLOUD vs MOLDS → O, L, D present.
	board := boardWith(1, "CLOUD", "CRANE", "MOLDS")

	assert.True(t, IsLegal(MustWord("CLOUD"), board))
	assert.True(t, IsLegal(MustWord("COLDS"), board))
	assert.False(t, IsLegal(MustWord("SOLID"), board), "C must stay in position 1")
	assert.False(t, IsLegal(MustWord("CLOTH"), board), "D was revealed present")
}

func TestCheckHardMode_CompletedBoardImposesNothing(t *testing.T) {
	board := boardWith(0, "CHAIR", "CHAIN")
	board.Completed = true

	assert.True(t, IsLegal(MustWord("ZESTY"), board))
}

func TestCheckHardMode_EmptyHistory(t *testing.T) {
	assert.True(t, IsLegal(MustWord("ZESTY"), boardWith(0, "APPLE")))
}

func TestHardModeError(t *testing.T) {
	var err error = &HardModeError{Board: 1, Position: 2, Letter: 'A', Rule: RuleKeepCorrect}
	assert.True(t, errors.Is(err, ErrHardModeViolation))
	assert.Equal(t, "board 2: letter 3 must be A", err.Error())

	err = &HardModeError{Board: 0, Letter: 'R', Rule: RuleUsePresent}
	assert.Equal(t, "board 1: guess must contain R", err.Error())
}
