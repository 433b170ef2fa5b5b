package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	vC = VerdictCorrect
	vP = VerdictPresent
	vA = VerdictAbsent
)

var sampleWords = []string{
	"APPLE", "BEACH", "CHAIR", "DREAM", "EARTH", "EAGLE", "EERIE", "LEMON",
	"ALPEE", "SPEED", "ERASE", "LLAMA", "MAMMA", "ABBEY", "KEBAB", "QUEEN",
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		target string
		guess  string
		want   []Verdict
	}{
		{
			name:   "duplicate guess letters against a single target letter",
			target: "APPLE",
			guess:  "ALPEE",
			want:   []Verdict{vC, vP, vC, vA, vC},
		},
		{
			name:   "exact match",
			target: "CRANE",
			guess:  "CRANE",
			want:   []Verdict{vC, vC, vC, vC, vC},
		},
		{
			name:   "same letters shuffled",
			target: "BEACH",
			guess:  "CHAIR",
			want:   []Verdict{vP, vP, vC, vA, vA},
		},
		{
			name:   "correct consumes the only instance",
			target: "LEMON",
			guess:  "EERIE",
			want:   []Verdict{vA, vC, vA, vA, vA},
		},
		{
			name:   "two correct, surplus absent",
			target: "EAGLE",
			guess:  "EERIE",
			want:   []Verdict{vC, vA, vA, vA, vC},
		},
		{
			name:   "nothing shared",
			target: "MUSIC",
			guess:  "EARTH",
			want:   []Verdict{vA, vA, vA, vA, vA},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(MustWord(tt.guess), MustWord(tt.target))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_SelfIsAllCorrect(t *testing.T) {
	for _, w := range sampleWords {
		got := Evaluate(MustWord(w), MustWord(w))
		assert.True(t, allCorrect(got), w)
	}
}

func TestEvaluate_DuplicateLetterConservation(t *testing.T) {
	count := func(w string, c byte) int {
		n := 0
		for i := 0; i < len(w); i++ {
			if w[i] == c {
				n++
			}
		}
		return n
	}

	for _, target := range sampleWords {
		for _, guess := range sampleWords {
			vs := Evaluate(MustWord(guess), MustWord(target))
			for c := byte('A'); c <= 'Z'; c++ {
				hits := 0
				for i := 0; i < len(guess); i++ {
					if guess[i] == c && vs[i] != VerdictAbsent {
						hits++
					}
				}
				assert.Equal(t, min(count(guess, c), count(target, c)), hits,
					"guess %s target %s letter %c", guess, target, c)
			}
		}
	}
}

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Word
		wantErr error
	}{
		{name: "uppercases and trims", in: "  crane ", want: "CRANE"},
		{name: "already upper", in: "APPLE", want: "APPLE"},
		{name: "too short", in: "CRA", wantErr: ErrIncompleteGuess},
		{name: "empty", in: "", wantErr: ErrIncompleteGuess},
		{name: "too long", in: "CRANES", wantErr: ErrInvalidWord},
		{name: "digits", in: "CR4NE", wantErr: ErrInvalidWord},
		{name: "short with digits", in: "C4", wantErr: ErrInvalidWord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWord(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxAttempts(t *testing.T) {
	assert.Equal(t, 6, MaxAttempts(1))
	assert.Equal(t, 8, MaxAttempts(2))
	assert.Equal(t, 10, MaxAttempts(4))
	assert.Equal(t, 12, MaxAttempts(8))
}

func TestModeName(t *testing.T) {
	assert.Equal(t, "Wordle", ModeName(1))
	assert.Equal(t, "Duordle", ModeName(2))
	assert.Equal(t, "Quordle", ModeName(4))
	assert.Equal(t, "Octordle", ModeName(8))
	assert.Equal(t, "Unknown", ModeName(3))
}

func TestGameConfig_Validate(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		assert.NoError(t, GameConfig{BoardCount: n}.Validate())
	}
	for _, n := range []int{0, 3, 5, 16, -1} {
		assert.ErrorIs(t, GameConfig{BoardCount: n}.Validate(), ErrInvalidConfiguration)
	}
}
