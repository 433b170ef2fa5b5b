// internal/game/engine.go
//
// Letter evaluation for a single guess against a single target.
// Responsibilities:
//   - Score guesses using the two‑pass algorithm with a consume‑once pool.
//   - Report whether a verdict row is a full match.
//
// Notes:
//   - Inputs are validated Words (uppercase A–Z, length 5); Evaluate has no
//     failure modes.
//   - The pool is a [26]int count of target letters not matched in pass 1.
package game

// Evaluate scores guess against target, one Verdict per position.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count the remaining (unmatched) target letters.
//
// Pass 2:
//   - For each non‑correct guess letter: if the pool still holds that letter,
//     mark Present and consume one; otherwise mark Absent.
//
// A letter repeated in the guess but present once in the target therefore
// yields one Correct-or-Present and one Absent, never two Present.
func Evaluate(guess, target Word) []Verdict {
	n := len(guess)
	res := make([]Verdict, n)

	var pool [26]int

	// First pass: mark correct letters and pool the rest of the target.
	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = VerdictCorrect
		} else {
			pool[idx(target[i])]++
		}
	}

	// Second pass: resolve present/absent for the remaining tiles.
	for i := 0; i < n; i++ {
		if res[i] == VerdictCorrect {
			continue
		}
		j := idx(guess[i])
		if pool[j] > 0 {
			res[i] = VerdictPresent
			pool[j]--
		} else {
			res[i] = VerdictAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25.
func idx(c byte) int { return int(c - 'A') }

// allCorrect returns true if every verdict is Correct.
func allCorrect(vs []Verdict) bool {
	for _, v := range vs {
		if v != VerdictCorrect {
			return false
		}
	}
	return len(vs) > 0
}
