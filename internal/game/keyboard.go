package game

// KeyboardHint maps a letter ('A'..'Z') to the best verdict seen for it in
// the current game. Letters never guessed are absent from the map.
type KeyboardHint map[byte]Verdict

// Get returns the hint for letter, or VerdictUnknown.
func (k KeyboardHint) Get(letter byte) Verdict { return k[letter] }

// Letters returns the hint keyed by one-letter strings, for presentation.
func (k KeyboardHint) Letters() map[string]Verdict {
	out := make(map[string]Verdict, len(k))
	for c, v := range k {
		out[string(rune(c))] = v
	}
	return out
}

// clone copies k into a fresh map.
func (k KeyboardHint) clone() KeyboardHint {
	out := make(KeyboardHint, len(k))
	for c, v := range k {
		out[c] = v
	}
	return out
}

// FoldHints merges one scored guess into existing and returns the result.
// Each letter takes its strongest verdict among the positions it occupies in
// this guess; that is merged by max-strength so a letter is never downgraded.
// existing is not modified.
func FoldHints(existing KeyboardHint, guess Word, verdicts []Verdict) KeyboardHint {
	out := existing.clone()
	for i := 0; i < len(guess) && i < len(verdicts); i++ {
		c := guess[i]
		if verdicts[i].Stronger(out[c]) {
			out[c] = verdicts[i]
		}
	}
	return out
}
