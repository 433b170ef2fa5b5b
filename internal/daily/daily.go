// internal/daily/daily.go
//
// Deterministic daily targets. Every player asking for the same date and
// board count gets the same answers, picked with HMAC(salt, date|boards|i).

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	return index(salt, DateKey(date), answersLen)
}

// WordIndices returns boards deterministic answer indices for date. Indices
// are distinct whenever answersLen >= boards.
func WordIndices(date time.Time, salt string, answersLen, boards int) []int {
	if answersLen <= 0 || boards <= 0 {
		return nil
	}
	dk := DateKey(date)
	out := make([]int, 0, boards)
	seen := make(map[int]bool, boards)
	for i := 0; i < boards; i++ {
		idx := 0
		for try := 0; ; try++ {
			idx = index(salt, fmt.Sprintf("%s|%d|%d|%d", dk, boards, i, try), answersLen)
			if !seen[idx] || len(seen) >= answersLen {
				break
			}
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}

func index(salt, msg string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(msg))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for modulus distribution
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}
