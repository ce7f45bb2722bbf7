// Package daily chooses the secret for the -daily mode. The choice depends
// only on the UTC calendar day, the salt and the answer list, so every run
// on the same day plays the same word.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// DateKey formats t as its UTC calendar day, e.g. 2026-10-19.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// Answer returns the answer of the day, or "" when answers is empty.
func Answer(date time.Time, salt string, answers []string) string {
	if len(answers) == 0 {
		return ""
	}
	return answers[dayIndex(date, salt, len(answers))]
}

// dayIndex maps a day into [0, n) through HMAC-SHA256(salt, DateKey).
func dayIndex(date time.Time, salt string, n int) int {
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, DateKey(date))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return int(seed % uint64(n))
}
