// Package schedule derives per-day seeds, day numbers, and obfuscated
// filenames from calendar dates. All functions are pure and operate at
// day granularity; callers normalize times to UTC midnight first.
package schedule

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// stemLength is the number of hex characters kept from the filename hash.
const stemLength = 16

// hoursPerDay is used for whole-day arithmetic on normalized dates.
const hoursPerDay = 24

// Day normalizes t to midnight UTC so that all derivations below see
// the same calendar day regardless of the caller's clock.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaySeed returns the shuffle seed for a date: the date written as
// YYYYMMDD and read as an integer, e.g. 2024-03-05 -> 20240305.
func DaySeed(date time.Time) uint32 {
	y, m, d := date.UTC().Date()
	return uint32(y*10000 + int(m)*100 + d)
}

// DayNumber returns the 1-based day number of date relative to epoch;
// the epoch date itself is day 1.
func DayNumber(date, epoch time.Time) int {
	diff := Day(date).Sub(Day(epoch))
	return int(diff/(hoursPerDay*time.Hour)) + 1
}

// FilenameStem returns the obfuscated filename stem for a date: the
// first 16 hex characters of SHA-256(secret + ":" + YYYY-MM-DD). The
// secret is shared with the frontend so it can locate today's file
// without a published mapping; this is obfuscation, not a security
// boundary.
func FilenameStem(secret string, date time.Time) string {
	sum := sha256.Sum256([]byte(secret + ":" + date.UTC().Format("2006-01-02")))
	return hex.EncodeToString(sum[:])[:stemLength]
}
