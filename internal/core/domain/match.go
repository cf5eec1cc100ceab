package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RawCountsLen is the number of fields a match query returns.
const RawCountsLen = 6

// RawCounts is the positional result of one match query:
// hashed, hashed matched, unhashed, unhashed matched, cookie, cookie matched.
type RawCounts [RawCountsLen]int64

// NewRawCounts validates parsed query output. Anything that is not exactly
// six non-negative integers is rejected.
func NewRawCounts(values []int64) (RawCounts, error) {
	var rc RawCounts
	if len(values) != RawCountsLen {
		return rc, fmt.Errorf("%w: got %d fields, want %d", ErrInvalidCounts, len(values), RawCountsLen)
	}
	for i, v := range values {
		if v < 0 {
			return rc, fmt.Errorf("%w: field %d is negative", ErrInvalidCounts, i)
		}
		rc[i] = v
	}
	return rc, nil
}

// Rate is a match rate that may be not computable because its denominator
// is zero. The zero value is NotComputable.
type Rate struct {
	value float64
	ok    bool
}

// NotComputable is the rate used when a denominator is zero.
var NotComputable = Rate{}

// Computed returns a rate rounded to three decimals.
func Computed(v float64) Rate {
	return Rate{value: round3(v), ok: true}
}

// Value returns the rate and whether it was computable.
func (r Rate) Value() (float64, bool) {
	return r.value, r.ok
}

// String renders the rate for ticket comments.
func (r Rate) String() string {
	if !r.ok {
		return "None"
	}
	return strconv.FormatFloat(r.value, 'f', -1, 64)
}

// MarshalJSON encodes a not computable rate as null.
func (r Rate) MarshalJSON() ([]byte, error) {
	if !r.ok {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(r.value, 'f', -1, 64)), nil
}

// UnmarshalJSON accepts a number or null.
func (r *Rate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = NotComputable
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Rate{value: v, ok: true}
	return nil
}

// MatchOutcome holds the counts and rates for one pixel. The JSON field
// order is part of the archived run record format.
type MatchOutcome struct {
	HashedCounted   int64 `json:"hashed_chpck"`
	HashedMatched   int64 `json:"hashed_hhid"`
	UnhashedCounted int64 `json:"unhashed_chpck"`
	UnhashedMatched int64 `json:"unhashed_hhid"`
	CookieCounted   int64 `json:"cookie_chpck"`
	CookieMatched   int64 `json:"cookie_hhid"`
	TotalCounted    int64 `json:"total_chpck"`
	TotalMatched    int64 `json:"total_hhid"`
	HashedRate      Rate  `json:"match_rate_hashes"`
	CookieRate      Rate  `json:"match_rate_cookies"`
	FullRate        Rate  `json:"match_rate_full"`
}

// Empty reports whether every raw count is zero. Such an outcome carries no
// usable data and must be treated like a missing one.
func (o MatchOutcome) Empty() bool {
	return o.HashedCounted+o.HashedMatched+o.UnhashedCounted+
		o.UnhashedMatched+o.CookieCounted+o.CookieMatched == 0
}

// Calculate derives totals and match rates from raw counts.
//
// The branches are checked in a fixed order: both identifier and cookie
// denominators zero, then identifier only, then cookie only.
//
// Rates fall in [0, 1] only when every matched count is at most its counted
// count. Calculate does not enforce this: a query joining duplicate ids can
// report more matches than counts, and the resulting rate exceeds 1.
func Calculate(rc RawCounts) MatchOutcome {
	o := MatchOutcome{
		HashedCounted:   rc[0],
		HashedMatched:   rc[1],
		UnhashedCounted: rc[2],
		UnhashedMatched: rc[3],
		CookieCounted:   rc[4],
		CookieMatched:   rc[5],
	}
	o.TotalCounted = rc[0] + rc[2] + rc[4]
	o.TotalMatched = rc[1] + rc[3] + rc[5]

	idCount := rc[0] + rc[2]
	idMatched := rc[1] + rc[3]
	cookieCount, cookieMatched := rc[4], rc[5]

	switch {
	case idCount == 0 && cookieCount == 0:
		o.HashedRate, o.CookieRate, o.FullRate = NotComputable, NotComputable, NotComputable
	case idCount == 0:
		o.HashedRate = NotComputable
		o.CookieRate = ratio(cookieMatched, cookieCount)
		o.FullRate = NotComputable
	case cookieCount == 0:
		o.HashedRate = ratio(idMatched, idCount)
		o.CookieRate = NotComputable
		o.FullRate = NotComputable
	default:
		o.HashedRate = ratio(idMatched, idCount)
		o.CookieRate = ratio(cookieMatched, cookieCount)
		o.FullRate = ratio(idMatched+cookieMatched, idCount+cookieCount)
	}
	return o
}

func ratio(num, den int64) Rate {
	return Computed(float64(num) / float64(den))
}

// round3 rounds through decimal formatting so that results match what a
// reader sees when the value is printed with three decimals.
func round3(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	return r
}
