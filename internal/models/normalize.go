package models

import (
	"strconv"
	"time"
)

// sizeGrid is the fixed set of quantity-entry columns for every product.
var sizeGrid = []string{"33", "34", "35", "36", "37", "38", "39", "40", "41", "42", "43", "44", "45", "46"}

// Sizes returns the ordered shoe-size grid 33 through 46. Callers must not
// mutate the returned slice.
func Sizes() []string {
	return sizeGrid
}

// ValidSize reports whether label is part of the size grid.
func ValidSize(label string) bool {
	for _, s := range sizeGrid {
		if s == label {
			return true
		}
	}
	return false
}

// NormalizeDate folds the date representations found in stored orders to a
// time.Time. Older documents carry epoch milliseconds or seconds, some carry a
// serialized {seconds, nanoseconds} object, newer ones RFC3339 strings or real
// timestamps. Unknown input yields the zero time.
func NormalizeDate(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case *time.Time:
		if d != nil {
			return *d
		}
	case int64:
		return epochToTime(d)
	case int:
		return epochToTime(int64(d))
	case float64:
		return epochToTime(int64(d))
	case map[string]any:
		if secs, ok := d["seconds"]; ok {
			return epochToTime(int64(SizeQuantity(secs)) * 1000)
		}
	case string:
		if t, err := time.Parse(time.RFC3339, d); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", d); err == nil {
			return t
		}
	}
	return time.Time{}
}

// epochToTime treats values large enough to be milliseconds as such,
// everything else as seconds.
func epochToTime(v int64) time.Time {
	if v == 0 {
		return time.Time{}
	}
	if v > 1e11 {
		return time.UnixMilli(v)
	}
	return time.Unix(v, 0)
}

// SizeQuantity folds a stored size value to an int. JSON round-trips numbers
// as float64 and some legacy documents hold strings; anything unparseable
// counts as zero.
func SizeQuantity(v any) int {
	switch q := v.(type) {
	case int:
		return q
	case int64:
		return int(q)
	case float64:
		return int(q)
	case string:
		if n, err := strconv.Atoi(q); err == nil {
			return n
		}
	}
	return 0
}
