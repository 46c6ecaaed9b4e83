package ioingest

import (
	"strconv"
	"strings"
)

// placeholders are the tokens scrapers emit for missing data. They all
// coerce to NULL, never to zero.
var placeholders = map[string]bool{
	"":     true,
	"-":    true,
	"–":    true, // en dash
	"—":    true, // em dash
	"n/a":  true,
	"null": true,
}

func isPlaceholder(v string) bool {
	return placeholders[strings.ToLower(strings.TrimSpace(v))]
}

// cellFloat coerces a metric cell to a float, honoring the comma decimal
// separator. Placeholders and unparsable values become nil.
func cellFloat(v string) *float64 {
	if isPlaceholder(v) {
		return nil
	}
	s := strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// cellInt coerces a counter cell to an int, defaulting to zero. Used for
// metrics whose semantics make zero the correct absent value (plus/minus).
func cellInt(v string) int {
	f := cellFloat(v)
	if f == nil {
		return 0
	}
	return int(*f)
}

// cellString keeps a text cell, coercing placeholders to nil.
func cellString(v string) *string {
	if isPlaceholder(v) {
		return nil
	}
	s := strings.TrimSpace(v)
	return &s
}

// cellMinutes coerces a minutes-played cell. "MM:SS" parses to fractional
// minutes; plain numbers pass through; anything else is nil.
func cellMinutes(v string) *float64 {
	if isPlaceholder(v) {
		return nil
	}
	s := strings.TrimSpace(v)

	mm, ss, found := strings.Cut(s, ":")
	if !found {
		return cellFloat(s)
	}

	m, err := strconv.Atoi(mm)
	if err != nil {
		return nil
	}
	sec, err := strconv.Atoi(ss)
	if err != nil || sec < 0 || sec > 59 {
		return nil
	}
	f := float64(m) + float64(sec)/60
	return &f
}
