// Package greek provides the Greek month enumerations and date helpers
// shared by the ingestion path parser and the query CLI. The scraper
// writes date path segments with nominative month names; prose dates use
// the genitive form.
package greek

// monthsNominative maps the nominative month names used in stats-tree
// paths to month numbers.
var monthsNominative = map[string]int{
	"Ιανουάριος":  1,
	"Φεβρουάριος": 2,
	"Μάρτιος":     3,
	"Απρίλιος":    4,
	"Μάιος":       5,
	"Ιούνιος":     6,
	"Ιούλιος":     7,
	"Αύγουστος":   8,
	"Σεπτέμβριος": 9,
	"Οκτώβριος":   10,
	"Νοέμβριος":   11,
	"Δεκέμβριος":  12,
}

// monthsGenitive maps month numbers to the genitive month names used in
// prose dates ("3 Νοεμβρίου 2025").
var monthsGenitive = map[int]string{
	1:  "Ιανουαρίου",
	2:  "Φεβρουαρίου",
	3:  "Μαρτίου",
	4:  "Απριλίου",
	5:  "Μαΐου",
	6:  "Ιουνίου",
	7:  "Ιουλίου",
	8:  "Αυγούστου",
	9:  "Σεπτεμβρίου",
	10: "Οκτωβρίου",
	11: "Νοεμβρίου",
	12: "Δεκεμβρίου",
}

// MonthNumber maps a nominative month name to its number. The second
// value is false for unrecognized names; callers treat that as a hard
// parse failure, not a guess.
func MonthNumber(name string) (int, bool) {
	n, ok := monthsNominative[name]
	return n, ok
}

// MonthNominative returns the nominative name for a month number, or ""
// when out of range.
func MonthNominative(month int) string {
	for name, n := range monthsNominative {
		if n == month {
			return name
		}
	}
	return ""
}

// MonthGenitive returns the genitive name for a month number, or "" when
// out of range.
func MonthGenitive(month int) string {
	return monthsGenitive[month]
}
