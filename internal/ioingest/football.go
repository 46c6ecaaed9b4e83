package ioingest

import (
	"github.com/sportsense/statsdb/pkg/schema"
)

// footballStats maps a football CSV row to a fact row, addressed by the
// scraper's fixed Greek headers.
func footballStats(matchID, playerID uint, row csvRow) *schema.FootballStats {
	return &schema.FootballStats{
		MatchID:    matchID,
		PlayerID:   playerID,
		Rating:     cellFloat(row.get("Αξιολόγηση παίκτη")),
		Shots:      cellFloat(row.get("Συνολικά Σουτ")),
		XG:         cellFloat(row.get("Αναμενόμενα γκολ (xG)")),
		Passes:     cellString(row.get("Επιτυχημένες Πάσες")),
		Touches:    cellFloat(row.get("Επαφές με τη μπάλα")),
		TouchesBox: cellFloat(row.get("Επαφές με μπάλα στην αντίπαλη περιοχή")),
		Dribbles:   cellString(row.get("Επιτυχημένες ντρίμπλες")),
		Duels:      cellFloat(row.get("Προσωπικές μονομαχίες")),
		Position:   cellString(row.get("Θέση")),
	}
}
