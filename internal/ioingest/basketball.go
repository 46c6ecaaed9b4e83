package ioingest

import (
	"github.com/sportsense/statsdb/pkg/schema"
)

// basketballStats maps a basketball CSV row to a fact row, addressed by
// the scraper's fixed Greek headers. Minutes may arrive as "MM:SS";
// plus/minus is a counter and defaults to zero when absent.
func basketballStats(matchID, playerID uint, row csvRow) *schema.BasketballStats {
	return &schema.BasketballStats{
		MatchID:       matchID,
		PlayerID:      playerID,
		Points:        cellFloat(row.get("Πόντοι")),
		ReboundsTotal: cellFloat(row.get("Σύνολο ριμπάουντ")),
		Assists:       cellFloat(row.get("Ασίστς")),
		Minutes:       cellMinutes(row.get("Λεπτά που παίχτηκαν")),
		FGMade:        cellFloat(row.get("Ευστοχα σουτ εντός πεδιάς")),
		FGAttempts:    cellFloat(row.get("Σουτ εντός πεδιάς")),
		TwoMade:       cellFloat(row.get("Ευστοχα σουτ 2π εντός πεδιάς")),
		TwoAttempts:   cellFloat(row.get("Σουτ 2π εντός πεδιάς")),
		ThreeMade:     cellFloat(row.get("Ευστοχα σουτ 3π εντός πεδιάς")),
		ThreeAttempts: cellFloat(row.get("Σουτ 3π εντός πεδιάς")),
		FTMade:        cellFloat(row.get("Εύστοχες ελεύθερες βολές")),
		FTAttempts:    cellFloat(row.get("Ελεύθερες βολές")),
		PlusMinus:     cellInt(row.get("+/- Πόντοι")),
		OffRebounds:   cellFloat(row.get("Επιθετικά ριμπάουντ")),
		DefRebounds:   cellFloat(row.get("Αμυντικά ριμπάουντ")),
		Fouls:         cellFloat(row.get("Προσωπικά φάουλ")),
		Steals:        cellFloat(row.get("Κλεψίματα")),
		Turnovers:     cellFloat(row.get("Λάθη")),
		Blocks:        cellFloat(row.get("Μπλοκς")),
		BlocksAgainst: cellFloat(row.get("Μπλοκς κατά")),
		TechFouls:     cellFloat(row.get("Τεχνικές Ποινές")),
	}
}
