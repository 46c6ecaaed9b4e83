package ioingest

import (
	"strings"

	"github.com/sportsense/statsdb/pkg/schema"
	"gorm.io/gorm"
)

// resolver maps raw names onto stable entity identities with get-or-create
// semantics. It is bound to the per-file transaction, so a resolver call
// and its dependent fact insert commit or roll back together.
type resolver struct {
	tx *gorm.DB
}

func (r *resolver) sport(name string) (schema.Sport, error) {
	var s schema.Sport
	err := r.tx.Where(&schema.Sport{Name: name}).FirstOrCreate(&s).Error
	return s, err
}

func (r *resolver) competition(name string, sportID uint) (schema.Competition, error) {
	var c schema.Competition
	err := r.tx.
		Where(&schema.Competition{Name: name, SportID: sportID}).
		FirstOrCreate(&c).Error
	return c, err
}

func (r *resolver) team(name string, sportID, compID uint) (schema.Team, error) {
	var t schema.Team
	err := r.tx.
		Where(&schema.Team{Name: name, SportID: sportID, CompetitionID: compID}).
		FirstOrCreate(&t).Error
	return t, err
}

func (r *resolver) player(name string, teamID uint) (schema.Player, error) {
	var p schema.Player
	err := r.tx.
		Where(&schema.Player{Name: name, TeamID: teamID}).
		FirstOrCreate(&p).Error
	return p, err
}

// match resolves a match by its uniqueness key (date, home, away,
// competition). Scores are attributes, not part of the key: re-ingesting
// the same fixture reuses the existing row.
func (r *resolver) match(info fileInfo, sportID, compID, homeID, awayID uint) (schema.Match, error) {
	var m schema.Match
	err := r.tx.
		Where(&schema.Match{
			Date:          info.Date,
			CompetitionID: compID,
			HomeTeamID:    homeID,
			AwayTeamID:    awayID,
		}).
		Attrs(&schema.Match{
			SportID:   sportID,
			HomeScore: info.HomeScore,
			AwayScore: info.AwayScore,
		}).
		FirstOrCreate(&m).Error
	return m, err
}

// rowTeam resolves the team a stat row belongs to. An exact team-cell
// match wins; otherwise the cell, and for blank cells the player name,
// is matched by substring against the two team names. An ambiguous or
// empty outcome skips the row rather than guessing.
func rowTeam(cell, playerName string, home, away schema.Team) (schema.Team, bool) {
	cell = strings.TrimSpace(cell)

	if cell != "" {
		if cell == home.Name {
			return home, true
		}
		if cell == away.Name {
			return away, true
		}
		return matchOne(cell, home, away)
	}

	// Blank cell: fall back to the player's name tokens. Short tokens
	// (initials, particles) are too noisy to match on.
	for _, token := range strings.Fields(playerName) {
		token = strings.Trim(token, ".,")
		if len([]rune(token)) < 3 {
			continue
		}
		if team, ok := matchOne(token, home, away); ok {
			return team, true
		}
	}

	return schema.Team{}, false
}

// matchOne returns the single team whose name contains s (or is contained
// by s), case-insensitively. Both or neither matching is a miss.
func matchOne(s string, home, away schema.Team) (schema.Team, bool) {
	hit := func(team schema.Team) bool {
		a := strings.ToLower(s)
		b := strings.ToLower(team.Name)
		return strings.Contains(b, a) || strings.Contains(a, b)
	}

	homeHit, awayHit := hit(home), hit(away)
	switch {
	case homeHit && !awayHit:
		return home, true
	case awayHit && !homeHit:
		return away, true
	default:
		return schema.Team{}, false
	}
}
