// Package schema provides the database models for the statistics store.
// All identifiers are store-assigned and immutable once created; aggregate
// tables are derived data and are fully recomputed by the aggregator.
package schema

import (
	"time"
)

// Sport is the root of the per-sport stat schemas. Name is one of the
// closed set handled by pkg/sport ("football", "basketball").
type Sport struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

func (Sport) TableName() string { return "sports" }

// Competition is a league or tournament within a sport.
type Competition struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex:uix_competitions_name_sport;not null"`
	SportID uint   `gorm:"uniqueIndex:uix_competitions_name_sport;not null"`
}

func (Competition) TableName() string { return "competitions" }

// Team belongs to exactly one sport and one competition.
type Team struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex:uix_teams_name_sport_comp;not null"`
	SportID       uint   `gorm:"uniqueIndex:uix_teams_name_sport_comp;not null"`
	CompetitionID uint   `gorm:"uniqueIndex:uix_teams_name_sport_comp;not null"`
}

func (Team) TableName() string { return "teams" }

// Player belongs to exactly one team. The same display name may exist under
// several teams; disambiguation is a query-time concern.
type Player struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"uniqueIndex:uix_players_name_team;not null"`
	TeamID uint   `gorm:"uniqueIndex:uix_players_name_team;not null"`
}

func (Player) TableName() string { return "players" }

// Match is created once per ingested file and never updated. The two team
// references must differ and share the match's sport and competition.
type Match struct {
	ID            uint      `gorm:"primaryKey"`
	Date          time.Time `gorm:"type:date;uniqueIndex:uix_matches_key;not null"`
	SportID       uint      `gorm:"not null"`
	CompetitionID uint      `gorm:"uniqueIndex:uix_matches_key;not null"`
	HomeTeamID    uint      `gorm:"uniqueIndex:uix_matches_key;not null"`
	AwayTeamID    uint      `gorm:"uniqueIndex:uix_matches_key;not null"`
	HomeScore     int       `gorm:"not null"`
	AwayScore     int       `gorm:"not null"`
}

func (Match) TableName() string { return "matches" }

// FootballStats is one player's line for one football match. Metric pointers
// are NULL when the source cell held a placeholder, never zero.
type FootballStats struct {
	ID       uint `gorm:"primaryKey"`
	MatchID  uint `gorm:"index;not null"`
	PlayerID uint `gorm:"index;not null"`

	Rating     *float64
	Shots      *float64
	XG         *float64 `gorm:"column:xg"`
	Passes     *string
	Touches    *float64
	TouchesBox *float64
	Dribbles   *string
	Duels      *float64
	Position   *string
}

func (FootballStats) TableName() string { return "football_stats" }

// BasketballStats is one player's line for one basketball match.
// PlusMinus is a counter and defaults to zero when the cell is absent.
type BasketballStats struct {
	ID       uint `gorm:"primaryKey"`
	MatchID  uint `gorm:"index;not null"`
	PlayerID uint `gorm:"index;not null"`

	Points        *float64
	ReboundsTotal *float64
	Assists       *float64
	Minutes       *float64
	FGMade        *float64 `gorm:"column:fg_made"`
	FGAttempts    *float64 `gorm:"column:fg_attempts"`
	TwoMade       *float64
	TwoAttempts   *float64
	ThreeMade     *float64
	ThreeAttempts *float64
	FTMade        *float64 `gorm:"column:ft_made"`
	FTAttempts    *float64 `gorm:"column:ft_attempts"`
	PlusMinus     int      `gorm:"not null;default:0"`
	OffRebounds   *float64
	DefRebounds   *float64
	Fouls         *float64
	Steals        *float64
	Turnovers     *float64
	Blocks        *float64
	BlocksAgainst *float64
	TechFouls     *float64
}

func (BasketballStats) TableName() string { return "basketball_stats" }

// FootballPlayerTotals holds summed career metrics per player. Rating is
// averaged since summing a rating has no meaning.
type FootballPlayerTotals struct {
	ID       uint `gorm:"primaryKey"`
	PlayerID uint `gorm:"uniqueIndex;not null"`

	Games      int `gorm:"not null;default:0"`
	Rating     *float64
	Shots      *float64
	XG         *float64 `gorm:"column:xg"`
	Touches    *float64
	TouchesBox *float64
	Duels      *float64
}

func (FootballPlayerTotals) TableName() string { return "football_player_totals" }

// FootballPlayerPerGame holds per-game averaged metrics per player.
type FootballPlayerPerGame struct {
	ID       uint `gorm:"primaryKey"`
	PlayerID uint `gorm:"uniqueIndex;not null"`

	Games      int `gorm:"not null;default:0"`
	Rating     *float64
	Shots      *float64
	XG         *float64 `gorm:"column:xg"`
	Touches    *float64
	TouchesBox *float64
	Duels      *float64
}

func (FootballPlayerPerGame) TableName() string { return "football_player_pergame" }

// BasketballPlayerTotals holds summed career metrics per player.
type BasketballPlayerTotals struct {
	ID       uint `gorm:"primaryKey"`
	PlayerID uint `gorm:"uniqueIndex;not null"`

	Games     int `gorm:"not null;default:0"`
	Points    *float64
	Rebounds  *float64
	Assists   *float64
	Steals    *float64
	Blocks    *float64
	Turnovers *float64
	Minutes   *float64
}

func (BasketballPlayerTotals) TableName() string { return "basketball_player_totals" }

// BasketballPlayerPerGame holds per-game averaged metrics per player.
type BasketballPlayerPerGame struct {
	ID       uint `gorm:"primaryKey"`
	PlayerID uint `gorm:"uniqueIndex;not null"`

	Games     int `gorm:"not null;default:0"`
	Points    *float64
	Rebounds  *float64
	Assists   *float64
	Steals    *float64
	Blocks    *float64
	Turnovers *float64
	Minutes   *float64
}

func (BasketballPlayerPerGame) TableName() string { return "basketball_player_pergame" }
