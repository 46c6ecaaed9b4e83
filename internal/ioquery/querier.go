// Package ioquery implements the read-only Querier interface over the
// store. Name arguments are matched by substring; an exact match always
// wins over partial ones, and ambiguity is reported, never guessed.
package ioquery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/schema"
	"github.com/sportsense/statsdb/pkg/sport"
	"github.com/sportsense/statsdb/pkg/statstore"
	"gorm.io/gorm"
)

// DefaultSearchLimit bounds SearchPlayers when the caller passes no limit.
const DefaultSearchLimit = 10

// DefaultListLimit bounds history and ranking queries when the caller
// passes no limit.
const DefaultListLimit = 5

// querier implements statstore.Querier.
type querier struct {
	operator db.Operator
}

// New creates a Querier bound to the given store handle.
func New(op db.Operator) statstore.Querier {
	return &querier{operator: op}
}

func (q *querier) db(ctx context.Context) (*gorm.DB, error) {
	gormDB := q.operator.DB()
	if gormDB == nil {
		return nil, NotConnectedError()
	}
	return gormDB.WithContext(ctx), nil
}

// playerRow is the flattened projection behind player lookups.
type playerRow struct {
	ID        uint
	Name      string
	TeamID    uint `gorm:"column:team_id"`
	Team      string
	SportName string `gorm:"column:sport_name"`
}

func (r playerRow) hit() statstore.PlayerHit {
	sp, _ := sport.FromSegment(r.SportName)
	return statstore.PlayerHit{
		PlayerID: r.ID,
		Name:     r.Name,
		Team:     r.Team,
		Sport:    sp,
	}
}

func (q *querier) playerRows(tx *gorm.DB, name string, limit int) ([]playerRow, error) {
	var rows []playerRow
	query := tx.Table("players").
		Select(`players.id AS id, players.name AS name,
		        teams.id AS team_id, teams.name AS team,
		        sports.name AS sport_name`).
		Joins("JOIN teams ON teams.id = players.team_id").
		Joins("JOIN sports ON sports.id = teams.sport_id").
		Where("players.name LIKE ?", "%"+strings.TrimSpace(name)+"%").
		Order("players.name, teams.name")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Scan(&rows).Error
	return rows, err
}

// SearchPlayers returns up to limit players whose name contains the given
// substring.
func (q *querier) SearchPlayers(
	ctx context.Context, name string, limit int,
) ([]statstore.PlayerHit, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := q.playerRows(tx, name, limit)
	if err != nil {
		return nil, err
	}
	hits := make([]statstore.PlayerHit, len(rows))
	for i, r := range rows {
		hits[i] = r.hit()
	}
	return hits, nil
}

// resolvePlayer narrows a name to exactly one player. An exact
// (case-insensitive) match beats substring matches; several surviving
// candidates are an AmbiguousError carrying them all.
func (q *querier) resolvePlayer(tx *gorm.DB, name string) (playerRow, error) {
	rows, err := q.playerRows(tx, name, 0)
	if err != nil {
		return playerRow{}, err
	}
	if len(rows) == 0 {
		return playerRow{}, &statstore.NotFoundError{Kind: "player", Name: name}
	}

	var exact []playerRow
	for _, r := range rows {
		if strings.EqualFold(r.Name, strings.TrimSpace(name)) {
			exact = append(exact, r)
		}
	}
	if len(exact) > 0 {
		rows = exact
	}
	if len(rows) > 1 {
		candidates := make([]statstore.PlayerHit, len(rows))
		for i, r := range rows {
			candidates[i] = r.hit()
		}
		return playerRow{}, &statstore.AmbiguousError{
			Kind: "player", Name: name, Candidates: candidates,
		}
	}
	return rows[0], nil
}

// teamRef is one logical team: clubs keep a single identity even when they
// appear in several competitions, so a ref carries every matching team id.
type teamRef struct {
	Name  string
	Sport sport.Sport
	IDs   []uint
}

// resolveTeam narrows a name to one logical team. A name matching several
// distinct clubs, or one club fielding sides in several sports, is
// ambiguous and the caller must be more specific.
func (q *querier) resolveTeam(tx *gorm.DB, name string) (teamRef, error) {
	var teams []schema.Team
	err := tx.
		Where("name LIKE ?", "%"+strings.TrimSpace(name)+"%").
		Find(&teams).Error
	if err != nil {
		return teamRef{}, err
	}
	if len(teams) == 0 {
		return teamRef{}, &statstore.NotFoundError{Kind: "team", Name: name}
	}

	var exact []schema.Team
	for _, t := range teams {
		if strings.EqualFold(t.Name, strings.TrimSpace(name)) {
			exact = append(exact, t)
		}
	}
	if len(exact) > 0 {
		teams = exact
	}

	names := map[string]bool{}
	sportIDs := map[uint]bool{}
	ref := teamRef{Name: teams[0].Name}
	for _, t := range teams {
		names[t.Name] = true
		sportIDs[t.SportID] = true
		ref.IDs = append(ref.IDs, t.ID)
	}
	if len(names) > 1 || len(sportIDs) > 1 {
		candidates, cerr := q.teamCandidates(tx, teams)
		if cerr != nil {
			return teamRef{}, cerr
		}
		return teamRef{}, &statstore.AmbiguousError{
			Kind: "team", Name: name, Names: candidates,
		}
	}

	var s schema.Sport
	if err = tx.First(&s, teams[0].SportID).Error; err != nil {
		return teamRef{}, err
	}
	ref.Sport, _ = sport.FromSegment(s.Name)
	return ref, nil
}

// teamCandidates renders the distinct "name (sport)" labels of matched
// teams, for the ambiguity report.
func (q *querier) teamCandidates(tx *gorm.DB, teams []schema.Team) ([]string, error) {
	sportIDs := make([]uint, 0, len(teams))
	for _, t := range teams {
		sportIDs = append(sportIDs, t.SportID)
	}
	var sports []schema.Sport
	if err := tx.Where("id IN ?", sportIDs).Find(&sports).Error; err != nil {
		return nil, err
	}
	sportName := make(map[uint]string, len(sports))
	for _, s := range sports {
		sportName[s.ID] = s.Name
	}

	seen := map[string]bool{}
	var labels []string
	for _, t := range teams {
		label := fmt.Sprintf("%s (%s)", t.Name, sportName[t.SportID])
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels, nil
}

func contains(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// teamNames loads a name lookup for the given team ids.
func (q *querier) teamNames(tx *gorm.DB, ids []uint) (map[uint]string, error) {
	var teams []schema.Team
	if err := tx.Where("id IN ?", ids).Find(&teams).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}

// TeamLastMatches returns the team's recent matches newest first, scored
// from the team's perspective.
func (q *querier) TeamLastMatches(
	ctx context.Context, team string, limit int,
) (statstore.TeamMatches, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return statstore.TeamMatches{}, err
	}
	ref, err := q.resolveTeam(tx, team)
	if err != nil {
		return statstore.TeamMatches{}, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var matches []schema.Match
	err = tx.
		Where("home_team_id IN ? OR away_team_id IN ?", ref.IDs, ref.IDs).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return statstore.TeamMatches{}, err
	}

	opponentIDs := make([]uint, 0, len(matches))
	for _, m := range matches {
		opponentIDs = append(opponentIDs, m.HomeTeamID, m.AwayTeamID)
	}
	names, err := q.teamNames(tx, opponentIDs)
	if err != nil {
		return statstore.TeamMatches{}, err
	}

	result := statstore.TeamMatches{Team: ref.Name, Sport: ref.Sport}
	for _, m := range matches {
		home := contains(ref.IDs, m.HomeTeamID)
		tm := statstore.TeamMatch{Date: m.Date, Home: home}
		if home {
			tm.Opponent = names[m.AwayTeamID]
			tm.TeamScore, tm.OppScore = m.HomeScore, m.AwayScore
		} else {
			tm.Opponent = names[m.HomeTeamID]
			tm.TeamScore, tm.OppScore = m.AwayScore, m.HomeScore
		}
		tm.Result = resultOf(tm.TeamScore, tm.OppScore)
		result.Matches = append(result.Matches, tm)
	}
	return result, nil
}

func resultOf(team, opp int) statstore.MatchResult {
	switch {
	case team > opp:
		return statstore.Win
	case team < opp:
		return statstore.Loss
	default:
		return statstore.Draw
	}
}

// PlayerLastGames returns the player's recent stat lines newest first.
func (q *querier) PlayerLastGames(
	ctx context.Context, player string, limit int,
) (statstore.PlayerGames, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return statstore.PlayerGames{}, err
	}
	row, err := q.resolvePlayer(tx, player)
	if err != nil {
		return statstore.PlayerGames{}, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	hit := row.hit()
	result := statstore.PlayerGames{Player: hit}

	lines, err := q.gameLines(tx, hit.Sport, row, limit)
	if err != nil {
		return statstore.PlayerGames{}, err
	}
	result.Games = lines
	return result, nil
}

// gameLines loads a player's fact rows, joins the match context, and
// renders each line with the sport's metric formatter.
func (q *querier) gameLines(
	tx *gorm.DB, sp sport.Sport, player playerRow, limit int,
) ([]statstore.PlayerGameLine, error) {
	var values func(matchID uint) ([]statstore.NamedValue, bool)

	switch sp {
	case sport.Football:
		var stats []schema.FootballStats
		err := tx.Where("player_id = ?", player.ID).Find(&stats).Error
		if err != nil {
			return nil, err
		}
		byMatch := make(map[uint]schema.FootballStats, len(stats))
		for _, s := range stats {
			byMatch[s.MatchID] = s
		}
		values = func(matchID uint) ([]statstore.NamedValue, bool) {
			s, ok := byMatch[matchID]
			return footballLine(s), ok
		}
	case sport.Basketball:
		var stats []schema.BasketballStats
		err := tx.Where("player_id = ?", player.ID).Find(&stats).Error
		if err != nil {
			return nil, err
		}
		byMatch := make(map[uint]schema.BasketballStats, len(stats))
		for _, s := range stats {
			byMatch[s.MatchID] = s
		}
		values = func(matchID uint) ([]statstore.NamedValue, bool) {
			s, ok := byMatch[matchID]
			return basketballLine(s), ok
		}
	}

	var matches []schema.Match
	err := tx.
		Where("id IN (?)", tx.Session(&gorm.Session{NewDB: true}).
			Table(sp.StatsTable()).
			Select("match_id").
			Where("player_id = ?", player.ID)).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	teamIDs := make([]uint, 0, len(matches)*2)
	for _, m := range matches {
		teamIDs = append(teamIDs, m.HomeTeamID, m.AwayTeamID)
	}
	names, err := q.teamNames(tx, teamIDs)
	if err != nil {
		return nil, err
	}

	lines := make([]statstore.PlayerGameLine, 0, len(matches))
	for _, m := range matches {
		vals, ok := values(m.ID)
		if !ok {
			continue
		}
		opponent := names[m.AwayTeamID]
		if m.AwayTeamID == player.TeamID {
			opponent = names[m.HomeTeamID]
		}
		lines = append(lines, statstore.PlayerGameLine{
			Date:     m.Date,
			Opponent: opponent,
			Values:   vals,
		})
	}
	return lines, nil
}

// PlayerAverages returns the player's per-game averages, either all tracked
// metrics or the single one named by the sport's alias table.
func (q *querier) PlayerAverages(
	ctx context.Context, player, metric string,
) (statstore.PlayerAverages, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return statstore.PlayerAverages{}, err
	}
	row, err := q.resolvePlayer(tx, player)
	if err != nil {
		return statstore.PlayerAverages{}, err
	}
	hit := row.hit()

	metric = strings.TrimSpace(metric)
	wantAll := metric == "" || strings.EqualFold(metric, "all")
	var want sport.Metric
	if !wantAll {
		m, ok := hit.Sport.ResolveMetric(metric)
		if !ok {
			return statstore.PlayerAverages{}, &statstore.UnknownMetricError{
				Sport: hit.Sport, Metric: metric,
			}
		}
		want = m
	}

	games, all, err := q.perGameValues(tx, hit.Sport, row.ID)
	if err != nil {
		return statstore.PlayerAverages{}, err
	}

	result := statstore.PlayerAverages{Player: hit, Games: games}
	if wantAll {
		result.Values = all
		return result, nil
	}
	for _, v := range all {
		if v.Label == want.Label {
			result.Values = []statstore.NamedValue{v}
			break
		}
	}
	return result, nil
}

// perGameValues reads a player's per-game aggregate row. A player with no
// aggregate row yet has zero games and dash values.
func (q *querier) perGameValues(
	tx *gorm.DB, sp sport.Sport, playerID uint,
) (int, []statstore.NamedValue, error) {
	switch sp {
	case sport.Football:
		var pg schema.FootballPlayerPerGame
		err := tx.Where("player_id = ?", playerID).First(&pg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, emptyValues(sp), nil
		}
		if err != nil {
			return 0, nil, err
		}
		return pg.Games, []statstore.NamedValue{
			{Label: "rating", Value: formatValue(pg.Rating)},
			{Label: "shots", Value: formatValue(pg.Shots)},
			{Label: "xG", Value: formatValue(pg.XG)},
			{Label: "touches", Value: formatValue(pg.Touches)},
			{Label: "touches in box", Value: formatValue(pg.TouchesBox)},
			{Label: "duels", Value: formatValue(pg.Duels)},
		}, nil
	default:
		var pg schema.BasketballPlayerPerGame
		err := tx.Where("player_id = ?", playerID).First(&pg).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, emptyValues(sp), nil
		}
		if err != nil {
			return 0, nil, err
		}
		return pg.Games, []statstore.NamedValue{
			{Label: "points", Value: formatValue(pg.Points)},
			{Label: "rebounds", Value: formatValue(pg.Rebounds)},
			{Label: "assists", Value: formatValue(pg.Assists)},
			{Label: "steals", Value: formatValue(pg.Steals)},
			{Label: "blocks", Value: formatValue(pg.Blocks)},
			{Label: "turnovers", Value: formatValue(pg.Turnovers)},
			{Label: "minutes", Value: formatValue(pg.Minutes)},
		}, nil
	}
}

func emptyValues(sp sport.Sport) []statstore.NamedValue {
	metrics := sp.AverageMetrics()
	values := make([]statstore.NamedValue, len(metrics))
	for i, m := range metrics {
		values[i] = statstore.NamedValue{Label: m.Label, Value: "-"}
	}
	return values
}

// TeamKeyPlayers ranks a team's players by the sport's ranking metric.
func (q *querier) TeamKeyPlayers(
	ctx context.Context, team string, limit int,
) (statstore.TeamRanking, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return statstore.TeamRanking{}, err
	}
	ref, err := q.resolveTeam(tx, team)
	if err != nil {
		return statstore.TeamRanking{}, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return q.keyPlayers(tx, ref, limit)
}

func (q *querier) keyPlayers(
	tx *gorm.DB, ref teamRef, limit int,
) (statstore.TeamRanking, error) {
	ranking := statstore.TeamRanking{
		Team:   ref.Name,
		Sport:  ref.Sport,
		Metric: ref.Sport.RankingMetric().Label,
	}

	var players []schema.Player
	err := tx.Where("team_id IN ?", ref.IDs).Find(&players).Error
	if err != nil {
		return statstore.TeamRanking{}, err
	}

	type candidate struct {
		name string
		rank float64
		vals []statstore.NamedValue
	}
	var ranked []candidate
	for _, p := range players {
		games, vals, err := q.perGameValues(tx, ref.Sport, p.ID)
		if err != nil {
			return statstore.TeamRanking{}, err
		}
		if games == 0 {
			continue
		}
		rank, ok := rankValue(ref.Sport, vals)
		if !ok {
			continue
		}
		ranked = append(ranked, candidate{name: p.Name, rank: rank, vals: vals})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].rank > ranked[j].rank
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for _, c := range ranked {
		rp := statstore.RankedPlayer{Name: c.name}
		for _, v := range c.vals {
			if v.Label == ranking.Metric {
				rp.RankValue = v.Value
				continue
			}
			rp.Supporting = append(rp.Supporting, v)
		}
		ranking.Players = append(ranking.Players, rp)
	}
	return ranking, nil
}

// rankValue extracts the numeric ranking metric from rendered values.
func rankValue(sp sport.Sport, vals []statstore.NamedValue) (float64, bool) {
	label := sp.RankingMetric().Label
	for _, v := range vals {
		if v.Label == label {
			return parseValue(v.Value)
		}
	}
	return 0, false
}

// HeadToHead returns both teams' top-ranked players side by side.
func (q *querier) HeadToHead(
	ctx context.Context, teamA, teamB string, limit int,
) (statstore.HeadToHead, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return statstore.HeadToHead{}, err
	}
	refA, err := q.resolveTeam(tx, teamA)
	if err != nil {
		return statstore.HeadToHead{}, err
	}
	refB, err := q.resolveTeam(tx, teamB)
	if err != nil {
		return statstore.HeadToHead{}, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	a, err := q.keyPlayers(tx, refA, limit)
	if err != nil {
		return statstore.HeadToHead{}, err
	}
	b, err := q.keyPlayers(tx, refB, limit)
	if err != nil {
		return statstore.HeadToHead{}, err
	}
	return statstore.HeadToHead{A: a, B: b}, nil
}

// FixturesBetween returns every stored meeting of the two teams, newest
// first.
func (q *querier) FixturesBetween(
	ctx context.Context, teamA, teamB string,
) (statstore.Fixtures, error) {
	tx, err := q.db(ctx)
	if err != nil {
		return statstore.Fixtures{}, err
	}
	refA, err := q.resolveTeam(tx, teamA)
	if err != nil {
		return statstore.Fixtures{}, err
	}
	refB, err := q.resolveTeam(tx, teamB)
	if err != nil {
		return statstore.Fixtures{}, err
	}

	var matches []schema.Match
	err = tx.
		Where("(home_team_id IN ? AND away_team_id IN ?) OR "+
			"(home_team_id IN ? AND away_team_id IN ?)",
			refA.IDs, refB.IDs, refB.IDs, refA.IDs).
		Order("date DESC, id DESC").
		Find(&matches).Error
	if err != nil {
		return statstore.Fixtures{}, err
	}

	result := statstore.Fixtures{TeamA: refA.Name, TeamB: refB.Name}
	for _, m := range matches {
		home, away := refA.Name, refB.Name
		if contains(refB.IDs, m.HomeTeamID) {
			home, away = refB.Name, refA.Name
		}
		result.Meetings = append(result.Meetings, statstore.Fixture{
			Date:      m.Date,
			HomeTeam:  home,
			AwayTeam:  away,
			HomeScore: m.HomeScore,
			AwayScore: m.AwayScore,
		})
	}
	return result, nil
}
