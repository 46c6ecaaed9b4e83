// Package ioaggregate recomputes the derived per-player aggregate tables
// from the fact tables. Aggregates are throwaway data: a rebuild always
// reflects exactly the facts on disk.
package ioaggregate

import (
	"context"
	"log/slog"
	"time"

	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/statstore"
	"gorm.io/gorm"
)

// aggregator implements statstore.Aggregator.
type aggregator struct {
	operator db.Operator
}

// New creates an Aggregator bound to the given store handle.
func New(op db.Operator) statstore.Aggregator {
	return &aggregator{operator: op}
}

// SQLite averages and sums ignore NULLs, which matches the placeholder
// semantics of the fact tables: a missing cell never drags an average
// toward zero.
var rebuildStatements = []string{
	`INSERT OR REPLACE INTO football_player_totals
	    (player_id, games, rating, shots, xg, touches, touches_box, duels)
	 SELECT player_id, COUNT(*),
	        AVG(rating), SUM(shots), SUM(xg),
	        SUM(touches), SUM(touches_box), SUM(duels)
	   FROM football_stats
	  GROUP BY player_id`,

	`INSERT OR REPLACE INTO football_player_pergame
	    (player_id, games, rating, shots, xg, touches, touches_box, duels)
	 SELECT player_id, COUNT(*),
	        AVG(rating), AVG(shots), AVG(xg),
	        AVG(touches), AVG(touches_box), AVG(duels)
	   FROM football_stats
	  GROUP BY player_id`,

	`INSERT OR REPLACE INTO basketball_player_totals
	    (player_id, games, points, rebounds, assists, steals, blocks,
	     turnovers, minutes)
	 SELECT player_id, COUNT(*),
	        SUM(points), SUM(rebounds_total), SUM(assists), SUM(steals),
	        SUM(blocks), SUM(turnovers), SUM(minutes)
	   FROM basketball_stats
	  GROUP BY player_id`,

	`INSERT OR REPLACE INTO basketball_player_pergame
	    (player_id, games, points, rebounds, assists, steals, blocks,
	     turnovers, minutes)
	 SELECT player_id, COUNT(*),
	        AVG(points), AVG(rebounds_total), AVG(assists), AVG(steals),
	        AVG(blocks), AVG(turnovers), AVG(minutes)
	   FROM basketball_stats
	  GROUP BY player_id`,
}

// Rebuild recomputes all four aggregate tables in a single transaction, so
// readers never observe a half-rebuilt state.
func (a *aggregator) Rebuild(ctx context.Context) error {
	gormDB := a.operator.DB()
	if gormDB == nil {
		return NotConnectedError()
	}

	start := time.Now()
	err := gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range rebuildStatements {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return RebuildError(err)
	}

	slog.Info("Rebuilt aggregate tables",
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}
