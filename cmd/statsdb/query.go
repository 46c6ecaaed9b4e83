package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sportsense/statsdb/internal/iodb"
	"github.com/sportsense/statsdb/internal/ioquery"
	"github.com/sportsense/statsdb/pkg/db"
	"github.com/sportsense/statsdb/pkg/greek"
	"github.com/sportsense/statsdb/pkg/statstore"
	"github.com/spf13/cobra"
)

var (
	queryLimit int
	querySince string
)

func getQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Look up players, teams, averages and fixtures",
		Long: `Look up stored statistics.

Names are matched by substring: "Γιάννης" finds any player whose name
contains it. When several entities match, the candidates are listed so the
query can be repeated with a more specific name.

Examples:
  statsdb query search Γιάννης
  statsdb query team-matches ΠΑΟΚ
  statsdb query player-games Ιωαννίδης
  statsdb query averages Ιωαννίδης --metric σουτ
  statsdb query key-players Ολυμπιακός
  statsdb query head2head ΠΑΟΚ Ολυμπιακός
  statsdb query fixtures ΠΑΟΚ Ολυμπιακός --since 1/9/2024`,
	}

	cmd.PersistentFlags().IntVar(&queryLimit, "limit", 5,
		"maximum number of rows to return")
	cmd.PersistentFlags().StringVar(&querySince, "since", "",
		"only matches on or after this date (day-first, e.g. 15/3/2025)")

	cmd.AddCommand(getSearchCmd())
	cmd.AddCommand(getTeamMatchesCmd())
	cmd.AddCommand(getPlayerGamesCmd())
	cmd.AddCommand(getAveragesCmd())
	cmd.AddCommand(getKeyPlayersCmd())
	cmd.AddCommand(getHeadToHeadCmd())
	cmd.AddCommand(getFixturesCmd())

	return cmd
}

// runQuery opens the store and runs one query function, rendering typed
// misses (not found, ambiguous, unknown metric) as plain text rather than
// command failures.
func runQuery(run func(ctx context.Context, q statstore.Querier) (string, error)) error {
	ctx := context.Background()

	var op db.Operator = iodb.NewSQLiteOperator()
	if err := op.Connect(ctx, getConfig()); err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer op.Close()

	out, err := run(ctx, ioquery.New(op))
	if err != nil {
		if msg, ok := renderMiss(err); ok {
			fmt.Println(msg)
			return nil
		}
		return err
	}
	fmt.Print(out)
	return nil
}

// sinceDate parses the --since flag. Day-first and month-first orderings
// are both accepted.
func sinceDate() (time.Time, bool, error) {
	if querySince == "" {
		return time.Time{}, false, nil
	}
	t, err := greek.ParseFlexibleDate(querySince)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// renderMiss turns a typed query miss into user-facing text.
func renderMiss(err error) (string, bool) {
	var notFound *statstore.NotFoundError
	if errors.As(err, &notFound) {
		return notFound.Error(), true
	}

	var ambiguous *statstore.AmbiguousError
	if errors.As(err, &ambiguous) {
		var b strings.Builder
		fmt.Fprintf(&b, "%s; be more specific:\n", ambiguous.Error())
		b.WriteString(ioquery.RenderPlayerHits(ambiguous.Candidates))
		for _, name := range ambiguous.Names {
			b.WriteString(name + "\n")
		}
		return strings.TrimRight(b.String(), "\n"), true
	}

	var unknown *statstore.UnknownMetricError
	if errors.As(err, &unknown) {
		return unknown.Error(), true
	}

	return "", false
}

func getSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find players by name substring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				hits, err := q.SearchPlayers(ctx, args[0], queryLimit)
				if err != nil {
					return "", err
				}
				if len(hits) == 0 {
					return fmt.Sprintf("no player found matching %q\n", args[0]), nil
				}
				return ioquery.RenderPlayerHits(hits), nil
			})
		},
	}
}

func getTeamMatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team-matches <team>",
		Short: "Show a team's recent matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				tm, err := q.TeamLastMatches(ctx, args[0], queryLimit)
				if err != nil {
					return "", err
				}
				if since, ok, serr := sinceDate(); serr != nil {
					return "", serr
				} else if ok {
					tm = tm.Since(since)
					return fmt.Sprintf("Since %s:\n%s",
						greek.FormatProse(since), ioquery.RenderTeamMatches(tm)), nil
				}
				return ioquery.RenderTeamMatches(tm), nil
			})
		},
	}
}

func getPlayerGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player-games <player>",
		Short: "Show a player's recent stat lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				pg, err := q.PlayerLastGames(ctx, args[0], queryLimit)
				if err != nil {
					return "", err
				}
				return ioquery.RenderPlayerGames(pg), nil
			})
		},
	}
}

func getAveragesCmd() *cobra.Command {
	var metric string
	cmd := &cobra.Command{
		Use:   "averages <player>",
		Short: "Show a player's per-game averages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				pa, err := q.PlayerAverages(ctx, args[0], metric)
				if err != nil {
					return "", err
				}
				return ioquery.RenderPlayerAverages(pa), nil
			})
		},
	}
	cmd.Flags().StringVar(&metric, "metric", "all",
		"metric name, English or Greek (e.g. points, πόντοι)")
	return cmd
}

func getKeyPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key-players <team>",
		Short: "Rank a team's players by the sport's ranking metric",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				tr, err := q.TeamKeyPlayers(ctx, args[0], queryLimit)
				if err != nil {
					return "", err
				}
				return ioquery.RenderTeamRanking(tr), nil
			})
		},
	}
}

func getHeadToHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head2head <teamA> <teamB>",
		Short: "Compare two teams' key players",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				h, err := q.HeadToHead(ctx, args[0], args[1], queryLimit)
				if err != nil {
					return "", err
				}
				return ioquery.RenderHeadToHead(h), nil
			})
		},
	}
}

func getFixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures <teamA> <teamB>",
		Short: "Show the meeting history of two teams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(func(ctx context.Context, q statstore.Querier) (string, error) {
				f, err := q.FixturesBetween(ctx, args[0], args[1])
				if err != nil {
					return "", err
				}
				if since, ok, serr := sinceDate(); serr != nil {
					return "", serr
				} else if ok {
					f = f.Since(since)
					return fmt.Sprintf("Since %s:\n%s",
						greek.FormatProse(since), ioquery.RenderFixtures(f)), nil
				}
				return ioquery.RenderFixtures(f), nil
			})
		},
	}
}
