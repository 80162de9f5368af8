/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Seednode/dugout/games/lineup"
)

// AppearancesTable holds one row per player-season-team-position appearance.
// Rows are read back in id order, which must match descending usage within
// each team and season:
//
//	CREATE TABLE appearances (
//	    id           BIGSERIAL PRIMARY KEY,
//	    year         INTEGER NOT NULL,
//	    team         TEXT    NOT NULL,
//	    position     TEXT    NOT NULL,
//	    player_name  TEXT    NOT NULL,
//	    games_played INTEGER NOT NULL
//	);
const AppearancesTable = "appearances"

const selectAppearances = `SELECT year, team, position, player_name, games_played FROM ` + AppearancesTable + ` ORDER BY id`

// Querier is the subset of pgxpool.Pool used to read appearances.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// LoadPostgres connects to databaseURL and reads every appearance record.
func LoadPostgres(ctx context.Context, databaseURL string) ([]lineup.AppearanceRecord, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	return QueryAppearances(ctx, pool)
}

// QueryAppearances reads and validates every appearance record through q.
func QueryAppearances(ctx context.Context, q Querier) ([]lineup.AppearanceRecord, error) {
	rows, err := q.Query(ctx, selectAppearances)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", AppearancesTable, err)
	}
	defer rows.Close()

	var records []lineup.AppearanceRecord

	for line := 1; rows.Next(); line++ {
		var (
			r        lineup.AppearanceRecord
			position string
		)

		if err := rows.Scan(&r.Year, &r.Team, &position, &r.PlayerName, &r.GamesPlayed); err != nil {
			return nil, &ParseError{Line: line, Err: err}
		}
		r.Position = lineup.Position(position)

		if err := validateRecord(line, &r); err != nil {
			return nil, err
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", AppearancesTable, err)
	}

	return records, nil
}
