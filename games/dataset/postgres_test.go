/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package dataset

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seednode/dugout/games/lineup"
)

type fakeRows struct {
	rows   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Values() ([]any, error) {
	return r.rows[r.pos-1], nil
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	row := r.rows[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("expected %d destinations, got %d", len(row), len(dest))
	}

	for i, v := range row {
		switch d := dest[i].(type) {
		case *int:
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into int", i, v)
			}
			*d = n
		case *string:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("column %d: cannot scan %T into string", i, v)
			}
			*d = s
		default:
			return fmt.Errorf("column %d: unsupported destination %T", i, d)
		}
	}

	return nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestQueryAppearances(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{2020, "Los Angeles Dodgers", "C", "Austin Barnes", 30},
		{2020, "Los Angeles Dodgers", "DH", "Edwin Rios", 15},
	}}}

	records, err := QueryAppearances(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, []lineup.AppearanceRecord{
		{Year: 2020, Team: "Los Angeles Dodgers", Position: lineup.Catcher, PlayerName: "Austin Barnes", GamesPlayed: 30},
		{Year: 2020, Team: "Los Angeles Dodgers", Position: lineup.DesignatedHitter, PlayerName: "Edwin Rios", GamesPlayed: 15},
	}, records)
	assert.Contains(t, q.sql, "ORDER BY id")
	assert.True(t, q.rows.closed)
}

func TestQueryAppearances_Errors(t *testing.T) {
	boom := errors.New("boom")

	_, err := QueryAppearances(context.Background(), &fakeQuerier{err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = QueryAppearances(context.Background(), &fakeQuerier{rows: &fakeRows{err: boom}})
	assert.ErrorIs(t, err, boom)

	_, err = QueryAppearances(context.Background(), &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{2020, "Los Angeles Dodgers", "C", "", 30},
	}}})
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Line)
	assert.Equal(t, "player_name", perr.Field)

	_, err = QueryAppearances(context.Background(), &fakeQuerier{rows: &fakeRows{rows: [][]any{
		{"2020", "Los Angeles Dodgers", "C", "Austin Barnes", 30},
	}}})
	require.True(t, errors.As(err, &perr))
	assert.Empty(t, perr.Field)
}
