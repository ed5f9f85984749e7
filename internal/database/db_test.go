package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type stubRow struct{ err error }

func (r stubRow) Scan(dest ...any) error { return r.err }

func TestFakeDBPanicsWithoutFn(t *testing.T) {
	ctx := context.Background()
	db := &FakeDB{}
	require.Panics(t, func() { db.QueryRow(ctx, "") })
	require.Panics(t, func() { _ = db.Ping(ctx) })
	require.NotPanics(t, db.Close)
}

func TestFakeDBDelegates(t *testing.T) {
	ctx := context.Background()
	var calls []string
	db := &FakeDB{
		QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			calls = append(calls, "row:"+sql)
			return stubRow{err: pgx.ErrNoRows}
		},
		PingFn:  func(context.Context) error { calls = append(calls, "ping"); return nil },
		CloseFn: func() { calls = append(calls, "close") },
	}

	require.ErrorIs(t, db.QueryRow(ctx, "SELECT").Scan(), pgx.ErrNoRows)
	require.NoError(t, db.Ping(ctx))
	db.Close()

	require.Equal(t, []string{"row:SELECT", "ping", "close"}, calls)
}
