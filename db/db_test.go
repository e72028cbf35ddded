package db

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"path"
	"testing"

	"github.com/0xPolygon/postman/db/types"
	"github.com/0xPolygon/postman/log"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgconn"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS sample;

-- +migrate Up
CREATE TABLE sample (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	hash        VARCHAR NOT NULL,
	opt_hash    VARCHAR,
	addr        VARCHAR NOT NULL,
	amount      TEXT,
	UNIQUE (hash)
);
`

type sample struct {
	ID      int64          `meddler:"id,pk"`
	Hash    common.Hash    `meddler:"hash,hash"`
	OptHash *common.Hash   `meddler:"opt_hash,hash"`
	Addr    common.Address `meddler:"addr,address"`
	Amount  *big.Int       `meddler:"amount,bigint"`
}

func newTestDB(t *testing.T, driver string) *DB {
	t.Helper()

	database, err := Open(Config{Driver: driver, DSN: path.Join(t.TempDir(), "test.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	err = RunMigrationsDB(log.NewNullLogger(), database.DB, database.Driver,
		[]types.Migration{{ID: "0001", SQL: testMigration}})
	require.NoError(t, err)
	return database
}

func TestMeddlersRoundTrip(t *testing.T) {
	for _, driver := range []string{DriverSQLite3, DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			database := newTestDB(t, driver)
			opt := common.HexToHash("0xbeef")
			amount, _ := new(big.Int).SetString("123456789012345678901234567890", 10)

			withOpt := &sample{Hash: common.HexToHash("0x01"), OptHash: &opt, Addr: common.HexToAddress("0x02"), Amount: amount}
			require.NoError(t, database.Meddler.Insert(database.DB, "sample", withOpt))
			withoutOpt := &sample{Hash: common.HexToHash("0x03"), Addr: common.HexToAddress("0x04")}
			require.NoError(t, database.Meddler.Insert(database.DB, "sample", withoutOpt))

			var got sample
			require.NoError(t, database.Meddler.QueryRow(database.DB, &got, "SELECT * FROM sample WHERE id = $1", withOpt.ID))
			require.Equal(t, *withOpt, got)

			var gotNil sample
			require.NoError(t, database.Meddler.QueryRow(database.DB, &gotNil, "SELECT * FROM sample WHERE id = $1", withoutOpt.ID))
			require.Nil(t, gotNil.OptHash)
			require.Nil(t, gotNil.Amount)

			var missing sample
			err := database.Meddler.QueryRow(database.DB, &missing, "SELECT * FROM sample WHERE id = 100")
			require.ErrorIs(t, ReturnErrNotFound(err), ErrNotFound)
		})
	}
}

func TestUniqueViolationIsConflict(t *testing.T) {
	database := newTestDB(t, DriverSQLite3)
	s := &sample{Hash: common.HexToHash("0x01"), Addr: common.HexToAddress("0x02")}
	require.NoError(t, meddler.Insert(database.DB, "sample", s))
	s.ID = 0
	err := meddler.Insert(database.DB, "sample", s)
	require.Error(t, err)
	require.True(t, IsConflictErr(err))
}

func TestTxCallbacks(t *testing.T) {
	database := newTestDB(t, DriverSQLite3)
	ctx := context.Background()

	committed, rolledBack := false, false
	tx, err := NewTx(ctx, database.DB)
	require.NoError(t, err)
	tx.AddCommitCallback(func() { committed = true })
	tx.AddRollbackCallback(func() { rolledBack = true })
	require.NoError(t, tx.Commit())
	require.True(t, committed)
	require.False(t, rolledBack)

	tx, err = NewTx(ctx, database.DB)
	require.NoError(t, err)
	tx.AddRollbackCallback(func() { rolledBack = true })
	require.NoError(t, tx.Rollback())
	require.True(t, rolledBack)
}

func TestIsConflictErr(t *testing.T) {
	require.False(t, IsConflictErr(nil))
	require.False(t, IsConflictErr(errors.New("boom")))
	require.True(t, IsConflictErr(fmt.Errorf("update: %w", ErrConflict)))
	require.True(t, IsConflictErr(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	require.True(t, IsConflictErr(&pgconn.PgError{Code: "40001"}))
	require.False(t, IsConflictErr(&pgconn.PgError{Code: "42P01"}))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(Config{Driver: "mysql"})
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestSliceConversions(t *testing.T) {
	in := []sample{{ID: 1}, {ID: 2}}
	ptrs := SliceToSlicePtrs(in).([]*sample)
	require.Len(t, ptrs, 2)
	require.Equal(t, int64(2), ptrs[1].ID)
	back := SlicePtrsToSlice(ptrs).([]sample)
	require.Equal(t, in, back)
}
