package db

import (
	"context"
	"errors"
	"math/big"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/metrics"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

var testNow = time.Unix(1_700_000_000, 0)

func newTestStorage(t *testing.T) *MessageSQLStorage {
	t.Helper()

	database, err := db.Open(db.Config{Driver: db.DriverSQLite3, DSN: path.Join(t.TempDir(), "postman.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	storage, err := NewMessageSQLStorage(log.WithFields("module", "message-db"), database)
	require.NoError(t, err)
	storage.timeNow = func() time.Time { return testNow }
	return storage
}

func newMessage(hash string, direction message.Direction, status message.Status, block uint64) *message.Message {
	return message.NewFromSentEvent(message.SentEvent{
		MessageHash:     common.HexToHash(hash),
		MessageSender:   common.HexToAddress("0x01"),
		Destination:     common.HexToAddress("0x02"),
		Fee:             big.NewInt(1_000_000),
		Value:           big.NewInt(5),
		MessageNonce:    big.NewInt(int64(block)),
		Calldata:        []byte{},
		ContractAddress: common.HexToAddress("0xc0"),
		BlockNumber:     block,
	}, direction, status, testNow)
}

func Test_Storage(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	t.Run("InsertMessages is idempotent", func(t *testing.T) {
		msgs := []*message.Message{
			newMessage("0x01", message.DirectionL1ToL2, message.StatusSent, 10),
			newMessage("0x02", message.DirectionL1ToL2, message.StatusExcluded, 11),
		}
		n, err := storage.InsertMessages(ctx, msgs)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		n, err = storage.InsertMessages(ctx, msgs)
		require.NoError(t, err)
		require.Equal(t, 0, n)

		stored, err := storage.GetMessageByHash(ctx, common.HexToHash("0x01"))
		require.NoError(t, err)
		require.Equal(t, msgs[0].Fee, stored.Fee)
		require.Equal(t, message.StatusSent, stored.Status)
		require.Nil(t, stored.ClaimTxHash)
		require.NoError(t, storage.clean())
	})

	t.Run("GetMessageByHash not found", func(t *testing.T) {
		_, err := storage.GetMessageByHash(ctx, common.HexToHash("0xdead"))
		require.ErrorIs(t, err, db.ErrNotFound)
	})

	t.Run("GetLatestMessageSent and GetNFirstMessagesSent", func(t *testing.T) {
		_, err := storage.GetLatestMessageSent(ctx, message.DirectionL2ToL1)
		require.ErrorIs(t, err, db.ErrNotFound)

		_, err = storage.InsertMessages(ctx, []*message.Message{
			newMessage("0x03", message.DirectionL2ToL1, message.StatusSent, 30),
			newMessage("0x01", message.DirectionL2ToL1, message.StatusSent, 10),
			newMessage("0x02", message.DirectionL2ToL1, message.StatusAnchored, 20),
			newMessage("0x04", message.DirectionL1ToL2, message.StatusSent, 40),
		})
		require.NoError(t, err)

		latest, err := storage.GetLatestMessageSent(ctx, message.DirectionL2ToL1)
		require.NoError(t, err)
		require.Equal(t, uint64(30), latest.SentBlockNumber)

		sent, err := storage.GetNFirstMessagesSent(ctx, message.DirectionL2ToL1, 10)
		require.NoError(t, err)
		require.Len(t, sent, 2)
		require.Equal(t, uint64(10), sent[0].SentBlockNumber)
		require.Equal(t, uint64(30), sent[1].SentBlockNumber)

		sent, err = storage.GetNFirstMessagesSent(ctx, message.DirectionL2ToL1, 1)
		require.NoError(t, err)
		require.Len(t, sent, 1)
		require.NoError(t, storage.clean())
	})

	t.Run("SaveMessages updates in batch", func(t *testing.T) {
		_, err := storage.InsertMessages(ctx, []*message.Message{
			newMessage("0x01", message.DirectionL1ToL2, message.StatusSent, 1),
			newMessage("0x02", message.DirectionL1ToL2, message.StatusSent, 2),
		})
		require.NoError(t, err)
		sent, err := storage.GetNFirstMessagesSent(ctx, message.DirectionL1ToL2, 10)
		require.NoError(t, err)
		sent[0].SetStatus(message.StatusAnchored, testNow)
		sent[1].SetStatus(message.StatusClaimedSuccess, testNow)
		require.NoError(t, storage.SaveMessages(ctx, sent))

		anchored, err := storage.GetMessagesByStatus(ctx, message.DirectionL1ToL2, message.StatusAnchored, 10)
		require.NoError(t, err)
		require.Len(t, anchored, 1)
		require.Equal(t, common.HexToHash("0x01"), anchored[0].MessageHash)
		require.NoError(t, storage.clean())
	})

	t.Run("GetFirstMessageToClaim", func(t *testing.T) {
		low := newMessage("0x01", message.DirectionL1ToL2, message.StatusAnchored, 1)
		high := newMessage("0x02", message.DirectionL1ToL2, message.StatusAnchored, 2)
		retried := newMessage("0x03", message.DirectionL1ToL2, message.StatusAnchored, 3)
		exhausted := newMessage("0x04", message.DirectionL1ToL2, message.StatusAnchored, 4)
		_, err := storage.InsertMessages(ctx, []*message.Message{low, high, retried, exhausted})
		require.NoError(t, err)

		all, err := storage.GetMessagesByStatus(ctx, message.DirectionL1ToL2, message.StatusAnchored, 10)
		require.NoError(t, err)
		all[0].SetGasEstimationThreshold(100_000, testNow) // 10
		all[1].SetGasEstimationThreshold(10_000, testNow)  // 100
		all[2].SetGasEstimationThreshold(1_000, testNow)   // 1000
		lastRetry := testNow.Add(-10 * time.Second).Unix()
		all[2].ClaimLastRetriedAt = &lastRetry
		all[3].ClaimRetryCount = 3
		require.NoError(t, storage.SaveMessages(ctx, all))

		first, err := storage.GetFirstMessageToClaim(ctx, message.DirectionL1ToL2, 5, 3, time.Minute)
		require.NoError(t, err)
		require.Equal(t, common.HexToHash("0x02"), first.MessageHash)

		first, err = storage.GetFirstMessageToClaim(ctx, message.DirectionL1ToL2, 5, 3, time.Second)
		require.NoError(t, err)
		require.Equal(t, common.HexToHash("0x03"), first.MessageHash)

		_, err = storage.GetFirstMessageToClaim(ctx, message.DirectionL1ToL2, 5000, 3, time.Minute)
		require.ErrorIs(t, err, db.ErrNotFound)

		_, err = storage.GetFirstMessageToClaim(ctx, message.DirectionL2ToL1, 0, 3, time.Minute)
		require.ErrorIs(t, err, db.ErrNotFound)
		require.NoError(t, storage.clean())
	})

	t.Run("UpdateMessageWithClaimTxAtomic", func(t *testing.T) {
		_, err := storage.GetLastClaimTxNonce(ctx, message.DirectionL1ToL2)
		require.ErrorIs(t, err, db.ErrNotFound)

		_, err = storage.InsertMessages(ctx, []*message.Message{
			newMessage("0x01", message.DirectionL1ToL2, message.StatusAnchored, 1),
			newMessage("0x02", message.DirectionL1ToL2, message.StatusAnchored, 2),
		})
		require.NoError(t, err)
		anchored, err := storage.GetMessagesByStatus(ctx, message.DirectionL1ToL2, message.StatusAnchored, 10)
		require.NoError(t, err)

		claimTx := message.ClaimTx{
			Hash:                 common.HexToHash("0xabc"),
			Nonce:                5,
			GasLimit:             100_000,
			MaxFeePerGas:         big.NewInt(20),
			MaxPriorityFeePerGas: big.NewInt(2),
		}
		sentCounter := metrics.ClaimTxsSent.WithLabelValues(message.DirectionL1ToL2.String(), metrics.ClaimKindFirst)
		sentBefore := testutil.ToFloat64(sentCounter)
		submitted := 0
		submit := func(_ context.Context, nonce uint64) (message.ClaimTx, error) {
			submitted++
			require.Equal(t, uint64(5), nonce)
			return claimTx, nil
		}
		require.NoError(t, storage.UpdateMessageWithClaimTxAtomic(ctx, anchored[0], 5, submit))
		require.Equal(t, message.StatusPending, anchored[0].Status)
		require.Equal(t, sentBefore+1, testutil.ToFloat64(sentCounter))

		pending, err := storage.GetFirstPendingMessage(ctx, message.DirectionL1ToL2)
		require.NoError(t, err)
		require.Equal(t, claimTx.Hash, *pending.ClaimTxHash)
		require.Equal(t, uint64(5), *pending.ClaimTxNonce)
		require.Equal(t, testNow.Unix(), *pending.ClaimTxCreatedAt)
		require.Equal(t, big.NewInt(20), pending.ClaimTxMaxFeePerGas)

		nonce, err := storage.GetLastClaimTxNonce(ctx, message.DirectionL1ToL2)
		require.NoError(t, err)
		require.Equal(t, uint64(5), nonce)

		// the same nonce can't be held by two pending claims
		err = storage.UpdateMessageWithClaimTxAtomic(ctx, anchored[1], 5, submit)
		require.ErrorIs(t, err, db.ErrConflict)
		require.Equal(t, 1, submitted)

		// a message already claimed is not claimed twice
		err = storage.UpdateMessageWithClaimTxAtomic(ctx, pending, 6, submit)
		require.ErrorIs(t, err, db.ErrConflict)
		require.Equal(t, 1, submitted)

		// failed submission leaves no trace
		errSubmit := errors.New("insufficient funds")
		err = storage.UpdateMessageWithClaimTxAtomic(ctx, anchored[1], 6,
			func(context.Context, uint64) (message.ClaimTx, error) { return message.ClaimTx{}, errSubmit })
		require.ErrorIs(t, err, errSubmit)
		stillAnchored, err := storage.GetMessageByHash(ctx, anchored[1].MessageHash)
		require.NoError(t, err)
		require.Equal(t, message.StatusAnchored, stillAnchored.Status)
		require.Nil(t, stillAnchored.ClaimTxNonce)
		require.Equal(t, sentBefore+1, testutil.ToFloat64(sentCounter))
		require.NoError(t, storage.clean())
	})

	t.Run("DeleteMessages", func(t *testing.T) {
		old := testNow.Add(-48 * time.Hour)
		msgs := []*message.Message{
			newMessage("0x01", message.DirectionL1ToL2, message.StatusClaimedSuccess, 1),
			newMessage("0x02", message.DirectionL2ToL1, message.StatusClaimedSuccess, 2),
			newMessage("0x03", message.DirectionL1ToL2, message.StatusPending, 3),
			newMessage("0x04", message.DirectionL1ToL2, message.StatusExcluded, 4),
		}
		for _, m := range msgs[:3] {
			m.UpdatedAt = old.Unix()
		}
		_, err := storage.InsertMessages(ctx, msgs)
		require.NoError(t, err)

		deleted, err := storage.DeleteMessages(ctx, testNow.Add(-24*time.Hour),
			[]message.Direction{message.DirectionL1ToL2})
		require.NoError(t, err)
		require.Equal(t, int64(1), deleted)

		deleted, err = storage.DeleteMessages(ctx, testNow.Add(-24*time.Hour), nil)
		require.NoError(t, err)
		require.Equal(t, int64(1), deleted)

		_, err = storage.GetMessageByHash(ctx, common.HexToHash("0x03"))
		require.NoError(t, err)
		_, err = storage.GetMessageByHash(ctx, common.HexToHash("0x04"))
		require.NoError(t, err)
		require.NoError(t, storage.clean())
	})
}

func TestUpdateMessageWithClaimTxAtomicRollback(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	storage := &MessageSQLStorage{
		logger:  log.WithFields("module", "message-db"),
		db:      &db.DB{DB: mockDB, Driver: db.DriverSQLite3, Meddler: meddler.SQLite},
		timeNow: func() time.Time { return testNow },
	}
	msg := newMessage("0x01", message.DirectionL2ToL1, message.StatusAnchored, 1)
	msg.ID = 7

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE message SET status").
		WithArgs(string(message.StatusPending), sqlmock.AnyArg(), testNow.Unix(), msg.ID, string(message.StatusAnchored)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	errSubmit := errors.New("nonce too low")
	err = storage.UpdateMessageWithClaimTxAtomic(context.Background(), msg, 3,
		func(context.Context, uint64) (message.ClaimTx, error) { return message.ClaimTx{}, errSubmit })
	require.ErrorIs(t, err, errSubmit)
	require.Equal(t, message.StatusAnchored, msg.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMessageWithClaimTxAtomicRecordFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	storage := &MessageSQLStorage{
		logger:  log.WithFields("module", "message-db"),
		db:      &db.DB{DB: mockDB, Driver: db.DriverSQLite3, Meddler: meddler.SQLite},
		timeNow: func() time.Time { return testNow },
	}
	msg := newMessage("0x02", message.DirectionL2ToL1, message.StatusAnchored, 1)
	msg.ID = 8
	sentCounter := metrics.ClaimTxsSent.WithLabelValues(message.DirectionL2ToL1.String(), metrics.ClaimKindFirst)
	sentBefore := testutil.ToFloat64(sentCounter)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE message SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	errDisk := errors.New("disk I/O error")
	mock.ExpectExec("UPDATE").WillReturnError(errDisk)
	mock.ExpectRollback()

	err = storage.UpdateMessageWithClaimTxAtomic(context.Background(), msg, 3,
		func(context.Context, uint64) (message.ClaimTx, error) {
			return message.ClaimTx{Hash: common.HexToHash("0xdef"), Nonce: 3, GasLimit: 1}, nil
		})
	require.ErrorContains(t, err, "error recording claim tx")
	require.Equal(t, message.StatusAnchored, msg.Status)
	require.Nil(t, msg.ClaimTxHash)
	require.Equal(t, sentBefore, testutil.ToFloat64(sentCounter))
	require.NoError(t, mock.ExpectationsWereMet())
}
