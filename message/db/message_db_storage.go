package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/message"
	"github.com/0xPolygon/postman/message/db/migrations"
	"github.com/0xPolygon/postman/metrics"
	"github.com/ethereum/go-ethereum/common"
)

const (
	messageTable           = "message"
	errWhileRollbackFormat = "error while rolling back tx: %w"
)

// ClaimSubmitter broadcasts a claim transaction using the reserved nonce
type ClaimSubmitter func(ctx context.Context, nonce uint64) (message.ClaimTx, error)

// MessageStorage is the interface that defines the methods to interact with the storage
type MessageStorage interface {
	// InsertMessages stores new messages, ignoring the ones whose hash is already known.
	// It returns how many rows were created
	InsertMessages(ctx context.Context, msgs []*message.Message) (int, error)
	// UpdateMessage overwrites a stored message
	UpdateMessage(ctx context.Context, msg *message.Message) error
	// SaveMessages updates known messages and inserts new ones in a single transaction
	SaveMessages(ctx context.Context, msgs []*message.Message) error
	// DeleteMessages removes terminal messages not updated since olderThan.
	// An empty directions list means every direction
	DeleteMessages(ctx context.Context, olderThan time.Time, directions []message.Direction) (int64, error)
	// GetLatestMessageSent returns the message with the highest sent block for direction
	GetLatestMessageSent(ctx context.Context, direction message.Direction) (*message.Message, error)
	// GetNFirstMessagesSent returns the oldest SENT messages of direction
	GetNFirstMessagesSent(ctx context.Context, direction message.Direction, limit uint) ([]*message.Message, error)
	// GetFirstMessageToClaim returns the most profitable ANCHORED message that can be claimed now
	GetFirstMessageToClaim(ctx context.Context, direction message.Direction, gasFeesThreshold float64,
		maxRetries uint, retryDelay time.Duration) (*message.Message, error)
	// GetLastClaimTxNonce returns the highest nonce used for claims of direction
	GetLastClaimTxNonce(ctx context.Context, direction message.Direction) (uint64, error)
	// GetFirstPendingMessage returns the PENDING message with the lowest nonce
	GetFirstPendingMessage(ctx context.Context, direction message.Direction) (*message.Message, error)
	// UpdateMessageWithClaimTxAtomic reserves nonce for msg, moves it to PENDING and submits the claim.
	// Nothing is persisted if any of the steps fails
	UpdateMessageWithClaimTxAtomic(ctx context.Context, msg *message.Message, nonce uint64,
		submit ClaimSubmitter) error
	// GetMessageByHash returns a message by its hash
	GetMessageByHash(ctx context.Context, hash common.Hash) (*message.Message, error)
	// GetMessagesByStatus returns messages of direction in status, oldest first
	GetMessagesByStatus(ctx context.Context, direction message.Direction, status message.Status,
		limit uint) ([]*message.Message, error)
}

var _ MessageStorage = (*MessageSQLStorage)(nil)

// MessageSQLStorage is the struct that implements the MessageStorage interface
type MessageSQLStorage struct {
	logger  *log.Logger
	db      *db.DB
	timeNow func() time.Time
}

// NewMessageSQLStorage runs the migrations and returns the storage
func NewMessageSQLStorage(logger *log.Logger, database *db.DB) (*MessageSQLStorage, error) {
	if err := migrations.RunMigrations(logger, database.DB, database.Driver); err != nil {
		return nil, err
	}

	return &MessageSQLStorage{
		logger:  logger,
		db:      database,
		timeNow: time.Now,
	}, nil
}

// InsertMessages stores new messages, ignoring the ones whose hash is already known
func (s *MessageSQLStorage) InsertMessages(ctx context.Context, msgs []*message.Message) (int, error) {
	if len(msgs) == 0 {
		return 0, nil
	}
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	inserted := 0
	for _, msg := range msgs {
		var n int64
		n, err = s.insertIgnore(tx, msg)
		if err != nil {
			return 0, fmt.Errorf("error inserting message %s: %w", msg.MessageHash.Hex(), err)
		}
		inserted += int(n)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Debugf("inserted %d of %d messages", inserted, len(msgs))

	return inserted, nil
}

func (s *MessageSQLStorage) insertIgnore(q db.Querier, msg *message.Message) (int64, error) {
	columns, err := s.db.Meddler.ColumnsQuoted(msg, false)
	if err != nil {
		return 0, err
	}
	placeholders, err := s.db.Meddler.PlaceholdersString(msg, false)
	if err != nil {
		return 0, err
	}
	values, err := s.db.Meddler.Values(msg, false)
	if err != nil {
		return 0, err
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (message_hash) DO NOTHING;",
		messageTable, columns, placeholders)
	res, err := q.Exec(query, values...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateMessage overwrites a stored message
func (s *MessageSQLStorage) UpdateMessage(ctx context.Context, msg *message.Message) error {
	return s.SaveMessages(ctx, []*message.Message{msg})
}

// SaveMessages updates known messages and inserts new ones in a single transaction
func (s *MessageSQLStorage) SaveMessages(ctx context.Context, msgs []*message.Message) error {
	if len(msgs) == 0 {
		return nil
	}
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	for _, msg := range msgs {
		if msg.ID == 0 {
			_, err = s.insertIgnore(tx, msg)
		} else {
			err = s.db.Meddler.Update(tx, messageTable, msg)
		}
		if err != nil {
			return fmt.Errorf("error saving message %s: %w", msg.MessageHash.Hex(), err)
		}
	}

	return tx.Commit()
}

// DeleteMessages removes terminal messages not updated since olderThan
func (s *MessageSQLStorage) DeleteMessages(ctx context.Context, olderThan time.Time,
	directions []message.Direction) (int64, error) {
	args := []interface{}{olderThan.Unix()}
	statusPlaceholders := make([]string, len(message.TerminalStatuses))
	for i, status := range message.TerminalStatuses {
		args = append(args, string(status))
		statusPlaceholders[i] = fmt.Sprintf("$%d", len(args))
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE updated_at < $1 AND status IN (%s)",
		messageTable, strings.Join(statusPlaceholders, ", "))

	if len(directions) > 0 {
		dirPlaceholders := make([]string, len(directions))
		for i, d := range directions {
			args = append(args, string(d))
			dirPlaceholders[i] = fmt.Sprintf("$%d", len(args))
		}
		query += " AND direction IN (" + strings.Join(dirPlaceholders, ", ") + ")"
	}

	res, err := s.db.ExecContext(ctx, query+";", args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting messages: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		s.logger.Debugf("deleted %d messages older than %s", deleted, olderThan.UTC().Format(time.RFC3339))
	}
	return deleted, nil
}

// GetLatestMessageSent returns the message with the highest sent block for direction
func (s *MessageSQLStorage) GetLatestMessageSent(ctx context.Context,
	direction message.Direction) (*message.Message, error) {
	return s.queryOne(
		`SELECT * FROM message WHERE direction = $1
		ORDER BY sent_block_number DESC, sent_log_index DESC LIMIT 1;`,
		string(direction))
}

// GetNFirstMessagesSent returns the oldest SENT messages of direction
func (s *MessageSQLStorage) GetNFirstMessagesSent(ctx context.Context, direction message.Direction,
	limit uint) ([]*message.Message, error) {
	return s.GetMessagesByStatus(ctx, direction, message.StatusSent, limit)
}

// GetFirstMessageToClaim returns the ANCHORED message paying the most per unit of gas among the
// ones whose last estimation is above gasFeesThreshold (or never estimated), which did not
// exhaust the retries and were not retried within retryDelay
func (s *MessageSQLStorage) GetFirstMessageToClaim(ctx context.Context, direction message.Direction,
	gasFeesThreshold float64, maxRetries uint, retryDelay time.Duration) (*message.Message, error) {
	retriedBefore := s.timeNow().Add(-retryDelay).Unix()
	return s.queryOne(
		`SELECT * FROM message
		WHERE direction = $1 AND status = $2
		AND claim_retry_count < $3
		AND (claim_last_retried_at IS NULL OR claim_last_retried_at < $4)
		AND (claim_gas_estimation_threshold IS NULL OR claim_gas_estimation_threshold > $5)
		ORDER BY claim_gas_estimation_threshold DESC NULLS FIRST, sent_block_number ASC
		LIMIT 1;`,
		string(direction), string(message.StatusAnchored), maxRetries, retriedBefore, gasFeesThreshold)
}

// GetLastClaimTxNonce returns the highest nonce used for claims of direction
func (s *MessageSQLStorage) GetLastClaimTxNonce(ctx context.Context, direction message.Direction) (uint64, error) {
	var nonce *int64
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(claim_tx_nonce) FROM message WHERE direction = $1;", string(direction)).Scan(&nonce)
	if err != nil {
		return 0, fmt.Errorf("error getting last claim tx nonce: %w", err)
	}
	if nonce == nil {
		return 0, db.ErrNotFound
	}
	return uint64(*nonce), nil
}

// GetFirstPendingMessage returns the PENDING message with the lowest nonce
func (s *MessageSQLStorage) GetFirstPendingMessage(ctx context.Context,
	direction message.Direction) (*message.Message, error) {
	return s.queryOne(
		`SELECT * FROM message WHERE direction = $1 AND status = $2
		ORDER BY claim_tx_nonce ASC LIMIT 1;`,
		string(direction), string(message.StatusPending))
}

// UpdateMessageWithClaimTxAtomic reserves nonce for msg, moves it to PENDING and submits the claim.
// The conditional update fails with db.ErrConflict when msg is no longer ANCHORED or the nonce is
// already held by another PENDING message
func (s *MessageSQLStorage) UpdateMessageWithClaimTxAtomic(ctx context.Context, msg *message.Message,
	nonce uint64, submit ClaimSubmitter) error {
	tx, err := db.NewTx(ctx, s.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				s.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	now := s.timeNow()
	res, err := tx.Exec(
		`UPDATE message SET status = $1, claim_tx_nonce = $2, updated_at = $3
		WHERE id = $4 AND status = $5;`,
		string(message.StatusPending), nonce, now.Unix(), msg.ID, string(message.StatusAnchored))
	if err != nil {
		if db.IsConflictErr(err) {
			err = fmt.Errorf("nonce %d already reserved: %w", nonce, db.ErrConflict)
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = fmt.Errorf("message %s is no longer %s: %w", msg.MessageHash.Hex(), message.StatusAnchored, db.ErrConflict)
		return err
	}

	claimTx, err := submit(ctx, nonce)
	if err != nil {
		return err
	}

	tx.AddCommitCallback(func() {
		metrics.ClaimTxsSent.WithLabelValues(msg.Direction.String(), metrics.ClaimKindFirst).Inc()
	})
	tx.AddRollbackCallback(func() {
		s.logger.Errorf("claim tx %s of message %s was broadcast but could not be recorded, nonce %d",
			claimTx.Hash.Hex(), msg.MessageHash.Hex(), nonce)
	})

	updated := *msg
	updated.SetClaimTx(claimTx, now)
	if err = s.db.Meddler.Update(tx, messageTable, &updated); err != nil {
		return fmt.Errorf("error recording claim tx %s: %w", claimTx.Hash.Hex(), err)
	}

	if err = tx.Commit(); err != nil {
		return err
	}
	*msg = updated

	s.logger.Debugf("claim tx recorded - messageHash: %s, nonce: %d, txHash: %s",
		msg.MessageHash.Hex(), nonce, claimTx.Hash.Hex())

	return nil
}

// GetMessageByHash returns a message by its hash
func (s *MessageSQLStorage) GetMessageByHash(ctx context.Context, hash common.Hash) (*message.Message, error) {
	return s.queryOne("SELECT * FROM message WHERE message_hash = $1;", hash.Hex())
}

// GetMessagesByStatus returns messages of direction in status, oldest first
func (s *MessageSQLStorage) GetMessagesByStatus(ctx context.Context, direction message.Direction,
	status message.Status, limit uint) ([]*message.Message, error) {
	var msgs []*message.Message
	err := s.db.Meddler.QueryAll(s.db, &msgs,
		`SELECT * FROM message WHERE direction = $1 AND status = $2
		ORDER BY sent_block_number ASC, sent_log_index ASC LIMIT $3;`,
		string(direction), string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("error querying %s messages: %w", status, err)
	}
	return msgs, nil
}

func (s *MessageSQLStorage) queryOne(query string, args ...interface{}) (*message.Message, error) {
	msg := &message.Message{}
	if err := s.db.Meddler.QueryRow(s.db, msg, query, args...); err != nil {
		return nil, getSelectQueryError(err)
	}
	return msg, nil
}

func getSelectQueryError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return db.ErrNotFound
	}
	return err
}

// clean deletes all the messages from the storage. Only for tests
func (s *MessageSQLStorage) clean() error {
	if _, err := s.db.Exec("DELETE FROM message;"); err != nil {
		return err
	}
	return nil
}
