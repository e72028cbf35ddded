package etherman

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/0xPolygon/postman/log"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"
)

const defaultRetryInterval = 500 * time.Millisecond

var (
	// ErrPrivateKeyNotFound is returned when a tx has to be signed by a read-only client
	ErrPrivateKeyNotFound = errors.New("private key not found")
)

// EthClienter is the subset of the go-ethereum client used by the relayer
type EthClienter interface {
	ethereum.BlockNumberReader
	ethereum.ChainIDReader
	ethereum.ContractCaller
	ethereum.GasEstimator
	ethereum.LogFilterer
	ethereum.TransactionReader
	ethereum.TransactionSender
	FeeHistory(ctx context.Context, blockCount uint64, lastBlock *big.Int,
		rewardPercentiles []float64) (*ethereum.FeeHistory, error)
	NonceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// RawCaller sends arbitrary JSON-RPC requests
type RawCaller interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

// TxRequest holds the fields of a dynamic fee transaction to be signed and sent
type TxRequest struct {
	Nonce                uint64
	To                   common.Address
	Value                *big.Int
	Data                 []byte
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// Client is the rate limited JSON-RPC client of one chain
type Client struct {
	EthClient EthClienter
	raw       RawCaller

	logger     *log.Logger
	limiter    *rate.Limiter
	maxRetries uint64
	retryBase  time.Duration
	chainID    *big.Int
	auth       *bind.TransactOpts // nil in case of read-only client
}

// NewClient connects to the node in cfg.URL
func NewClient(ctx context.Context, logger *log.Logger, cfg Config) (*Client, error) {
	ethClient, err := ethclient.DialContext(ctx, cfg.URL)
	if err != nil {
		logger.Errorf("error connecting to %s: %+v", cfg.URL, err)
		return nil, err
	}
	c := newClient(logger, cfg, ethClient, ethClient.Client())
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading the chain id from %s: %w", cfg.URL, err)
	}
	c.chainID = chainID
	logger.Infof("connected to %s, chain id %s", cfg.URL, chainID)
	return c, nil
}

func newClient(logger *log.Logger, cfg Config, eth EthClienter, raw RawCaller) *Client {
	limit := rate.Inf
	burst := 1
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		burst = int(math.Max(1, math.Ceil(cfg.RequestsPerSecond)))
	}
	retryBase := cfg.RetryInterval.Duration
	if retryBase <= 0 {
		retryBase = defaultRetryInterval
	}
	return &Client{
		EthClient:  eth,
		raw:        raw,
		logger:     logger,
		limiter:    rate.NewLimiter(limit, burst),
		maxRetries: cfg.MaxRetries,
		retryBase:  retryBase,
	}
}

// wait blocks until the limiter allows one more request
func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}

// read runs an idempotent request, retrying transient failures with exponential backoff
func (c *Client) read(ctx context.Context, method string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(c.maxRetries, retry.NewExponential(c.retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := c.wait(ctx); err != nil {
			return err
		}
		err := fn(ctx)
		if err == nil || !isTransient(err) {
			return err
		}
		c.logger.Debugf("%s failed, retrying: %v", method, err)
		return retry.RetryableError(err)
	})
}

func isTransient(err error) bool {
	if errors.Is(err, ethereum.NotFound) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !strings.Contains(err.Error(), "execution reverted")
}

// BlockNumber returns the latest block number
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var n uint64
	err := c.read(ctx, "BlockNumber", func(ctx context.Context) error {
		var err error
		n, err = c.EthClient.BlockNumber(ctx)
		return err
	})
	return n, err
}

// ChainID returns the chain id of the node
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return new(big.Int).Set(c.chainID), nil
	}
	var id *big.Int
	err := c.read(ctx, "ChainID", func(ctx context.Context) error {
		var err error
		id, err = c.EthClient.ChainID(ctx)
		return err
	})
	return id, err
}

// HeaderByNumber returns a block header from the current canonical chain. If number is
// nil, the latest known header is returned.
func (c *Client) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var h *types.Header
	err := c.read(ctx, "HeaderByNumber", func(ctx context.Context) error {
		var err error
		h, err = c.EthClient.HeaderByNumber(ctx, number)
		return err
	})
	return h, err
}

// FeeHistory returns the fee market history of the last blockCount blocks
func (c *Client) FeeHistory(
	ctx context.Context, blockCount uint64, lastBlock *big.Int, rewardPercentiles []float64,
) (*ethereum.FeeHistory, error) {
	var fh *ethereum.FeeHistory
	err := c.read(ctx, "FeeHistory", func(ctx context.Context) error {
		var err error
		fh, err = c.EthClient.FeeHistory(ctx, blockCount, lastBlock, rewardPercentiles)
		return err
	})
	return fh, err
}

// CurrentNonce returns the current nonce for the provided account
func (c *Client) CurrentNonce(ctx context.Context, account common.Address) (uint64, error) {
	var nonce uint64
	err := c.read(ctx, "NonceAt", func(ctx context.Context) error {
		var err error
		nonce, err = c.EthClient.NonceAt(ctx, account, nil)
		return err
	})
	return nonce, err
}

// TransactionReceipt returns the receipt of a mined tx, ethereum.NotFound if there is none
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.read(ctx, "TransactionReceipt", func(ctx context.Context) error {
		var err error
		receipt, err = c.EthClient.TransactionReceipt(ctx, txHash)
		return err
	})
	return receipt, err
}

// CheckTxWasMined check if a tx was already mined
func (c *Client) CheckTxWasMined(ctx context.Context, txHash common.Hash) (bool, *types.Receipt, error) {
	receipt, err := c.TransactionReceipt(ctx, txHash)
	if errors.Is(err, ethereum.NotFound) {
		return false, nil, nil
	} else if err != nil {
		return false, nil, err
	}

	return true, receipt, nil
}

// TransactionByHash returns the tx with the given hash
func (c *Client) TransactionByHash(ctx context.Context, txHash common.Hash) (*types.Transaction, bool, error) {
	var (
		tx        *types.Transaction
		isPending bool
	)
	err := c.read(ctx, "TransactionByHash", func(ctx context.Context) error {
		var err error
		tx, isPending, err = c.EthClient.TransactionByHash(ctx, txHash)
		return err
	})
	return tx, isPending, err
}

// FilterLogs runs a log query
func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	var logs []types.Log
	err := c.read(ctx, "FilterLogs", func(ctx context.Context) error {
		var err error
		logs, err = c.EthClient.FilterLogs(ctx, q)
		return err
	})
	return logs, err
}

// EstimateGas returns the estimated gas for the call. Reverts are not retried
func (c *Client) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	if err := c.wait(ctx); err != nil {
		return 0, err
	}
	return c.EthClient.EstimateGas(ctx, call)
}

// CallContract executes an eth_call. Reverts are not retried
func (c *Client) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	return c.EthClient.CallContract(ctx, call, blockNumber)
}

// CallContext sends a raw JSON-RPC request
func (c *Client) CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return c.raw.CallContext(ctx, result, method, args...)
}

// SendTransaction broadcasts a signed tx
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	return c.EthClient.SendTransaction(ctx, tx)
}

// From returns the address of the loaded signer
func (c *Client) From() (common.Address, error) {
	if c.auth == nil {
		return common.Address{}, ErrPrivateKeyNotFound
	}
	return c.auth.From, nil
}

// SignTx signs a tx with the loaded signer
func (c *Client) SignTx(tx *types.Transaction) (*types.Transaction, error) {
	if c.auth == nil {
		return nil, ErrPrivateKeyNotFound
	}
	return c.auth.Signer(c.auth.From, tx)
}

// SendTx builds, signs and sends a dynamic fee tx
func (c *Client) SendTx(ctx context.Context, req TxRequest) (*types.Transaction, error) {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	to := req.To
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     req.Nonce,
		GasTipCap: req.MaxPriorityFeePerGas,
		GasFeeCap: req.MaxFeePerGas,
		Gas:       req.GasLimit,
		To:        &to,
		Value:     valueOrZero(req.Value),
		Data:      req.Data,
	})
	signedTx, err := c.SignTx(tx)
	if err != nil {
		return nil, err
	}
	if err := c.SendTransaction(ctx, signedTx); err != nil {
		return nil, err
	}
	c.logger.Debugf("sent tx %s with nonce %d", signedTx.Hash().Hex(), req.Nonce)
	return signedTx, nil
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return big.NewInt(0)
	}
	return v
}

// LoadAuthFromKeyStore loads the signer from a key store file
func (c *Client) LoadAuthFromKeyStore(ctx context.Context, path, password string) (*ecdsa.PrivateKey, error) {
	key, err := newKeyFromKeystore(c.logger, path, password)
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrPrivateKeyNotFound
	}
	return key.PrivateKey, c.setAuth(ctx, key.PrivateKey)
}

// LoadAuthFromHex loads the signer from a hex encoded private key
func (c *Client) LoadAuthFromHex(ctx context.Context, hexKey string) (*ecdsa.PrivateKey, error) {
	pk, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return pk, c.setAuth(ctx, pk)
}

func (c *Client) setAuth(ctx context.Context, pk *ecdsa.PrivateKey) error {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return err
	}
	auth, err := bind.NewKeyedTransactorWithChainID(pk, chainID)
	if err != nil {
		return err
	}
	c.auth = auth
	c.logger.Infof("loaded authorization for address: %v", auth.From.String())
	return nil
}

// newKeyFromKeystore creates an instance of a keystore key from a keystore file
func newKeyFromKeystore(logger *log.Logger, path, password string) (*keystore.Key, error) {
	if path == "" && password == "" {
		return nil, nil
	}
	keystoreEncrypted, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	logger.Infof("decrypting key from: %v", path)
	key, err := keystore.DecryptKey(keystoreEncrypted, password)
	if err != nil {
		return nil, err
	}
	return key, nil
}
