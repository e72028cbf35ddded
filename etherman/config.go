package etherman

import "github.com/0xPolygon/postman/config/types"

// Config is the configuration of the JSON-RPC client of one chain
type Config struct {
	// URL is the JSON-RPC endpoint of the node
	URL string `mapstructure:"URL"`
	// RequestsPerSecond bounds the requests sent to the node. 0 disables the limit
	RequestsPerSecond float64 `mapstructure:"RequestsPerSecond"`
	// MaxRetries is the number of times an idempotent read is retried
	MaxRetries uint64 `mapstructure:"MaxRetries"`
	// RetryInterval is the base interval of the exponential backoff between retries
	RetryInterval types.Duration `mapstructure:"RetryInterval"`
}
