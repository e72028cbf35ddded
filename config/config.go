package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/postman/config/types"
	"github.com/0xPolygon/postman/db"
	"github.com/0xPolygon/postman/filter"
	"github.com/0xPolygon/postman/log"
	"github.com/0xPolygon/postman/metrics"
	"github.com/0xPolygon/postman/tree"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagComponents is the flag for components.
	FlagComponents = "components"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"
	// FlagSchema prints the JSON schema of the configuration instead of the defaults
	FlagSchema = "schema"

	EnvVarPrefix       = "POSTMAN"
	ConfigType         = "toml"
	SaveConfigFileName = "postman_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)

	// maxL2MessageTreeDepth bounds the depth of the L2 message trees posted on L1
	maxL2MessageTreeDepth = tree.MaxProofDepth
)

/*
Config represents the configuration of the postman
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Database holding the messages of both directions
	Database db.Config
	// Metrics is the prometheus endpoint
	Metrics metrics.Config
	// RPC is the config for the read-only RPC server
	RPC RPCConfig
	// Cleaner is the retention sweep of finalized messages
	Cleaner CleanerConfig
	// L1L2AutoClaimEnabled claims L1 to L2 messages on L2. When false they are only indexed
	L1L2AutoClaimEnabled bool `mapstructure:"L1L2AutoClaimEnabled"`
	// L2L1AutoClaimEnabled claims L2 to L1 messages on L1. When false they are only indexed
	L2L1AutoClaimEnabled bool `mapstructure:"L2L1AutoClaimEnabled"`
	// L1 is the batch-finalizing chain
	L1 ChainConfig
	// L2 is the rollup
	L2 ChainConfig
}

// RPCConfig is the cdk-rpc server configuration plus its switch
type RPCConfig struct {
	jRPC.Config `mapstructure:",squash"`
	// Enabled starts the postman_* endpoints
	Enabled bool `mapstructure:"Enabled"`
}

// CleanerConfig configures the retention sweep
type CleanerConfig struct {
	Enabled bool `mapstructure:"Enabled"`
	// Interval between sweeps
	Interval types.Duration `mapstructure:"Interval"`
	// RetentionPeriod is how long a message stays after reaching a final status
	RetentionPeriod types.Duration `mapstructure:"RetentionPeriod"`
	// Scope is "global" to sweep every direction or "direction" to only sweep Directions
	Scope string `mapstructure:"Scope" jsonschema:"enum=global,enum=direction"`
	// Directions swept when Scope is "direction"
	Directions []string `mapstructure:"Directions"`
}

// ChainConfig is the configuration of one chain: where its messages are read and how they are claimed
type ChainConfig struct {
	// RPCURL is the JSON-RPC endpoint of the node
	RPCURL string `mapstructure:"RPCURL"`
	// MessageServiceContractAddress is the message service of the chain
	MessageServiceContractAddress string `mapstructure:"MessageServiceContractAddress"`
	// RequestsPerSecond bounds the requests sent to the node. 0 disables the limit
	RequestsPerSecond float64 `mapstructure:"RequestsPerSecond"`
	// MaxRetries is the number of times an idempotent read is retried
	MaxRetries uint64 `mapstructure:"MaxRetries"`
	// RetryInterval is the base interval of the exponential backoff between retries
	RetryInterval types.Duration `mapstructure:"RetryInterval"`
	// IsEOAEnabled claims messages without calldata sent from this chain
	IsEOAEnabled bool `mapstructure:"IsEOAEnabled"`
	// IsCalldataEnabled claims messages with calldata sent from this chain
	IsCalldataEnabled bool `mapstructure:"IsCalldataEnabled"`
	// EnableLineaEstimateGas estimates claims with linea_estimateGas. Only read for L2
	EnableLineaEstimateGas bool `mapstructure:"EnableLineaEstimateGas"`
	// L2MessageTreeDepth is the depth of the message trees rebuilt to claim on L1. Only read for L1
	L2MessageTreeDepth uint8 `mapstructure:"L2MessageTreeDepth"`

	Listener ListenerConfig
	Claiming ClaimingConfig
}

// ListenerConfig configures the pollers reading the chain
type ListenerConfig struct {
	PollingInterval types.Duration `mapstructure:"PollingInterval"`
	// ReceiptPollingInterval paces the claim persister
	ReceiptPollingInterval types.Duration `mapstructure:"ReceiptPollingInterval"`
	// InitialFromBlock is the first block indexed. -1 resumes from the database, or from the head
	InitialFromBlock int64 `mapstructure:"InitialFromBlock"`
	// BlockConfirmation is the number of blocks to wait before indexing a block
	BlockConfirmation uint64 `mapstructure:"BlockConfirmation"`
	// MaxFetchMessagesFromDB bounds the messages checked per anchoring iteration
	MaxFetchMessagesFromDB uint `mapstructure:"MaxFetchMessagesFromDB"`
	// MaxBlocksToFetchLogs bounds the block range of each log query
	MaxBlocksToFetchLogs uint64 `mapstructure:"MaxBlocksToFetchLogs"`
	// EventFilters select the messages to claim
	EventFilters filter.Config `mapstructure:"EventFilters"`
	// MaxRetryAttemptsAfterError bounds the retries of the startup block number query. -1 retries forever
	MaxRetryAttemptsAfterError int `mapstructure:"MaxRetryAttemptsAfterError"`
	// RetryAfterErrorPeriod is the wait between those retries
	RetryAfterErrorPeriod types.Duration `mapstructure:"RetryAfterErrorPeriod"`
}

// ClaimingConfig configures the claims sent on this chain
type ClaimingConfig struct {
	// PrivateKey is the keystore of the signer of the claims
	PrivateKey types.KeystoreFileConfig `mapstructure:"PrivateKey"`
	// PrivateKeyHex is used when no keystore is configured
	PrivateKeyHex string `mapstructure:"PrivateKeyHex"`
	// FeeRecipientAddress receives the message fees. Empty lets the contract pay the signer
	FeeRecipientAddress string `mapstructure:"FeeRecipientAddress"`
	// MessageSubmissionTimeout is the time a claim can stay unmined before its fees are bumped
	MessageSubmissionTimeout types.Duration `mapstructure:"MessageSubmissionTimeout"`
	// MaxNonceDiff is the max distance between the last claim nonce and the account nonce
	MaxNonceDiff uint64 `mapstructure:"MaxNonceDiff"`
	// MaxFeePerGasCap in wei
	MaxFeePerGasCap uint64 `mapstructure:"MaxFeePerGasCap"`
	// GasEstimationPercentile of the rewards used for the priority fee
	GasEstimationPercentile float64 `mapstructure:"GasEstimationPercentile"`
	// IsMaxGasFeeEnforced pays MaxFeePerGasCap for every claim
	IsMaxGasFeeEnforced bool `mapstructure:"IsMaxGasFeeEnforced"`
	// ProfitMargin multiplies the cost of a claim before comparing it with the fee
	ProfitMargin float64 `mapstructure:"ProfitMargin"`
	// MaxNumberOfRetries of a claim, both for fee bumps and for re-picking a message
	MaxNumberOfRetries uint `mapstructure:"MaxNumberOfRetries"`
	// RetryDelay before a message whose claim failed is picked again
	RetryDelay types.Duration `mapstructure:"RetryDelay"`
	// MaxClaimGasLimit above which a message is NON_EXECUTABLE
	MaxClaimGasLimit uint64 `mapstructure:"MaxClaimGasLimit"`
	// FeeBumpPercent applied to both fees of a stuck claim
	FeeBumpPercent uint64 `mapstructure:"FeeBumpPercent"`
	// RateLimitMargin is the share of the rate limit the claims may use
	RateLimitMargin float64 `mapstructure:"RateLimitMargin"`
}

// HasSigner reports whether a signing key is configured
func (c ClaimingConfig) HasSigner() bool {
	return c.PrivateKey.Path != "" || c.PrivateKeyHex != ""
}

// Validate checks the values that can not be checked by decoding
func (c *Config) Validate() error {
	var errs []error
	if c.L1L2AutoClaimEnabled && !c.L2.Claiming.HasSigner() {
		errs = append(errs, errors.New("L2.Claiming: a private key is needed to claim L1 to L2 messages"))
	}
	if c.L2L1AutoClaimEnabled && !c.L1.Claiming.HasSigner() {
		errs = append(errs, errors.New("L1.Claiming: a private key is needed to claim L2 to L1 messages"))
	}
	if c.L1.L2MessageTreeDepth == 0 || c.L1.L2MessageTreeDepth > maxL2MessageTreeDepth {
		errs = append(errs, fmt.Errorf("L1.L2MessageTreeDepth must be in [1, %d]", maxL2MessageTreeDepth))
	}
	for name, chain := range map[string]ChainConfig{"L1": c.L1, "L2": c.L2} {
		if chain.RPCURL == "" {
			errs = append(errs, fmt.Errorf("%s.RPCURL is required", name))
		}
		if chain.Claiming.ProfitMargin < 0 {
			errs = append(errs, fmt.Errorf("%s.Claiming.ProfitMargin can not be negative", name))
		}
	}
	return errors.Join(errs...)
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	configFilePath := ctx.StringSlice(FlagCfg)
	filesData, err := readFiles(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}
	saveConfigPath := ctx.String(FlagSaveConfigPath)
	return LoadFile(filesData, saveConfigPath)
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0)
	for _, file := range files {
		fileContent, err := readFileToString(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileExtension := getFileExtension(file)
		if fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	err := loadString(cfg, configFileData, configType, true, EnvVarPrefix)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfigToString renders cfg as JSON
func SaveConfigToString(cfg Config) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SaveConfigToTOML renders cfg as TOML
func SaveConfigToTOML(cfg Config) (string, error) {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// JSONSchema returns the JSON schema of the configuration file
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "mapstructure",
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "Postman config file"
	return json.MarshalIndent(schema, "", "  ")
}

// LoadFile merges the defaults with files and decodes the result
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0)
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	merger := NewRenderer(fileData, EnvVarPrefix)

	renderedCfg, err := merger.Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := saveConfigPath + "/" + SaveConfigFileName
		err = os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions)
		if err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	cfg, err := LoadFileFromString(renderedCfg, ConfigType)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string,
	allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	err := v.ReadConfig(bytes.NewBuffer([]byte(configData)))
	if err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	return v.Unmarshal(&cfg, decodeHooks...)
}
