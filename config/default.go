package config

// DefaultMandatoryVars doesnt have a default value because depend on the
// environment / deployment
const DefaultMandatoryVars = `
# Layer 1 (Ethereum) RPC provider URL
L1URL = "http://localhost:8445"

# Layer 2 RPC provider URL
L2URL = "http://localhost:8545"

# L1MessageServiceAddress is the rollup contract on L1
L1MessageServiceAddress = "0x0000000000000000000000000000000000000000"

# L2MessageServiceAddress is the message service contract on L2
L2MessageServiceAddress = "0x0000000000000000000000000000000000000000"
`

// DefaultVars are the vars used to avoid repetition in config-files
const DefaultVars = `
PathRWData = "/tmp/postman"
ClaimingMaxFeePerGasCap = 100000000000
`

// DefaultValues is the default configuration
const DefaultValues = `
L1L2AutoClaimEnabled = true
L2L1AutoClaimEnabled = true

[Log]
Environment = "development" # "production" or "development"
Level = "info"
Outputs = ["stderr"]

[Database]
Driver = "sqlite3"
DSN = "{{PathRWData}}/postman.sqlite"
MaxOpenConns = 0

[Metrics]
Enabled = false
Host = "localhost"
Port = 9091

[RPC]
Enabled = false
Host = "0.0.0.0"
Port = 5577
ReadTimeout = "2s"
WriteTimeout = "2s"
MaxRequestsPerIPAndSecond = 10

[Cleaner]
Enabled = true
Interval = "1h"
RetentionPeriod = "720h"
Scope = "global"
Directions = []

[L1]
RPCURL = "{{L1URL}}"
MessageServiceContractAddress = "{{L1MessageServiceAddress}}"
RequestsPerSecond = 0
MaxRetries = 3
RetryInterval = "500ms"
IsEOAEnabled = true
IsCalldataEnabled = false
EnableLineaEstimateGas = false
L2MessageTreeDepth = 5
	[L1.Listener]
	PollingInterval = "12s"
	ReceiptPollingInterval = "12s"
	InitialFromBlock = -1
	BlockConfirmation = 4
	MaxFetchMessagesFromDB = 1000
	MaxBlocksToFetchLogs = 1000
	MaxRetryAttemptsAfterError = -1
	RetryAfterErrorPeriod = "5s"
		[L1.Listener.EventFilters]
		FromAddressFilter = ""
		ToAddressFilter = ""
			[L1.Listener.EventFilters.CalldataFilter]
			Expression = ""
			FunctionInterface = ""
	[L1.Claiming]
	PrivateKeyHex = ""
	FeeRecipientAddress = ""
	MessageSubmissionTimeout = "5m"
	MaxNonceDiff = 10000
	MaxFeePerGasCap = {{ClaimingMaxFeePerGasCap}}
	GasEstimationPercentile = 20
	IsMaxGasFeeEnforced = false
	ProfitMargin = 1.0
	MaxNumberOfRetries = 100
	RetryDelay = "30s"
	MaxClaimGasLimit = 1000000
	FeeBumpPercent = 10
	RateLimitMargin = 0.95
		[L1.Claiming.PrivateKey]
		Path = ""
		Password = ""

[L2]
RPCURL = "{{L2URL}}"
MessageServiceContractAddress = "{{L2MessageServiceAddress}}"
RequestsPerSecond = 0
MaxRetries = 3
RetryInterval = "500ms"
IsEOAEnabled = true
IsCalldataEnabled = false
EnableLineaEstimateGas = false
L2MessageTreeDepth = 0
	[L2.Listener]
	PollingInterval = "4s"
	ReceiptPollingInterval = "6s"
	InitialFromBlock = -1
	BlockConfirmation = 0
	MaxFetchMessagesFromDB = 1000
	MaxBlocksToFetchLogs = 1000
	MaxRetryAttemptsAfterError = -1
	RetryAfterErrorPeriod = "5s"
		[L2.Listener.EventFilters]
		FromAddressFilter = ""
		ToAddressFilter = ""
			[L2.Listener.EventFilters.CalldataFilter]
			Expression = ""
			FunctionInterface = ""
	[L2.Claiming]
	PrivateKeyHex = ""
	FeeRecipientAddress = ""
	MessageSubmissionTimeout = "5m"
	MaxNonceDiff = 10000
	MaxFeePerGasCap = {{ClaimingMaxFeePerGasCap}}
	GasEstimationPercentile = 50
	IsMaxGasFeeEnforced = false
	ProfitMargin = 1.0
	MaxNumberOfRetries = 100
	RetryDelay = "30s"
	MaxClaimGasLimit = 100000
	FeeBumpPercent = 10
	RateLimitMargin = 0.95
		[L2.Claiming.PrivateKey]
		Path = ""
		Password = ""
`
