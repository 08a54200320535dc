package config

import "time"

// NetworkConfig holds the gateway and pacing settings. It is loaded once and never mutated
type NetworkConfig struct {
	ProxyURL            string
	ChainID             string
	NumShards           uint32
	GasLimit            uint64
	GasPrice            uint64
	FundingAmount       string
	TransactionDelay    time.Duration
	BalanceQueryDelay   time.Duration
	BalanceRetryDelay   time.Duration
	BalanceQueryRetries uint32
	PostFundingWait     time.Duration
}

// WalletConfig holds the wallet generation settings
type WalletConfig struct {
	OutputDir             string
	NumAccountsPerShard   uint32
	Password              string
	FundingWalletPem      string
	AccountsInfoFile      string
	MaxGenerationAttempts uint64
	Network               NetworkConfig
}

// IssuanceConfig holds the token issuance parameters
type IssuanceConfig struct {
	Token        TokenConfig
	Transactions TransactionsConfig
	Pacing       PacingConfig
}

// TokenConfig describes the tokens issued for every account
type TokenConfig struct {
	NamePrefix       string
	Ticker           string
	InitialSupply    string
	NumDecimals      uint64
	TokensPerAccount uint32
	Properties       TokenPropertiesConfig
}

// TokenPropertiesConfig holds the eight ESDT property flags
type TokenPropertiesConfig struct {
	CanFreeze          bool
	CanWipe            bool
	CanPause           bool
	CanMint            bool
	CanBurn            bool
	CanChangeOwner     bool
	CanUpgrade         bool
	CanAddSpecialRoles bool
}

// TransactionsConfig holds the issuance transaction fields
type TransactionsConfig struct {
	IssuanceCost    string
	GasLimit        uint64
	GasPrice        uint64
	SystemSCAddress string
}

// PacingConfig holds the batching and delay settings
type PacingConfig struct {
	BatchSize             uint32
	BatchDelayInSeconds   uint32
	AccountDelayInSeconds uint32
}

// BatchDelay returns the delay applied after every submitted batch
func (pc PacingConfig) BatchDelay() time.Duration {
	return time.Duration(pc.BatchDelayInSeconds) * time.Second
}

// AccountDelay returns the delay applied after all batches of an account were submitted
func (pc PacingConfig) AccountDelay() time.Duration {
	return time.Duration(pc.AccountDelayInSeconds) * time.Second
}
