package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/multiversx/mx-chain-shard-wallets-go/core"
)

// TokenNameAddressChars is the number of trailing address characters included in every token name
const TokenNameAddressChars = 6

const maxTokenNameLen = 20
const minTickerLen = 3
const maxTickerLen = 10

// CheckNetworkConfig validates the network settings
func CheckNetworkConfig(cfg NetworkConfig) error {
	if len(cfg.ProxyURL) == 0 {
		return fmt.Errorf("%w for ProxyURL", ErrEmptyValue)
	}
	if len(cfg.ChainID) == 0 {
		return fmt.Errorf("%w for ChainID", ErrEmptyValue)
	}
	if cfg.NumShards == 0 {
		return fmt.Errorf("%w for NumShards", ErrInvalidValue)
	}
	if cfg.GasLimit == 0 {
		return fmt.Errorf("%w for GasLimit", ErrInvalidValue)
	}
	if cfg.GasPrice == 0 {
		return fmt.Errorf("%w for GasPrice", ErrInvalidValue)
	}
	_, err := core.ConvertToPositiveBigInt(cfg.FundingAmount)
	if err != nil {
		return fmt.Errorf("%w for FundingAmount", err)
	}
	if cfg.BalanceQueryRetries == 0 {
		return fmt.Errorf("%w for BalanceQueryRetries", ErrInvalidValue)
	}
	if cfg.TransactionDelay < 0 || cfg.BalanceQueryDelay < 0 || cfg.BalanceRetryDelay < 0 || cfg.PostFundingWait < 0 {
		return fmt.Errorf("%w for delays, negative durations are not allowed", ErrInvalidValue)
	}

	return nil
}

// CheckWalletConfig validates the wallet generation settings, including the network ones
func CheckWalletConfig(cfg WalletConfig) error {
	if len(cfg.OutputDir) == 0 {
		return fmt.Errorf("%w for OutputDir", ErrEmptyValue)
	}
	if cfg.NumAccountsPerShard == 0 {
		return fmt.Errorf("%w for NumAccountsPerShard", ErrInvalidValue)
	}
	if len(cfg.Password) == 0 {
		return fmt.Errorf("%w for Password", ErrEmptyValue)
	}
	if len(cfg.FundingWalletPem) == 0 {
		return fmt.Errorf("%w for FundingWalletPem", ErrEmptyValue)
	}
	if len(cfg.AccountsInfoFile) == 0 {
		return fmt.Errorf("%w for AccountsInfoFile", ErrEmptyValue)
	}

	totalAccounts := uint64(cfg.NumAccountsPerShard) * uint64(cfg.Network.NumShards)
	if cfg.MaxGenerationAttempts < totalAccounts {
		return fmt.Errorf("%w for MaxGenerationAttempts, should be at least %d", ErrInvalidValue, totalAccounts)
	}

	return CheckNetworkConfig(cfg.Network)
}

// CheckIssuanceConfig validates the token issuance parameters
func CheckIssuanceConfig(cfg IssuanceConfig) error {
	if len(cfg.Token.NamePrefix) == 0 {
		return fmt.Errorf("%w for Token.NamePrefix", ErrEmptyValue)
	}
	longestName := len(cfg.Token.NamePrefix) + TokenNameAddressChars + len(strconv.Itoa(int(cfg.Token.TokensPerAccount)))
	if longestName > maxTokenNameLen {
		return fmt.Errorf("%w for Token.NamePrefix, generated names would exceed %d characters", ErrInvalidValue, maxTokenNameLen)
	}
	if len(cfg.Token.Ticker) < minTickerLen || len(cfg.Token.Ticker) > maxTickerLen {
		return fmt.Errorf("%w for Token.Ticker, length should be between %d and %d", ErrInvalidValue, minTickerLen, maxTickerLen)
	}
	if cfg.Token.Ticker != strings.ToUpper(cfg.Token.Ticker) {
		return fmt.Errorf("%w for Token.Ticker, only upper case is allowed", ErrInvalidValue)
	}
	_, err := core.ConvertToPositiveBigInt(cfg.Token.InitialSupply)
	if err != nil {
		return fmt.Errorf("%w for Token.InitialSupply", err)
	}
	if cfg.Token.TokensPerAccount == 0 {
		return fmt.Errorf("%w for Token.TokensPerAccount", ErrInvalidValue)
	}
	_, err = core.ConvertToPositiveBigInt(cfg.Transactions.IssuanceCost)
	if err != nil {
		return fmt.Errorf("%w for Transactions.IssuanceCost", err)
	}
	if cfg.Transactions.GasLimit == 0 {
		return fmt.Errorf("%w for Transactions.GasLimit", ErrInvalidValue)
	}
	if cfg.Transactions.GasPrice == 0 {
		return fmt.Errorf("%w for Transactions.GasPrice", ErrInvalidValue)
	}
	if len(cfg.Transactions.SystemSCAddress) == 0 {
		return fmt.Errorf("%w for Transactions.SystemSCAddress", ErrEmptyValue)
	}
	if cfg.Pacing.BatchSize == 0 {
		return fmt.Errorf("%w for Pacing.BatchSize", ErrInvalidValue)
	}

	return nil
}

// NetworkName returns the network name derived from the chain ID
func NetworkName(chainID string) string {
	switch chainID {
	case core.DevnetChainID:
		return "devnet"
	case core.TestnetChainID:
		return "testnet"
	case core.MainnetChainID:
		return "mainnet"
	default:
		return "custom network " + chainID
	}
}
