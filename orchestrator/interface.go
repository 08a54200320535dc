package orchestrator

import (
	"context"

	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

// AccountsGenerator produces the accepted accounts of every shard
type AccountsGenerator interface {
	GenerateAccounts() (*data.GenerationResult, error)
	IsInterfaceNil() bool
}

// AccountsChecker validates a generated accounts set
type AccountsChecker interface {
	CheckShardAccounts(accounts *data.ShardAccounts) error
	IsInterfaceNil() bool
}

// FundingHandler transfers the funding amount to an account
type FundingHandler interface {
	FundAccount(ctx context.Context, receiver string) (string, error)
	IsInterfaceNil() bool
}

// BalanceHandler returns the display balance of an account
type BalanceHandler interface {
	GetBalance(ctx context.Context, address string) (string, error)
	IsInterfaceNil() bool
}

// AccountsWriter persists the accounts ledger
type AccountsWriter interface {
	WriteAccounts(accounts *data.ShardAccounts) error
	FilePath() string
	IsInterfaceNil() bool
}
