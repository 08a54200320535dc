package orchestrator

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

var log = logger.GetOrCreate("orchestrator")

// ArgOrchestrator is the argument used to create an orchestrator
type ArgOrchestrator struct {
	AccountsGenerator AccountsGenerator
	AccountsChecker   AccountsChecker
	FundingHandler    FundingHandler
	BalanceHandler    BalanceHandler
	AccountsWriter    AccountsWriter
	Waiter            common.Waiter
	Config            config.WalletConfig
}

type orchestrator struct {
	accountsGenerator AccountsGenerator
	accountsChecker   AccountsChecker
	fundingHandler    FundingHandler
	balanceHandler    BalanceHandler
	accountsWriter    AccountsWriter
	waiter            common.Waiter
	cfg               config.WalletConfig
	accounts          *data.ShardAccounts
}

// NewOrchestrator creates the component sequencing generation, funding, balance polling and persistence
func NewOrchestrator(arg ArgOrchestrator) (*orchestrator, error) {
	if check.IfNil(arg.AccountsGenerator) {
		return nil, ErrNilAccountsGenerator
	}
	if check.IfNil(arg.AccountsChecker) {
		return nil, ErrNilAccountsChecker
	}
	if check.IfNil(arg.FundingHandler) {
		return nil, ErrNilFundingHandler
	}
	if check.IfNil(arg.BalanceHandler) {
		return nil, ErrNilBalanceHandler
	}
	if check.IfNil(arg.AccountsWriter) {
		return nil, ErrNilAccountsWriter
	}
	if check.IfNil(arg.Waiter) {
		return nil, ErrNilWaiter
	}

	return &orchestrator{
		accountsGenerator: arg.AccountsGenerator,
		accountsChecker:   arg.AccountsChecker,
		fundingHandler:    arg.FundingHandler,
		balanceHandler:    arg.BalanceHandler,
		accountsWriter:    arg.AccountsWriter,
		waiter:            arg.Waiter,
		cfg:               arg.Config,
	}, nil
}

// GenerateAccounts generates and checks the accounts of every shard
func (o *orchestrator) GenerateAccounts(_ context.Context) error {
	result, err := o.accountsGenerator.GenerateAccounts()
	if err != nil {
		return err
	}

	err = o.accountsChecker.CheckShardAccounts(result.Accounts)
	if err != nil {
		return fmt.Errorf("%w while checking the generated accounts", err)
	}

	o.accounts = result.Accounts

	return nil
}

// FundAccounts funds every account, shard by shard, one at a time. The first failure stops the phase
func (o *orchestrator) FundAccounts(ctx context.Context) error {
	if o.accounts == nil {
		return ErrAccountsNotGenerated
	}

	for _, account := range o.accounts.All() {
		hash, err := o.fundingHandler.FundAccount(ctx, account.Address)
		if err != nil {
			return err
		}

		log.Info("funding", "shard", account.Shard, "address", account.Address, "tx hash", hash)

		err = o.waiter.Wait(ctx, o.cfg.Network.TransactionDelay)
		if err != nil {
			return err
		}
	}

	return nil
}

// WaitForFinality blocks for the configured post funding wait
func (o *orchestrator) WaitForFinality(ctx context.Context) error {
	log.Info("waiting for the funding transactions to be executed", "duration", o.cfg.Network.PostFundingWait)

	return o.waiter.Wait(ctx, o.cfg.Network.PostFundingWait)
}

// UpdateBalances queries and stores the balance of every account
func (o *orchestrator) UpdateBalances(ctx context.Context) error {
	if o.accounts == nil {
		return ErrAccountsNotGenerated
	}

	for _, account := range o.accounts.All() {
		balance, err := o.balanceHandler.GetBalance(ctx, account.Address)
		if err != nil {
			return err
		}

		account.Balance = balance
		log.Info("balance", "shard", account.Shard, "address", account.Address, "balance", balance)

		err = o.waiter.Wait(ctx, o.cfg.Network.BalanceQueryDelay)
		if err != nil {
			return err
		}
	}

	return nil
}

// SaveAccountsInfo writes the accounts ledger
func (o *orchestrator) SaveAccountsInfo() error {
	if o.accounts == nil {
		return ErrAccountsNotGenerated
	}

	return o.accountsWriter.WriteAccounts(o.accounts)
}

// Run executes all phases in order and logs the execution summary. The ledger is also written right after
// generation so the mnemonics survive a failed funding phase
func (o *orchestrator) Run(ctx context.Context) error {
	err := o.GenerateAccounts(ctx)
	if err != nil {
		return err
	}

	err = o.SaveAccountsInfo()
	if err != nil {
		return err
	}

	err = o.FundAccounts(ctx)
	if err != nil {
		return err
	}

	err = o.WaitForFinality(ctx)
	if err != nil {
		return err
	}

	err = o.UpdateBalances(ctx)
	if err != nil {
		return err
	}

	err = o.SaveAccountsInfo()
	if err != nil {
		return err
	}

	o.logSummary()

	return nil
}

func (o *orchestrator) logSummary() {
	fundedAmount, err := core.FormatEGLD(o.cfg.Network.FundingAmount)
	if err != nil {
		fundedAmount = o.cfg.Network.FundingAmount
	}

	log.Info("execution complete",
		"total accounts", o.accounts.NumAccounts(),
		"accounts per shard", o.cfg.NumAccountsPerShard,
		"network", config.NetworkName(o.cfg.Network.ChainID),
		"funded amount per account (EGLD)", fundedAmount,
		"funding wallet", o.cfg.FundingWalletPem,
		"accounts file", o.accountsWriter.FilePath(),
	)
}

// Accounts returns the generated accounts, nil before the generation phase
func (o *orchestrator) Accounts() *data.ShardAccounts {
	return o.accounts
}

// IsInterfaceNil returns true if there is no value under the interface
func (o *orchestrator) IsInterfaceNil() bool {
	return o == nil
}
