package issuance

import (
	"context"
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

var log = logger.GetOrCreate("issuance")

// ArgTokenIssuer is the argument used to create a token issuer
type ArgTokenIssuer struct {
	Gateway            common.GatewayHandler
	TxSigner           common.TxSigner
	KeyPairGenerator   common.KeyPairGenerator
	WalletFilesHandler common.WalletFilesHandler
	Waiter             common.Waiter
	ChainID            string
	Config             config.IssuanceConfig
}

type tokenIssuer struct {
	gateway            common.GatewayHandler
	txSigner           common.TxSigner
	keyPairGenerator   common.KeyPairGenerator
	walletFilesHandler common.WalletFilesHandler
	waiter             common.Waiter
	chainID            string
	cfg                config.IssuanceConfig
	supply             *big.Int
	issuanceCost       *big.Int
}

// NewTokenIssuer creates a token issuer
func NewTokenIssuer(arg ArgTokenIssuer) (*tokenIssuer, error) {
	if check.IfNil(arg.Gateway) {
		return nil, ErrNilGateway
	}
	if check.IfNil(arg.TxSigner) {
		return nil, ErrNilTxSigner
	}
	if check.IfNil(arg.KeyPairGenerator) {
		return nil, ErrNilKeyPairGenerator
	}
	if check.IfNil(arg.WalletFilesHandler) {
		return nil, ErrNilWalletFilesHandler
	}
	if check.IfNil(arg.Waiter) {
		return nil, ErrNilWaiter
	}
	if len(arg.ChainID) == 0 {
		return nil, fmt.Errorf("%w for ChainID", ErrEmptyValue)
	}
	err := config.CheckIssuanceConfig(arg.Config)
	if err != nil {
		return nil, err
	}

	supply, _ := core.ConvertToPositiveBigInt(arg.Config.Token.InitialSupply)
	issuanceCost, _ := core.ConvertToPositiveBigInt(arg.Config.Transactions.IssuanceCost)

	return &tokenIssuer{
		gateway:            arg.Gateway,
		txSigner:           arg.TxSigner,
		keyPairGenerator:   arg.KeyPairGenerator,
		walletFilesHandler: arg.WalletFilesHandler,
		waiter:             arg.Waiter,
		chainID:            arg.ChainID,
		cfg:                arg.Config,
		supply:             supply,
		issuanceCost:       issuanceCost,
	}, nil
}

// PrepareAccount loads the account key, fetches its nonce and returns the signed issue transactions
func (ti *tokenIssuer) PrepareAccount(ctx context.Context, account *data.IssuerAccount) ([]*transaction.FrontendTransaction, error) {
	if account == nil {
		return nil, ErrNilAccount
	}

	privateKey, err := ti.walletFilesHandler.LoadPem(account.PemFile)
	if err != nil {
		return nil, fmt.Errorf("%w while loading %s", err, account.PemFile)
	}

	keyPair, err := ti.keyPairGenerator.KeyPairFromPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	if keyPair.Address != account.Address {
		log.Warn("PEM key does not match the recorded address, using the PEM key",
			"recorded", account.Address, "pem", keyPair.Address)
	}

	state, err := ti.gateway.GetAccountState(ctx, keyPair.Address)
	if err != nil {
		return nil, fmt.Errorf("%w while fetching the nonce", err)
	}
	if state == nil {
		return nil, ErrNilAccountState
	}

	nonce := state.Nonce
	txs := make([]*transaction.FrontendTransaction, 0, ti.cfg.Token.TokensPerAccount)
	for i := uint32(0); i < ti.cfg.Token.TokensPerAccount; i++ {
		tokenName := TokenName(ti.cfg.Token.NamePrefix, keyPair.Address, i)
		tx := &transaction.FrontendTransaction{
			Nonce:    nonce,
			Value:    ti.issuanceCost.String(),
			Receiver: ti.cfg.Transactions.SystemSCAddress,
			Sender:   keyPair.Address,
			GasPrice: ti.cfg.Transactions.GasPrice,
			GasLimit: ti.cfg.Transactions.GasLimit,
			Data: []byte(IssueTokenData(IssueArgs{
				Name:       tokenName,
				Ticker:     ti.cfg.Token.Ticker,
				Supply:     ti.supply,
				Decimals:   ti.cfg.Token.NumDecimals,
				Properties: ti.cfg.Token.Properties,
			})),
			ChainID: ti.chainID,
			Version: core.TransactionVersion,
		}

		err = ti.txSigner.SignTransaction(tx, keyPair.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("%w while signing the issuance of %s", err, tokenName)
		}

		txs = append(txs, tx)
		nonce++
		log.Info("prepared issuance", "token", tokenName, "ticker", ti.cfg.Token.Ticker, "nonce", tx.Nonce)
	}

	return txs, nil
}

// SendBatches submits the transactions in batches of the configured size, waiting the batch delay after
// every batch. Returns the hashes of the sent transactions
func (ti *tokenIssuer) SendBatches(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
	batchSize := int(ti.cfg.Pacing.BatchSize)
	hashes := make([]string, 0, len(txs))
	for start := 0; start < len(txs); start += batchSize {
		end := start + batchSize
		if end > len(txs) {
			end = len(txs)
		}

		batch := txs[start:end]
		for _, tx := range batch {
			log.Debug("sending transaction", "sender", tx.Sender, "value", tx.Value,
				"data", string(tx.Data), "nonce", tx.Nonce)
		}

		batchHashes, err := ti.gateway.SendTransactions(ctx, batch)
		if err != nil {
			return hashes, fmt.Errorf("%w while sending batch %d", err, start/batchSize+1)
		}

		hashes = append(hashes, batchHashes...)
		log.Info("batch sent", "batch", start/batchSize+1, "num transactions", len(batch))

		err = ti.waiter.Wait(ctx, ti.cfg.Pacing.BatchDelay())
		if err != nil {
			return hashes, err
		}
	}

	return hashes, nil
}

// Run issues the tokens for every account. A failing account is logged and skipped
func (ti *tokenIssuer) Run(ctx context.Context, accounts []*data.IssuerAccount) (*data.IssuanceResult, error) {
	result := &data.IssuanceResult{
		TxHashes: make([]string, 0),
	}

	for _, account := range accounts {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		result.NumAccounts++
		hashes, err := ti.processAccount(ctx, account)
		result.NumTransactions += len(hashes)
		result.TxHashes = append(result.TxHashes, hashes...)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}

			result.NumFailedAccounts++
			log.Error("token issuance failed for account", "address", accountAddress(account), "error", err)
			continue
		}

		err = ti.waiter.Wait(ctx, ti.cfg.Pacing.AccountDelay())
		if err != nil {
			return result, err
		}
	}

	log.Info("token issuance complete",
		"total tokens issued", result.NumTransactions,
		"accounts processed", result.NumAccounts,
		"failed accounts", result.NumFailedAccounts,
		"tokens per account", ti.cfg.Token.TokensPerAccount,
	)

	return result, nil
}

func (ti *tokenIssuer) processAccount(ctx context.Context, account *data.IssuerAccount) ([]string, error) {
	txs, err := ti.PrepareAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	log.Info("sending transactions", "address", account.Address, "num transactions", len(txs))

	return ti.SendBatches(ctx, txs)
}

// IsInterfaceNil returns true if there is no value under the interface
func (ti *tokenIssuer) IsInterfaceNil() bool {
	return ti == nil
}

// TokenName returns the name of the index-th token issued by the address
func TokenName(prefix string, address string, index uint32) string {
	suffix := address
	if len(suffix) > config.TokenNameAddressChars {
		suffix = suffix[len(suffix)-config.TokenNameAddressChars:]
	}

	return fmt.Sprintf("%s%s%d", prefix, suffix, index+1)
}

func accountAddress(account *data.IssuerAccount) string {
	if account == nil {
		return ""
	}

	return account.Address
}
