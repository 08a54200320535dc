package funding

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

var log = logger.GetOrCreate("funding")

// ArgFundingManager is the argument used to create a funding manager
type ArgFundingManager struct {
	Gateway        common.GatewayHandler
	TxSigner       common.TxSigner
	FundingKeyPair *data.KeyPair
	Config         config.NetworkConfig
}

type fundingManager struct {
	mut            sync.Mutex
	gateway        common.GatewayHandler
	txSigner       common.TxSigner
	fundingKeyPair *data.KeyPair
	fundingAmount  *big.Int
	gasLimit       uint64
	gasPrice       uint64
	chainID        string
}

// NewFundingManager creates a funding manager that transfers the configured amount from the funding wallet
func NewFundingManager(arg ArgFundingManager) (*fundingManager, error) {
	if check.IfNil(arg.Gateway) {
		return nil, ErrNilGateway
	}
	if check.IfNil(arg.TxSigner) {
		return nil, ErrNilTxSigner
	}
	if arg.FundingKeyPair == nil {
		return nil, ErrNilKeyPair
	}
	if len(arg.FundingKeyPair.Address) == 0 {
		return nil, fmt.Errorf("%w for funding address", ErrEmptyValue)
	}
	if len(arg.Config.ChainID) == 0 {
		return nil, fmt.Errorf("%w for ChainID", ErrEmptyValue)
	}
	fundingAmount, err := core.ConvertToPositiveBigInt(arg.Config.FundingAmount)
	if err != nil {
		return nil, fmt.Errorf("%w for FundingAmount", err)
	}
	if arg.Config.GasLimit == 0 {
		return nil, fmt.Errorf("%w for GasLimit", ErrInvalidValue)
	}

	return &fundingManager{
		gateway:        arg.Gateway,
		txSigner:       arg.TxSigner,
		fundingKeyPair: arg.FundingKeyPair,
		fundingAmount:  fundingAmount,
		gasLimit:       arg.Config.GasLimit,
		gasPrice:       arg.Config.GasPrice,
		chainID:        arg.Config.ChainID,
	}, nil
}

// FundAccount sends the funding amount to the receiver and returns the transaction hash. The sender nonce
// is fetched for every call and calls are serialized so two transfers never share a nonce
func (fm *fundingManager) FundAccount(ctx context.Context, receiver string) (string, error) {
	fm.mut.Lock()
	defer fm.mut.Unlock()

	hash, err := fm.fundAccount(ctx, receiver)
	if err != nil {
		kindErr := core.NewKindError(core.FundingFailed, receiver, err)
		log.Error("funding failed", "receiver", receiver, "error", err)
		return "", kindErr
	}

	return hash, nil
}

func (fm *fundingManager) fundAccount(ctx context.Context, receiver string) (string, error) {
	if len(receiver) == 0 {
		return "", fmt.Errorf("%w for receiver", ErrEmptyValue)
	}

	state, err := fm.gateway.GetAccountState(ctx, fm.fundingKeyPair.Address)
	if err != nil {
		return "", fmt.Errorf("%w while fetching the funding account nonce", err)
	}
	if state == nil {
		return "", ErrNilAccountState
	}

	tx := &transaction.FrontendTransaction{
		Nonce:    state.Nonce,
		Value:    fm.fundingAmount.String(),
		Receiver: receiver,
		Sender:   fm.fundingKeyPair.Address,
		GasPrice: fm.gasPrice,
		GasLimit: fm.gasLimit,
		ChainID:  fm.chainID,
		Version:  core.TransactionVersion,
	}

	err = fm.txSigner.SignTransaction(tx, fm.fundingKeyPair.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("%w while signing the funding transaction", err)
	}

	hash, err := fm.gateway.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("%w while sending the funding transaction", err)
	}

	log.Debug("funding transaction sent", "receiver", receiver, "nonce", tx.Nonce, "value", tx.Value, "hash", hash)

	return hash, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (fm *fundingManager) IsInterfaceNil() bool {
	return fm == nil
}
