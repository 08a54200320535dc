package mock

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

// GatewayStub -
type GatewayStub struct {
	GetAccountStateCalled  func(ctx context.Context, address string) (*data.AccountState, error)
	SendTransactionCalled  func(ctx context.Context, tx *transaction.FrontendTransaction) (string, error)
	SendTransactionsCalled func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error)
}

// GetAccountState -
func (stub *GatewayStub) GetAccountState(ctx context.Context, address string) (*data.AccountState, error) {
	if stub.GetAccountStateCalled != nil {
		return stub.GetAccountStateCalled(ctx, address)
	}

	return &data.AccountState{Address: address, Balance: "0"}, nil
}

// SendTransaction -
func (stub *GatewayStub) SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return "", nil
}

// SendTransactions -
func (stub *GatewayStub) SendTransactions(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
	if stub.SendTransactionsCalled != nil {
		return stub.SendTransactionsCalled(ctx, txs)
	}

	return make([]string, len(txs)), nil
}

// IsInterfaceNil -
func (stub *GatewayStub) IsInterfaceNil() bool {
	return stub == nil
}
