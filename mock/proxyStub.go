package mock

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
	sdkData "github.com/multiversx/mx-sdk-go/data"
)

// ProxyStub -
type ProxyStub struct {
	GetAccountCalled       func(ctx context.Context, address sdkCore.AddressHandler) (*sdkData.Account, error)
	SendTransactionCalled  func(ctx context.Context, tx *transaction.FrontendTransaction) (string, error)
	SendTransactionsCalled func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error)
}

// GetAccount -
func (stub *ProxyStub) GetAccount(ctx context.Context, address sdkCore.AddressHandler) (*sdkData.Account, error) {
	if stub.GetAccountCalled != nil {
		return stub.GetAccountCalled(ctx, address)
	}

	return &sdkData.Account{}, nil
}

// SendTransaction -
func (stub *ProxyStub) SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error) {
	if stub.SendTransactionCalled != nil {
		return stub.SendTransactionCalled(ctx, tx)
	}

	return "", nil
}

// SendTransactions -
func (stub *ProxyStub) SendTransactions(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
	if stub.SendTransactionsCalled != nil {
		return stub.SendTransactionsCalled(ctx, txs)
	}

	return make([]string, 0), nil
}

// IsInterfaceNil -
func (stub *ProxyStub) IsInterfaceNil() bool {
	return stub == nil
}
