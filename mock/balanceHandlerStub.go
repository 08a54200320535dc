package mock

import "context"

// BalanceHandlerStub -
type BalanceHandlerStub struct {
	GetBalanceCalled func(ctx context.Context, address string) (string, error)
}

// GetBalance -
func (stub *BalanceHandlerStub) GetBalance(ctx context.Context, address string) (string, error) {
	if stub.GetBalanceCalled != nil {
		return stub.GetBalanceCalled(ctx, address)
	}

	return "0.0000", nil
}

// IsInterfaceNil -
func (stub *BalanceHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
