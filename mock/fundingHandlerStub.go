package mock

import "context"

// FundingHandlerStub -
type FundingHandlerStub struct {
	FundAccountCalled func(ctx context.Context, receiver string) (string, error)
}

// FundAccount -
func (stub *FundingHandlerStub) FundAccount(ctx context.Context, receiver string) (string, error) {
	if stub.FundAccountCalled != nil {
		return stub.FundAccountCalled(ctx, receiver)
	}

	return "", nil
}

// IsInterfaceNil -
func (stub *FundingHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
