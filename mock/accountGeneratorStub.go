package mock

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// AccountGeneratorStub -
type AccountGeneratorStub struct {
	GenerateAccountCalled    func() (*data.Account, error)
	RemoveAccountFilesCalled func(account *data.Account) error
}

// GenerateAccount -
func (stub *AccountGeneratorStub) GenerateAccount() (*data.Account, error) {
	if stub.GenerateAccountCalled != nil {
		return stub.GenerateAccountCalled()
	}

	return &data.Account{}, nil
}

// RemoveAccountFiles -
func (stub *AccountGeneratorStub) RemoveAccountFiles(account *data.Account) error {
	if stub.RemoveAccountFilesCalled != nil {
		return stub.RemoveAccountFilesCalled(account)
	}

	return nil
}

// IsInterfaceNil -
func (stub *AccountGeneratorStub) IsInterfaceNil() bool {
	return stub == nil
}
