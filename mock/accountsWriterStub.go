package mock

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// AccountsWriterStub -
type AccountsWriterStub struct {
	WriteAccountsCalled func(accounts *data.ShardAccounts) error
	FilePathCalled      func() string
}

// WriteAccounts -
func (stub *AccountsWriterStub) WriteAccounts(accounts *data.ShardAccounts) error {
	if stub.WriteAccountsCalled != nil {
		return stub.WriteAccountsCalled(accounts)
	}

	return nil
}

// FilePath -
func (stub *AccountsWriterStub) FilePath() string {
	if stub.FilePathCalled != nil {
		return stub.FilePathCalled()
	}

	return ""
}

// IsInterfaceNil -
func (stub *AccountsWriterStub) IsInterfaceNil() bool {
	return stub == nil
}
