package mock

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// AccountsCheckerStub -
type AccountsCheckerStub struct {
	CheckShardAccountsCalled func(accounts *data.ShardAccounts) error
}

// CheckShardAccounts -
func (stub *AccountsCheckerStub) CheckShardAccounts(accounts *data.ShardAccounts) error {
	if stub.CheckShardAccountsCalled != nil {
		return stub.CheckShardAccountsCalled(accounts)
	}

	return nil
}

// IsInterfaceNil -
func (stub *AccountsCheckerStub) IsInterfaceNil() bool {
	return stub == nil
}
