package mock

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// ShardAccountsGeneratorStub -
type ShardAccountsGeneratorStub struct {
	GenerateAccountsCalled func() (*data.GenerationResult, error)
}

// GenerateAccounts -
func (stub *ShardAccountsGeneratorStub) GenerateAccounts() (*data.GenerationResult, error) {
	if stub.GenerateAccountsCalled != nil {
		return stub.GenerateAccountsCalled()
	}

	return &data.GenerationResult{Accounts: data.NewShardAccounts(1)}, nil
}

// IsInterfaceNil -
func (stub *ShardAccountsGeneratorStub) IsInterfaceNil() bool {
	return stub == nil
}
