package generate

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// AccountGenerator produces one wallet candidate at a time and can remove the files of a discarded one
type AccountGenerator interface {
	GenerateAccount() (*data.Account, error)
	RemoveAccountFiles(account *data.Account) error
	IsInterfaceNil() bool
}
