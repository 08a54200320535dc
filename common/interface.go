package common

import (
	"context"
	"time"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

// KeyPairGenerator derives new key material and addresses
type KeyPairGenerator interface {
	GenerateKeyPair() (*data.KeyPair, error)
	KeyPairFromPrivateKey(privateKey []byte) (*data.KeyPair, error)
	IsInterfaceNil() bool
}

// ShardCoordinator computes the shard of an address
type ShardCoordinator interface {
	ComputeId(address []byte) uint32
	NumberOfShards() uint32
	IsInterfaceNil() bool
}

// WalletFilesHandler persists and loads wallet key material
type WalletFilesHandler interface {
	SaveKeystore(privateKey []byte, password string, filePath string) error
	SavePem(keyPair *data.KeyPair, filePath string) error
	LoadPem(filePath string) ([]byte, error)
	IsInterfaceNil() bool
}

// TxSigner signs transactions with a private key
type TxSigner interface {
	SignTransaction(tx *transaction.FrontendTransaction, privateKey []byte) error
	IsInterfaceNil() bool
}

// GatewayHandler is the network entry point used to read account state and submit transactions
type GatewayHandler interface {
	GetAccountState(ctx context.Context, address string) (*data.AccountState, error)
	SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error)
	SendTransactions(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error)
	IsInterfaceNil() bool
}

// Waiter blocks for fixed durations
type Waiter interface {
	Wait(ctx context.Context, duration time.Duration) error
	IsInterfaceNil() bool
}
