package interaction

import (
	"context"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
	sdkData "github.com/multiversx/mx-sdk-go/data"
)

// ProxyHandler is the subset of the SDK proxy used by the gateway
type ProxyHandler interface {
	GetAccount(ctx context.Context, address sdkCore.AddressHandler) (*sdkData.Account, error)
	SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error)
	SendTransactions(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error)
	IsInterfaceNil() bool
}

type mnemonicWallet interface {
	GenerateMnemonic() (sdkData.Mnemonic, error)
	GetPrivateKeyFromMnemonic(mnemonic sdkData.Mnemonic, account, addressIndex uint32) []byte
}

type keystoreWallet interface {
	SavePrivateKeyToJsonFile(privateKey []byte, password string, filename string) error
	LoadPrivateKeyFromPemFile(filename string) ([]byte, error)
}
