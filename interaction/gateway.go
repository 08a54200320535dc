package interaction

import (
	"context"
	"net/http"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/multiversx/mx-sdk-go/blockchain"
	sdkCore "github.com/multiversx/mx-sdk-go/core"
	sdkData "github.com/multiversx/mx-sdk-go/data"
)

const httpClientTimeout = time.Minute
const proxyCacheExpiration = time.Minute

type gateway struct {
	proxy ProxyHandler
}

// CreateProxy creates the SDK proxy towards the provided gateway URL
func CreateProxy(proxyURL string) (ProxyHandler, error) {
	args := blockchain.ArgsProxy{
		ProxyURL:            proxyURL,
		Client:              &http.Client{Timeout: httpClientTimeout},
		SameScState:         false,
		ShouldBeSynced:      false,
		FinalityCheck:       false,
		AllowedDeltaToFinal: 0,
		CacheExpirationTime: proxyCacheExpiration,
		EntityType:          sdkCore.Proxy,
	}

	proxy, err := blockchain.NewProxy(args)
	if err != nil {
		return nil, err
	}

	return proxy, nil
}

// NewGateway creates a gateway working with bech32 addresses on top of the provided proxy
func NewGateway(proxy ProxyHandler) (*gateway, error) {
	if check.IfNil(proxy) {
		return nil, ErrNilProxy
	}

	return &gateway{
		proxy: proxy,
	}, nil
}

// GetAccountState fetches the nonce and the balance of the provided address
func (gw *gateway) GetAccountState(ctx context.Context, address string) (*data.AccountState, error) {
	addressHandler, err := sdkData.NewAddressFromBech32String(address)
	if err != nil {
		return nil, err
	}

	account, err := gw.proxy.GetAccount(ctx, addressHandler)
	if err != nil {
		return nil, err
	}

	return &data.AccountState{
		Address: address,
		Nonce:   account.Nonce,
		Balance: account.Balance,
	}, nil
}

// SendTransaction submits one transaction and returns its hash
func (gw *gateway) SendTransaction(ctx context.Context, tx *transaction.FrontendTransaction) (string, error) {
	if tx == nil {
		return "", ErrNilTransaction
	}

	return gw.proxy.SendTransaction(ctx, tx)
}

// SendTransactions submits a set of transactions in one request and returns their hashes
func (gw *gateway) SendTransactions(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
	for _, tx := range txs {
		if tx == nil {
			return nil, ErrNilTransaction
		}
	}

	return gw.proxy.SendTransactions(ctx, txs)
}

// IsInterfaceNil returns true if there is no value under the interface
func (gw *gateway) IsInterfaceNil() bool {
	return gw == nil
}
