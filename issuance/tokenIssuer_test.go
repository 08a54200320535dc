package issuance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/config"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/multiversx/mx-chain-shard-wallets-go/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "erd1ulhw20j7jvgfgak5p05kv667k5k9f320sgef5ayxkt9784ql0zssrzyhjp"

func createKeyPairGeneratorStub() *mock.KeyPairGeneratorStub {
	return &mock.KeyPairGeneratorStub{
		KeyPairFromPrivateKeyCalled: func(privateKey []byte) (*data.KeyPair, error) {
			return &data.KeyPair{
				PrivateKey: privateKey,
				Address:    string(privateKey),
			}, nil
		},
	}
}

func createMockArgTokenIssuer() ArgTokenIssuer {
	return ArgTokenIssuer{
		Gateway:          &mock.GatewayStub{},
		TxSigner:         &mock.TxSignerStub{},
		KeyPairGenerator: createKeyPairGeneratorStub(),
		WalletFilesHandler: &mock.WalletFilesHandlerStub{
			LoadPemCalled: func(filePath string) ([]byte, error) {
				return []byte(strings.TrimSuffix(filePath, ".pem")), nil
			},
		},
		Waiter:  &mock.WaiterStub{},
		ChainID: "D",
		Config:  config.DefaultIssuanceConfig(),
	}
}

func createTransactions(num int) []*transaction.FrontendTransaction {
	txs := make([]*transaction.FrontendTransaction, 0, num)
	for i := 0; i < num; i++ {
		txs = append(txs, &transaction.FrontendTransaction{Nonce: uint64(i)})
	}

	return txs
}

func TestNewTokenIssuer(t *testing.T) {
	t.Parallel()

	t.Run("nil gateway should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Gateway = nil
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.Equal(t, ErrNilGateway, err)
	})
	t.Run("nil tx signer should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.TxSigner = nil
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.Equal(t, ErrNilTxSigner, err)
	})
	t.Run("nil key pair generator should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.KeyPairGenerator = nil
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.Equal(t, ErrNilKeyPairGenerator, err)
	})
	t.Run("nil wallet files handler should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.WalletFilesHandler = nil
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.Equal(t, ErrNilWalletFilesHandler, err)
	})
	t.Run("nil waiter should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Waiter = nil
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.Equal(t, ErrNilWaiter, err)
	})
	t.Run("empty chain ID should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.ChainID = ""
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.True(t, errors.Is(err, ErrEmptyValue))
	})
	t.Run("invalid config should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Config.Pacing.BatchSize = 0
		ti, err := NewTokenIssuer(arg)
		assert.True(t, check.IfNil(ti))
		assert.True(t, errors.Is(err, config.ErrInvalidValue))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		ti, err := NewTokenIssuer(createMockArgTokenIssuer())
		assert.False(t, check.IfNil(ti))
		assert.Nil(t, err)
	})
}

func TestTokenIssuer_PrepareAccount(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("expected error")

	t.Run("nil account should error", func(t *testing.T) {
		t.Parallel()

		ti, _ := NewTokenIssuer(createMockArgTokenIssuer())
		txs, err := ti.PrepareAccount(context.Background(), nil)
		assert.Nil(t, txs)
		assert.Equal(t, ErrNilAccount, err)
	})
	t.Run("pem load error should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.WalletFilesHandler = &mock.WalletFilesHandlerStub{
			LoadPemCalled: func(filePath string) ([]byte, error) {
				return nil, expectedErr
			},
		}
		ti, _ := NewTokenIssuer(arg)

		txs, err := ti.PrepareAccount(context.Background(), &data.IssuerAccount{Address: testAddress, PemFile: "a.pem"})
		assert.Nil(t, txs)
		assert.True(t, errors.Is(err, expectedErr))
	})
	t.Run("nonce fetch error should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Gateway = &mock.GatewayStub{
			GetAccountStateCalled: func(ctx context.Context, address string) (*data.AccountState, error) {
				return nil, expectedErr
			},
		}
		ti, _ := NewTokenIssuer(arg)

		txs, err := ti.PrepareAccount(context.Background(), &data.IssuerAccount{Address: testAddress, PemFile: testAddress + ".pem"})
		assert.Nil(t, txs)
		assert.True(t, errors.Is(err, expectedErr))
	})
	t.Run("signing error should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.TxSigner = &mock.TxSignerStub{
			SignTransactionCalled: func(tx *transaction.FrontendTransaction, privateKey []byte) error {
				return expectedErr
			},
		}
		ti, _ := NewTokenIssuer(arg)

		txs, err := ti.PrepareAccount(context.Background(), &data.IssuerAccount{Address: testAddress, PemFile: testAddress + ".pem"})
		assert.Nil(t, txs)
		assert.True(t, errors.Is(err, expectedErr))
	})
	t.Run("should prepare signed transactions with consecutive nonces", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Gateway = &mock.GatewayStub{
			GetAccountStateCalled: func(ctx context.Context, address string) (*data.AccountState, error) {
				assert.Equal(t, testAddress, address)
				return &data.AccountState{Address: address, Nonce: 10}, nil
			},
		}
		ti, _ := NewTokenIssuer(arg)

		txs, err := ti.PrepareAccount(context.Background(), &data.IssuerAccount{Address: testAddress, PemFile: testAddress + ".pem"})
		require.Nil(t, err)
		require.Len(t, txs, 3)
		for i, tx := range txs {
			assert.Equal(t, uint64(10+i), tx.Nonce)
			assert.Equal(t, testAddress, tx.Sender)
			assert.Equal(t, config.ESDTSystemSCAddress, tx.Receiver)
			assert.Equal(t, "50000000000000000", tx.Value)
			assert.Equal(t, uint64(60000000), tx.GasLimit)
			assert.Equal(t, uint64(1000000000), tx.GasPrice)
			assert.Equal(t, "D", tx.ChainID)
			assert.Equal(t, uint32(2), tx.Version)
			assert.Equal(t, "signature", tx.Signature)
		}

		// WinterTokenrzyhjp1 -> hex
		assert.True(t, strings.HasPrefix(string(txs[0].Data), "issue@57696e746572546f6b656e727a79686a7031@57494e544552@"))
		assert.True(t, strings.HasPrefix(string(txs[2].Data), "issue@57696e746572546f6b656e727a79686a7033@"))
	})
}

func TestTokenIssuer_SendBatches(t *testing.T) {
	t.Parallel()

	t.Run("7 transactions with batch size 5 should send 2 batches", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		batchSizes := make([]int, 0)
		arg.Gateway = &mock.GatewayStub{
			SendTransactionsCalled: func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
				batchSizes = append(batchSizes, len(txs))
				hashes := make([]string, len(txs))
				for i := range txs {
					hashes[i] = "hash"
				}
				return hashes, nil
			},
		}
		waiter := &mock.WaiterStub{}
		arg.Waiter = waiter
		ti, _ := NewTokenIssuer(arg)

		hashes, err := ti.SendBatches(context.Background(), createTransactions(7))
		require.Nil(t, err)
		assert.Len(t, hashes, 7)
		assert.Equal(t, []int{5, 2}, batchSizes)
		assert.Equal(t, []time.Duration{6 * time.Second, 6 * time.Second}, waiter.Durations())
	})
	t.Run("batches should keep the transaction order", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Config.Pacing.BatchSize = 2
		nonces := make([]uint64, 0)
		arg.Gateway = &mock.GatewayStub{
			SendTransactionsCalled: func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
				for _, tx := range txs {
					nonces = append(nonces, tx.Nonce)
				}
				return make([]string, len(txs)), nil
			},
		}
		ti, _ := NewTokenIssuer(arg)

		_, err := ti.SendBatches(context.Background(), createTransactions(5))
		require.Nil(t, err)
		assert.Equal(t, []uint64{0, 1, 2, 3, 4}, nonces)
	})
	t.Run("send error should stop and return the sent hashes", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		arg := createMockArgTokenIssuer()
		numCalls := 0
		arg.Gateway = &mock.GatewayStub{
			SendTransactionsCalled: func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
				numCalls++
				if numCalls == 2 {
					return nil, expectedErr
				}
				return make([]string, len(txs)), nil
			},
		}
		ti, _ := NewTokenIssuer(arg)

		hashes, err := ti.SendBatches(context.Background(), createTransactions(12))
		assert.True(t, errors.Is(err, expectedErr))
		assert.Len(t, hashes, 5)
		assert.Equal(t, 2, numCalls)
	})
	t.Run("empty list should not send", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.Gateway = &mock.GatewayStub{
			SendTransactionsCalled: func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
				assert.Fail(t, "should not have been called")
				return nil, nil
			},
		}
		ti, _ := NewTokenIssuer(arg)

		hashes, err := ti.SendBatches(context.Background(), nil)
		assert.Nil(t, err)
		assert.Empty(t, hashes)
	})
}

func TestTokenIssuer_Run(t *testing.T) {
	t.Parallel()

	t.Run("failing account should be isolated", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgTokenIssuer()
		arg.WalletFilesHandler = &mock.WalletFilesHandlerStub{
			LoadPemCalled: func(filePath string) ([]byte, error) {
				if filePath == "bad.pem" {
					return nil, errors.New("corrupted PEM")
				}
				return []byte(strings.TrimSuffix(filePath, ".pem")), nil
			},
		}
		sentBy := make([]string, 0)
		arg.Gateway = &mock.GatewayStub{
			SendTransactionsCalled: func(ctx context.Context, txs []*transaction.FrontendTransaction) ([]string, error) {
				sentBy = append(sentBy, txs[0].Sender)
				return make([]string, len(txs)), nil
			},
		}
		waiter := &mock.WaiterStub{}
		arg.Waiter = waiter
		ti, _ := NewTokenIssuer(arg)

		accounts := []*data.IssuerAccount{
			{Address: "erd1first", PemFile: "erd1first.pem"},
			{Address: "erd1bad", PemFile: "bad.pem"},
			{Address: "erd1third", PemFile: "erd1third.pem"},
		}
		result, err := ti.Run(context.Background(), accounts)
		require.Nil(t, err)
		assert.Equal(t, 3, result.NumAccounts)
		assert.Equal(t, 1, result.NumFailedAccounts)
		assert.Equal(t, 6, result.NumTransactions)
		assert.Len(t, result.TxHashes, 6)
		assert.Equal(t, []string{"erd1first", "erd1third"}, sentBy)
		expectedWaits := []time.Duration{6 * time.Second, 20 * time.Second, 6 * time.Second, 20 * time.Second}
		assert.Equal(t, expectedWaits, waiter.Durations())
	})
	t.Run("canceled context should stop", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		arg := createMockArgTokenIssuer()
		arg.Waiter = &mock.WaiterStub{
			WaitCalled: func(ctx context.Context, duration time.Duration) error {
				cancel()
				return ctx.Err()
			},
		}
		ti, _ := NewTokenIssuer(arg)

		accounts := []*data.IssuerAccount{
			{Address: "erd1first", PemFile: "erd1first.pem"},
			{Address: "erd1second", PemFile: "erd1second.pem"},
		}
		result, err := ti.Run(ctx, accounts)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, result.NumAccounts)
		assert.Equal(t, 0, result.NumFailedAccounts)
		assert.Equal(t, 3, result.NumTransactions)
	})
}
