package generate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/core/pubkeyConverter"
	"github.com/multiversx/mx-chain-go/sharding"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/multiversx/mx-chain-shard-wallets-go/interaction"
	"github.com/multiversx/mx-chain-shard-wallets-go/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "password"

func createMockArgWalletGenerator(t *testing.T) ArgWalletGenerator {
	counter := 0
	return ArgWalletGenerator{
		KeyPairGenerator: &mock.KeyPairGeneratorStub{
			GenerateKeyPairCalled: func() (*data.KeyPair, error) {
				counter++
				return &data.KeyPair{
					Mnemonic:   []string{"word"},
					PrivateKey: []byte("private key"),
					PublicKey:  []byte(fmt.Sprintf("public key %d", counter)),
					Address:    fmt.Sprintf("erd1%020d", counter),
				}, nil
			},
		},
		ShardCoordinator: &mock.ShardCoordinatorStub{
			NumberOfShardsCalled: func() uint32 {
				return 3
			},
		},
		WalletFilesHandler: &mock.WalletFilesHandlerStub{
			SaveKeystoreCalled: func(privateKey []byte, password string, filePath string) error {
				return os.WriteFile(filePath, []byte("keystore"), 0600)
			},
			SavePemCalled: func(keyPair *data.KeyPair, filePath string) error {
				return os.WriteFile(filePath, []byte("pem"), 0600)
			},
		},
		OutputDirectory: t.TempDir(),
		Password:        testPassword,
	}
}

func TestNewWalletGenerator(t *testing.T) {
	t.Parallel()

	t.Run("nil key pair generator should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		arg.KeyPairGenerator = nil
		wg, err := NewWalletGenerator(arg)
		assert.True(t, check.IfNil(wg))
		assert.Equal(t, ErrNilKeyPairGenerator, err)
	})
	t.Run("nil shard coordinator should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		arg.ShardCoordinator = nil
		wg, err := NewWalletGenerator(arg)
		assert.True(t, check.IfNil(wg))
		assert.Equal(t, ErrNilShardCoordinator, err)
	})
	t.Run("nil wallet files handler should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		arg.WalletFilesHandler = nil
		wg, err := NewWalletGenerator(arg)
		assert.True(t, check.IfNil(wg))
		assert.Equal(t, ErrNilWalletFilesHandler, err)
	})
	t.Run("empty output directory should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		arg.OutputDirectory = ""
		wg, err := NewWalletGenerator(arg)
		assert.True(t, check.IfNil(wg))
		assert.True(t, errors.Is(err, ErrEmptyValue))
		assert.True(t, strings.Contains(err.Error(), "OutputDirectory"))
	})
	t.Run("empty password should error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		arg.Password = ""
		wg, err := NewWalletGenerator(arg)
		assert.True(t, check.IfNil(wg))
		assert.True(t, errors.Is(err, ErrEmptyValue))
		assert.True(t, strings.Contains(err.Error(), "Password"))
	})
	t.Run("should work and create the shard directories", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		wg, err := NewWalletGenerator(arg)
		assert.False(t, check.IfNil(wg))
		assert.Nil(t, err)

		for _, label := range []string{"shard_0", "shard_1", "shard_2"} {
			info, errStat := os.Stat(filepath.Join(arg.OutputDirectory, label))
			require.Nil(t, errStat)
			assert.True(t, info.IsDir())
		}
	})
}

func TestWalletGenerator_GenerateAccount(t *testing.T) {
	t.Parallel()

	t.Run("key pair generator errors should return generation failed", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		arg := createMockArgWalletGenerator(t)
		arg.KeyPairGenerator = &mock.KeyPairGeneratorStub{
			GenerateKeyPairCalled: func() (*data.KeyPair, error) {
				return nil, expectedErr
			},
		}
		wg, _ := NewWalletGenerator(arg)

		account, err := wg.GenerateAccount()
		assert.Nil(t, account)
		assert.True(t, errors.Is(err, expectedErr))
		assert.Equal(t, core.GenerationFailed, core.KindOf(err))
	})
	t.Run("pem save errors should remove the keystore file", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("expected error")
		arg := createMockArgWalletGenerator(t)
		savedKeystore := ""
		arg.WalletFilesHandler = &mock.WalletFilesHandlerStub{
			SaveKeystoreCalled: func(privateKey []byte, password string, filePath string) error {
				savedKeystore = filePath
				return os.WriteFile(filePath, []byte("keystore"), 0600)
			},
			SavePemCalled: func(keyPair *data.KeyPair, filePath string) error {
				return expectedErr
			},
		}
		wg, _ := NewWalletGenerator(arg)

		account, err := wg.GenerateAccount()
		assert.Nil(t, account)
		assert.True(t, errors.Is(err, expectedErr))
		assert.Equal(t, core.GenerationFailed, core.KindOf(err))
		require.NotEmpty(t, savedKeystore)
		_, errStat := os.Stat(savedKeystore)
		assert.True(t, os.IsNotExist(errStat))
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		arg.ShardCoordinator = &mock.ShardCoordinatorStub{
			ComputeIdCalled: func(address []byte) uint32 {
				return 2
			},
			NumberOfShardsCalled: func() uint32 {
				return 3
			},
		}
		var receivedPassword string
		arg.WalletFilesHandler = &mock.WalletFilesHandlerStub{
			SaveKeystoreCalled: func(privateKey []byte, password string, filePath string) error {
				receivedPassword = password
				return os.WriteFile(filePath, []byte("keystore"), 0600)
			},
			SavePemCalled: func(keyPair *data.KeyPair, filePath string) error {
				return os.WriteFile(filePath, []byte("pem"), 0600)
			},
		}
		wg, _ := NewWalletGenerator(arg)

		account, err := wg.GenerateAccount()
		require.Nil(t, err)
		assert.Equal(t, testPassword, receivedPassword)
		assert.Equal(t, uint32(2), account.Shard)
		assert.Equal(t, "0", account.Balance)
		assert.Equal(t, []string{"word"}, account.Mnemonic)

		shardDir := filepath.Join(arg.OutputDirectory, "shard_2")
		assert.Equal(t, filepath.Join(shardDir, "wallet_erd10000.json"), account.WalletFile)
		assert.Equal(t, filepath.Join(shardDir, "wallet_erd10000.pem"), account.PemFile)
		assert.FileExists(t, account.WalletFile)
		assert.FileExists(t, account.PemFile)
	})
	t.Run("name collisions should append a counter", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		wg, _ := NewWalletGenerator(arg)

		first, err := wg.GenerateAccount()
		require.Nil(t, err)
		second, err := wg.GenerateAccount()
		require.Nil(t, err)
		third, err := wg.GenerateAccount()
		require.Nil(t, err)

		assert.Equal(t, "wallet_erd10000.json", filepath.Base(first.WalletFile))
		assert.Equal(t, "wallet_erd10000_1.json", filepath.Base(second.WalletFile))
		assert.Equal(t, "wallet_erd10000_2.pem", filepath.Base(third.PemFile))
	})
}

func TestWalletGenerator_RemoveAccountFiles(t *testing.T) {
	t.Parallel()

	t.Run("nil account should error", func(t *testing.T) {
		t.Parallel()

		wg, _ := NewWalletGenerator(createMockArgWalletGenerator(t))
		assert.Equal(t, ErrNilAccount, wg.RemoveAccountFiles(nil))
	})
	t.Run("missing files should not error", func(t *testing.T) {
		t.Parallel()

		arg := createMockArgWalletGenerator(t)
		wg, _ := NewWalletGenerator(arg)
		account := &data.Account{
			WalletFile: filepath.Join(arg.OutputDirectory, "missing.json"),
			PemFile:    filepath.Join(arg.OutputDirectory, "missing.pem"),
		}
		assert.Nil(t, wg.RemoveAccountFiles(account))
	})
	t.Run("should remove both files", func(t *testing.T) {
		t.Parallel()

		wg, _ := NewWalletGenerator(createMockArgWalletGenerator(t))
		account, err := wg.GenerateAccount()
		require.Nil(t, err)

		assert.Nil(t, wg.RemoveAccountFiles(account))
		assert.NoFileExists(t, account.WalletFile)
		assert.NoFileExists(t, account.PemFile)
	})
}

func TestWalletGenerator_WithRealComponents(t *testing.T) {
	t.Parallel()

	converter, err := pubkeyConverter.NewBech32PubkeyConverter(core.AddressLen, core.AddressHRP)
	require.Nil(t, err)
	keyPairGenerator, err := interaction.NewKeyPairGenerator(converter)
	require.Nil(t, err)
	shardCoordinator, err := sharding.NewMultiShardCoordinator(3, 0)
	require.Nil(t, err)

	outputDir := t.TempDir()
	wg, err := NewWalletGenerator(ArgWalletGenerator{
		KeyPairGenerator:   keyPairGenerator,
		ShardCoordinator:   shardCoordinator,
		WalletFilesHandler: interaction.NewWalletFilesHandler(),
		OutputDirectory:    outputDir,
		Password:           testPassword,
	})
	require.Nil(t, err)

	account, err := wg.GenerateAccount()
	require.Nil(t, err)

	pubKey, err := converter.Decode(account.Address)
	require.Nil(t, err)
	assert.Equal(t, shardCoordinator.ComputeId(pubKey), account.Shard)
	assert.Equal(t, filepath.Join(outputDir, data.ShardLabel(account.Shard)), filepath.Dir(account.PemFile))
	assert.FileExists(t, account.WalletFile)
	assert.FileExists(t, account.PemFile)
	assert.Len(t, account.Mnemonic, 24)
}
