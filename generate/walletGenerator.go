package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
)

var log = logger.GetOrCreate("generate")

const defaultBalance = "0"

// ArgWalletGenerator is the argument used to create a wallet generator
type ArgWalletGenerator struct {
	KeyPairGenerator   common.KeyPairGenerator
	ShardCoordinator   common.ShardCoordinator
	WalletFilesHandler common.WalletFilesHandler
	OutputDirectory    string
	Password           string
}

type walletGenerator struct {
	keyPairGenerator   common.KeyPairGenerator
	shardCoordinator   common.ShardCoordinator
	walletFilesHandler common.WalletFilesHandler
	outputDirectory    string
	password           string
}

// NewWalletGenerator will create a new wallet generator. All shard directories are created
func NewWalletGenerator(arg ArgWalletGenerator) (*walletGenerator, error) {
	if check.IfNil(arg.KeyPairGenerator) {
		return nil, ErrNilKeyPairGenerator
	}
	if check.IfNil(arg.ShardCoordinator) {
		return nil, ErrNilShardCoordinator
	}
	if check.IfNil(arg.WalletFilesHandler) {
		return nil, ErrNilWalletFilesHandler
	}
	if len(arg.OutputDirectory) == 0 {
		return nil, fmt.Errorf("%w for OutputDirectory", ErrEmptyValue)
	}
	if len(arg.Password) == 0 {
		return nil, fmt.Errorf("%w for Password", ErrEmptyValue)
	}

	wg := &walletGenerator{
		keyPairGenerator:   arg.KeyPairGenerator,
		shardCoordinator:   arg.ShardCoordinator,
		walletFilesHandler: arg.WalletFilesHandler,
		outputDirectory:    arg.OutputDirectory,
		password:           arg.Password,
	}

	for shard := uint32(0); shard < arg.ShardCoordinator.NumberOfShards(); shard++ {
		err := os.MkdirAll(wg.shardDirectory(shard), os.ModePerm)
		if err != nil {
			return nil, err
		}
	}

	return wg, nil
}

// GenerateAccount derives a new key pair, computes its shard and writes the keystore and PEM files
// in the shard directory
func (wg *walletGenerator) GenerateAccount() (*data.Account, error) {
	account, err := wg.generateAccount()
	if err != nil {
		log.Error("failed to generate wallet", "error", err)
		return nil, core.NewKindError(core.GenerationFailed, "", err)
	}

	return account, nil
}

func (wg *walletGenerator) generateAccount() (*data.Account, error) {
	keyPair, err := wg.keyPairGenerator.GenerateKeyPair()
	if err != nil {
		return nil, err
	}

	shard := wg.shardCoordinator.ComputeId(keyPair.PublicKey)
	shardDir := wg.shardDirectory(shard)
	err = os.MkdirAll(shardDir, os.ModePerm)
	if err != nil {
		return nil, err
	}

	walletFile, pemFile := wg.freeFileNames(shardDir, keyPair.Address)
	account := &data.Account{
		Mnemonic:   keyPair.Mnemonic,
		Address:    keyPair.Address,
		Shard:      shard,
		WalletFile: walletFile,
		PemFile:    pemFile,
		Balance:    defaultBalance,
	}

	err = wg.walletFilesHandler.SaveKeystore(keyPair.PrivateKey, wg.password, walletFile)
	if err != nil {
		log.LogIfError(wg.RemoveAccountFiles(account))
		return nil, fmt.Errorf("%w while saving the keystore file", err)
	}

	err = wg.walletFilesHandler.SavePem(keyPair, pemFile)
	if err != nil {
		log.LogIfError(wg.RemoveAccountFiles(account))
		return nil, fmt.Errorf("%w while saving the PEM file", err)
	}

	return account, nil
}

// freeFileNames returns the keystore and PEM paths for the address. The 8 address characters used in
// the name are not unique so a counter is appended until neither file exists
func (wg *walletGenerator) freeFileNames(shardDir string, address string) (string, string) {
	prefix := address
	if len(prefix) > core.WalletNameAddressChars {
		prefix = prefix[:core.WalletNameAddressChars]
	}

	baseName := core.WalletFilePrefix + prefix
	for counter := 1; ; counter++ {
		walletFile := filepath.Join(shardDir, baseName+core.KeystoreFileExtension)
		pemFile := filepath.Join(shardDir, baseName+core.PemFileExtension)
		if !fileExists(walletFile) && !fileExists(pemFile) {
			return walletFile, pemFile
		}

		baseName = fmt.Sprintf("%s%s_%d", core.WalletFilePrefix, prefix, counter)
	}
}

// RemoveAccountFiles deletes the keystore and PEM files of the provided account, if they exist
func (wg *walletGenerator) RemoveAccountFiles(account *data.Account) error {
	if account == nil {
		return ErrNilAccount
	}

	for _, filePath := range []string{account.WalletFile, account.PemFile} {
		if len(filePath) == 0 {
			continue
		}

		err := os.Remove(filePath)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

func (wg *walletGenerator) shardDirectory(shard uint32) string {
	return filepath.Join(wg.outputDirectory, data.ShardLabel(shard))
}

// IsInterfaceNil returns true if there is no value under the interface
func (wg *walletGenerator) IsInterfaceNil() bool {
	return wg == nil
}

func fileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
