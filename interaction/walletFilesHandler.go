package interaction

import (
	"fmt"
	"path/filepath"

	"github.com/multiversx/mx-chain-shard-wallets-go/core"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/multiversx/mx-sdk-go/interactors"
)

type walletFilesHandler struct {
	wallet keystoreWallet
}

// NewWalletFilesHandler creates a handler able to write password protected keystores and PEM key exports
func NewWalletFilesHandler() *walletFilesHandler {
	return &walletFilesHandler{
		wallet: interactors.NewWallet(),
	}
}

// SaveKeystore writes the private key in a password protected JSON keystore file
func (wfh *walletFilesHandler) SaveKeystore(privateKey []byte, password string, filePath string) error {
	return wfh.wallet.SavePrivateKeyToJsonFile(privateKey, password, filePath)
}

// SavePem writes the key pair in a PEM file labeled with the address
func (wfh *walletFilesHandler) SavePem(keyPair *data.KeyPair, filePath string) error {
	if keyPair == nil {
		return ErrNilKeyPair
	}

	fh, err := core.NewFileHandler(filepath.Dir(filePath), filepath.Base(filePath))
	if err != nil {
		return err
	}
	defer fh.Close()

	skBytes := make([]byte, 0, len(keyPair.PrivateKey)+len(keyPair.PublicKey))
	skBytes = append(skBytes, keyPair.PrivateKey...)
	skBytes = append(skBytes, keyPair.PublicKey...)

	return fh.SaveSkToPemFile(keyPair.Address, skBytes)
}

// LoadPem reads the private key seed from a PEM file
func (wfh *walletFilesHandler) LoadPem(filePath string) ([]byte, error) {
	skBytes, err := wfh.wallet.LoadPrivateKeyFromPemFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s, %v", ErrInvalidPemFile, filePath, err)
	}

	return seedFromPrivateKey(skBytes)
}

// IsInterfaceNil returns true if there is no value under the interface
func (wfh *walletFilesHandler) IsInterfaceNil() bool {
	return wfh == nil
}
