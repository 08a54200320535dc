package mock

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// WalletFilesHandlerStub -
type WalletFilesHandlerStub struct {
	SaveKeystoreCalled func(privateKey []byte, password string, filePath string) error
	SavePemCalled      func(keyPair *data.KeyPair, filePath string) error
	LoadPemCalled      func(filePath string) ([]byte, error)
}

// SaveKeystore -
func (stub *WalletFilesHandlerStub) SaveKeystore(privateKey []byte, password string, filePath string) error {
	if stub.SaveKeystoreCalled != nil {
		return stub.SaveKeystoreCalled(privateKey, password, filePath)
	}

	return nil
}

// SavePem -
func (stub *WalletFilesHandlerStub) SavePem(keyPair *data.KeyPair, filePath string) error {
	if stub.SavePemCalled != nil {
		return stub.SavePemCalled(keyPair, filePath)
	}

	return nil
}

// LoadPem -
func (stub *WalletFilesHandlerStub) LoadPem(filePath string) ([]byte, error) {
	if stub.LoadPemCalled != nil {
		return stub.LoadPemCalled(filePath)
	}

	return make([]byte, 32), nil
}

// IsInterfaceNil -
func (stub *WalletFilesHandlerStub) IsInterfaceNil() bool {
	return stub == nil
}
