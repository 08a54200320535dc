package mock

import "github.com/multiversx/mx-chain-shard-wallets-go/data"

// KeyPairGeneratorStub -
type KeyPairGeneratorStub struct {
	GenerateKeyPairCalled       func() (*data.KeyPair, error)
	KeyPairFromPrivateKeyCalled func(privateKey []byte) (*data.KeyPair, error)
}

// GenerateKeyPair -
func (stub *KeyPairGeneratorStub) GenerateKeyPair() (*data.KeyPair, error) {
	if stub.GenerateKeyPairCalled != nil {
		return stub.GenerateKeyPairCalled()
	}

	return &data.KeyPair{}, nil
}

// KeyPairFromPrivateKey -
func (stub *KeyPairGeneratorStub) KeyPairFromPrivateKey(privateKey []byte) (*data.KeyPair, error) {
	if stub.KeyPairFromPrivateKeyCalled != nil {
		return stub.KeyPairFromPrivateKeyCalled(privateKey)
	}

	return &data.KeyPair{PrivateKey: privateKey}, nil
}

// IsInterfaceNil -
func (stub *KeyPairGeneratorStub) IsInterfaceNil() bool {
	return stub == nil
}
