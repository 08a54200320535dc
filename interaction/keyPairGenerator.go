package interaction

import (
	"fmt"
	"strings"

	mxCore "github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-shard-wallets-go/data"
	"github.com/multiversx/mx-sdk-go/interactors"
)

const seedLen = 32

type keyPairGenerator struct {
	wallet          mnemonicWallet
	keyGen          crypto.KeyGenerator
	pubKeyConverter mxCore.PubkeyConverter
}

// NewKeyPairGenerator creates a key pair generator deriving ed25519 keys from fresh mnemonics
func NewKeyPairGenerator(pubKeyConverter mxCore.PubkeyConverter) (*keyPairGenerator, error) {
	if check.IfNil(pubKeyConverter) {
		return nil, ErrNilPubKeyConverter
	}

	return &keyPairGenerator{
		wallet:          interactors.NewWallet(),
		keyGen:          signing.NewKeyGenerator(ed25519.NewEd25519()),
		pubKeyConverter: pubKeyConverter,
	}, nil
}

// GenerateKeyPair derives the first account key of a freshly generated mnemonic
func (kpg *keyPairGenerator) GenerateKeyPair() (*data.KeyPair, error) {
	mnemonic, err := kpg.wallet.GenerateMnemonic()
	if err != nil {
		return nil, err
	}

	privateKey := kpg.wallet.GetPrivateKeyFromMnemonic(mnemonic, 0, 0)
	keyPair, err := kpg.KeyPairFromPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	keyPair.Mnemonic = strings.Fields(string(mnemonic))

	return keyPair, nil
}

// KeyPairFromPrivateKey computes the public key and the address of the provided private key.
// Both the 32 bytes seed and the 64 bytes seed+public key forms are accepted
func (kpg *keyPairGenerator) KeyPairFromPrivateKey(privateKey []byte) (*data.KeyPair, error) {
	seed, err := seedFromPrivateKey(privateKey)
	if err != nil {
		return nil, err
	}

	sk, err := kpg.keyGen.PrivateKeyFromByteArray(seed)
	if err != nil {
		return nil, err
	}

	pkBytes, err := sk.GeneratePublic().ToByteArray()
	if err != nil {
		return nil, err
	}

	address, err := kpg.pubKeyConverter.Encode(pkBytes)
	if err != nil {
		return nil, err
	}

	return &data.KeyPair{
		PrivateKey: seed,
		PublicKey:  pkBytes,
		Address:    address,
	}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (kpg *keyPairGenerator) IsInterfaceNil() bool {
	return kpg == nil
}

func seedFromPrivateKey(privateKey []byte) ([]byte, error) {
	switch len(privateKey) {
	case seedLen, 2 * seedLen:
		seed := make([]byte, seedLen)
		copy(seed, privateKey[:seedLen])
		return seed, nil
	default:
		return nil, fmt.Errorf("%w, length %d", ErrInvalidPrivateKey, len(privateKey))
	}
}
