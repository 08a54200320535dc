package interaction

import (
	"encoding/hex"
	"encoding/json"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	crypto "github.com/multiversx/mx-chain-crypto-go"
	"github.com/multiversx/mx-chain-crypto-go/signing"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519"
	"github.com/multiversx/mx-chain-crypto-go/signing/ed25519/singlesig"
)

type txSigner struct {
	keyGen crypto.KeyGenerator
	signer crypto.SingleSigner
}

// NewTxSigner creates an ed25519 transaction signer
func NewTxSigner() *txSigner {
	return &txSigner{
		keyGen: signing.NewKeyGenerator(ed25519.NewEd25519()),
		signer: &singlesig.Ed25519Signer{},
	}
}

// SignTransaction signs the JSON serialized transaction (signature field excluded) and sets the hex signature
func (ts *txSigner) SignTransaction(tx *transaction.FrontendTransaction, privateKey []byte) error {
	if tx == nil {
		return ErrNilTransaction
	}

	seed, err := seedFromPrivateKey(privateKey)
	if err != nil {
		return err
	}

	sk, err := ts.keyGen.PrivateKeyFromByteArray(seed)
	if err != nil {
		return err
	}

	tx.Signature = ""
	buff, err := json.Marshal(tx)
	if err != nil {
		return err
	}

	signature, err := ts.signer.Sign(sk, buff)
	if err != nil {
		return err
	}
	tx.Signature = hex.EncodeToString(signature)

	return nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (ts *txSigner) IsInterfaceNil() bool {
	return ts == nil
}
