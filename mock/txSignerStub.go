package mock

import "github.com/multiversx/mx-chain-core-go/data/transaction"

// TxSignerStub -
type TxSignerStub struct {
	SignTransactionCalled func(tx *transaction.FrontendTransaction, privateKey []byte) error
}

// SignTransaction -
func (stub *TxSignerStub) SignTransaction(tx *transaction.FrontendTransaction, privateKey []byte) error {
	if stub.SignTransactionCalled != nil {
		return stub.SignTransactionCalled(tx, privateKey)
	}

	tx.Signature = "signature"

	return nil
}

// IsInterfaceNil -
func (stub *TxSignerStub) IsInterfaceNil() bool {
	return stub == nil
}
