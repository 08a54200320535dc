package issuance

import "errors"

// ErrNilGateway signals that a nil gateway was provided
var ErrNilGateway = errors.New("nil gateway")

// ErrNilTxSigner signals that a nil transaction signer was provided
var ErrNilTxSigner = errors.New("nil transaction signer")

// ErrNilKeyPairGenerator signals that a nil key pair generator was provided
var ErrNilKeyPairGenerator = errors.New("nil key pair generator")

// ErrNilWalletFilesHandler signals that a nil wallet files handler was provided
var ErrNilWalletFilesHandler = errors.New("nil wallet files handler")

// ErrNilWaiter signals that a nil waiter was provided
var ErrNilWaiter = errors.New("nil waiter")

// ErrNilAccount signals that a nil account was provided
var ErrNilAccount = errors.New("nil account")

// ErrNilAccountState signals that the gateway returned no account state
var ErrNilAccountState = errors.New("nil account state")

// ErrEmptyValue signals that a required value is empty
var ErrEmptyValue = errors.New("empty value")

// ErrInvalidValue signals that an improper value was provided
var ErrInvalidValue = errors.New("invalid value")
