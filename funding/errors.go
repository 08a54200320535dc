package funding

import "errors"

// ErrNilGateway signals that a nil gateway was provided
var ErrNilGateway = errors.New("nil gateway")

// ErrNilTxSigner signals that a nil transaction signer was provided
var ErrNilTxSigner = errors.New("nil transaction signer")

// ErrNilKeyPair signals that a nil funding key pair was provided
var ErrNilKeyPair = errors.New("nil funding key pair")

// ErrEmptyValue signals that a required value is empty
var ErrEmptyValue = errors.New("empty value")

// ErrInvalidValue signals that an improper value was provided
var ErrInvalidValue = errors.New("invalid value")

// ErrNilAccountState signals that the gateway returned no account state
var ErrNilAccountState = errors.New("nil account state")
