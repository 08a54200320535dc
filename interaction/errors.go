package interaction

import "errors"

// ErrNilPubKeyConverter signals that a nil pub key converter was provided
var ErrNilPubKeyConverter = errors.New("nil pub key converter")

// ErrNilProxy signals that a nil proxy was provided
var ErrNilProxy = errors.New("nil proxy")

// ErrNilTransaction signals that a nil transaction was provided
var ErrNilTransaction = errors.New("nil transaction")

// ErrNilKeyPair signals that a nil key pair was provided
var ErrNilKeyPair = errors.New("nil key pair")

// ErrInvalidPrivateKey signals that the provided private key has an unexpected length
var ErrInvalidPrivateKey = errors.New("invalid private key")

// ErrInvalidPemFile signals that the PEM file does not hold a valid key block
var ErrInvalidPemFile = errors.New("invalid PEM file")
