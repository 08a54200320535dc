package check

import "errors"

// ErrNilShardCoordinator signals that a nil shard coordinator was provided
var ErrNilShardCoordinator = errors.New("nil shard coordinator")

// ErrNilPubKeyConverter signals that a nil public key converter was provided
var ErrNilPubKeyConverter = errors.New("nil public key converter")

// ErrNilShardAccounts signals that a nil shard accounts container was provided
var ErrNilShardAccounts = errors.New("nil shard accounts")

// ErrZeroValue signals that a zero value was provided
var ErrZeroValue = errors.New("zero value")

// ErrQuotaMismatch signals that a shard does not hold the expected number of accounts
var ErrQuotaMismatch = errors.New("shard quota mismatch")

// ErrUnexpectedShard signals that an account list was found for a shard outside the configured range
var ErrUnexpectedShard = errors.New("unexpected shard")

// ErrShardMismatch signals that the recorded shard of an account differs from the shard of its address
var ErrShardMismatch = errors.New("shard mismatch")

// ErrDuplicatedAddress signals that the same address was found more than once
var ErrDuplicatedAddress = errors.New("duplicated address")

// ErrMissingFile signals that a wallet file recorded for an account does not exist
var ErrMissingFile = errors.New("missing file")
