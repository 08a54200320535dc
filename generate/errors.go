package generate

import "errors"

// ErrNilKeyPairGenerator signals that a nil key pair generator was provided
var ErrNilKeyPairGenerator = errors.New("nil key pair generator")

// ErrNilShardCoordinator signals that a nil shard coordinator was provided
var ErrNilShardCoordinator = errors.New("nil shard coordinator")

// ErrNilWalletFilesHandler signals that a nil wallet files handler was provided
var ErrNilWalletFilesHandler = errors.New("nil wallet files handler")

// ErrNilAccountGenerator signals that a nil account generator was provided
var ErrNilAccountGenerator = errors.New("nil account generator")

// ErrNilAccount signals that a nil account was provided
var ErrNilAccount = errors.New("nil account")

// ErrInvalidValue signals that an improper value was provided
var ErrInvalidValue = errors.New("invalid value")

// ErrEmptyValue signals that a required value is empty
var ErrEmptyValue = errors.New("empty value")

// ErrUnreachableQuota signals that the per-shard quota could not be met within the allowed number of attempts
var ErrUnreachableQuota = errors.New("unreachable shard quota")
