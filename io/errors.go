package io

import "errors"

// ErrNilAccounts signals that nil accounts were provided
var ErrNilAccounts = errors.New("nil accounts")

// ErrEmptyValue signals that a required value is empty
var ErrEmptyValue = errors.New("empty value")

// ErrMissingWalletsDirectory signals that the wallets directory does not exist
var ErrMissingWalletsDirectory = errors.New("missing wallets directory")

// ErrNotADirectory signals that the wallets path exists but is not a directory
var ErrNotADirectory = errors.New("not a directory")

// ErrMissingAccountsFile signals that the accounts file is not present in the wallets directory
var ErrMissingAccountsFile = errors.New("missing accounts file")

// ErrMissingPemFile signals that a PEM file referenced by the accounts file does not exist
var ErrMissingPemFile = errors.New("missing PEM file")
