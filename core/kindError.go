package core

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure domain of an operation error
type ErrorKind uint8

const (
	// UnknownKind is returned by KindOf for errors that do not carry a kind
	UnknownKind ErrorKind = iota
	// GenerationFailed marks key derivation or wallet file failures
	GenerationFailed
	// FundingFailed marks signing, nonce or submission failures on the funding path
	FundingFailed
	// BalanceQueryFailed marks gateway read failures after all retries were used
	BalanceQueryFailed
)

// String returns the human readable form of the kind
func (kind ErrorKind) String() string {
	switch kind {
	case GenerationFailed:
		return "generation failed"
	case FundingFailed:
		return "funding failed"
	case BalanceQueryFailed:
		return "balance query failed"
	default:
		return "unknown error kind"
	}
}

// KindError is an error tagged with its failure domain and the originating cause
type KindError struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

// NewKindError creates a new tagged error. Subject is usually the address the operation was about
func NewKindError(kind ErrorKind, subject string, err error) *KindError {
	return &KindError{
		Kind:    kind,
		Subject: subject,
		Err:     err,
	}
}

// Error returns the error message including the cause
func (ke *KindError) Error() string {
	if len(ke.Subject) == 0 {
		return fmt.Sprintf("%s: %v", ke.Kind, ke.Err)
	}

	return fmt.Sprintf("%s for %s: %v", ke.Kind, ke.Subject, ke.Err)
}

// Unwrap returns the originating cause
func (ke *KindError) Unwrap() error {
	return ke.Err
}

// KindOf returns the kind of the first KindError found in the error chain
func KindOf(err error) ErrorKind {
	var kindErr *KindError
	if errors.As(err, &kindErr) {
		return kindErr.Kind
	}

	return UnknownKind
}
