package balance

import "errors"

// ErrNilGateway signals that a nil gateway was provided
var ErrNilGateway = errors.New("nil gateway")

// ErrNilWaiter signals that a nil waiter was provided
var ErrNilWaiter = errors.New("nil waiter")

// ErrInvalidValue signals that an improper value was provided
var ErrInvalidValue = errors.New("invalid value")

// ErrNilAccountState signals that the gateway returned no account state
var ErrNilAccountState = errors.New("nil account state")
