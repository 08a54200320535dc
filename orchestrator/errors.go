package orchestrator

import "errors"

// ErrNilAccountsGenerator signals that a nil accounts generator was provided
var ErrNilAccountsGenerator = errors.New("nil accounts generator")

// ErrNilAccountsChecker signals that a nil accounts checker was provided
var ErrNilAccountsChecker = errors.New("nil accounts checker")

// ErrNilFundingHandler signals that a nil funding handler was provided
var ErrNilFundingHandler = errors.New("nil funding handler")

// ErrNilBalanceHandler signals that a nil balance handler was provided
var ErrNilBalanceHandler = errors.New("nil balance handler")

// ErrNilAccountsWriter signals that a nil accounts writer was provided
var ErrNilAccountsWriter = errors.New("nil accounts writer")

// ErrNilWaiter signals that a nil waiter was provided
var ErrNilWaiter = errors.New("nil waiter")

// ErrAccountsNotGenerated signals that a phase requiring accounts was started before the generation phase
var ErrAccountsNotGenerated = errors.New("accounts not generated")
