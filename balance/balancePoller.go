package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-shard-wallets-go/common"
	"github.com/multiversx/mx-chain-shard-wallets-go/core"
)

var log = logger.GetOrCreate("balance")

// ArgBalancePoller is the argument used to create a balance poller
type ArgBalancePoller struct {
	Gateway    common.GatewayHandler
	Waiter     common.Waiter
	NumRetries uint32
	RetryDelay time.Duration
}

type balancePoller struct {
	gateway    common.GatewayHandler
	waiter     common.Waiter
	numRetries uint32
	retryDelay time.Duration
}

// NewBalancePoller creates a balance poller that retries failed queries a fixed number of times
func NewBalancePoller(arg ArgBalancePoller) (*balancePoller, error) {
	if check.IfNil(arg.Gateway) {
		return nil, ErrNilGateway
	}
	if check.IfNil(arg.Waiter) {
		return nil, ErrNilWaiter
	}
	if arg.NumRetries == 0 {
		return nil, fmt.Errorf("%w for NumRetries", ErrInvalidValue)
	}

	return &balancePoller{
		gateway:    arg.Gateway,
		waiter:     arg.Waiter,
		numRetries: arg.NumRetries,
		retryDelay: arg.RetryDelay,
	}, nil
}

// GetBalance returns the balance of the address in EGLD, formatted with 4 decimals. The query is tried
// at most NumRetries times, waiting RetryDelay between attempts
func (bp *balancePoller) GetBalance(ctx context.Context, address string) (string, error) {
	var lastErr error
	for attempt := uint32(1); attempt <= bp.numRetries; attempt++ {
		balance, err := bp.queryBalance(ctx, address)
		if err == nil {
			return balance, nil
		}

		lastErr = err
		log.Debug("balance query failed", "address", address, "attempt", attempt,
			"max attempts", bp.numRetries, "error", err)
		if attempt == bp.numRetries {
			break
		}

		err = bp.waiter.Wait(ctx, bp.retryDelay)
		if err != nil {
			lastErr = err
			break
		}
	}

	log.Error("balance query failed", "address", address, "error", lastErr)

	return "", core.NewKindError(core.BalanceQueryFailed, address, lastErr)
}

func (bp *balancePoller) queryBalance(ctx context.Context, address string) (string, error) {
	state, err := bp.gateway.GetAccountState(ctx, address)
	if err != nil {
		return "", err
	}
	if state == nil {
		return "", ErrNilAccountState
	}

	return core.FormatEGLD(state.Balance)
}

// IsInterfaceNil returns true if there is no value under the interface
func (bp *balancePoller) IsInterfaceNil() bool {
	return bp == nil
}
