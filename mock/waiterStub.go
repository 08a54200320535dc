package mock

import (
	"context"
	"sync"
	"time"
)

// WaiterStub -
type WaiterStub struct {
	WaitCalled func(ctx context.Context, duration time.Duration) error

	mut       sync.Mutex
	durations []time.Duration
}

// Wait -
func (stub *WaiterStub) Wait(ctx context.Context, duration time.Duration) error {
	stub.mut.Lock()
	stub.durations = append(stub.durations, duration)
	stub.mut.Unlock()

	if stub.WaitCalled != nil {
		return stub.WaitCalled(ctx, duration)
	}

	return nil
}

// Durations returns all the durations the stub was asked to wait, in call order
func (stub *WaiterStub) Durations() []time.Duration {
	stub.mut.Lock()
	defer stub.mut.Unlock()

	durations := make([]time.Duration, len(stub.durations))
	copy(durations, stub.durations)

	return durations
}

// IsInterfaceNil -
func (stub *WaiterStub) IsInterfaceNil() bool {
	return stub == nil
}
