package mock

// ShardCoordinatorStub -
type ShardCoordinatorStub struct {
	ComputeIdCalled      func(address []byte) uint32
	NumberOfShardsCalled func() uint32
}

// ComputeId -
func (stub *ShardCoordinatorStub) ComputeId(address []byte) uint32 {
	if stub.ComputeIdCalled != nil {
		return stub.ComputeIdCalled(address)
	}

	return 0
}

// NumberOfShards -
func (stub *ShardCoordinatorStub) NumberOfShards() uint32 {
	if stub.NumberOfShardsCalled != nil {
		return stub.NumberOfShardsCalled()
	}

	return 1
}

// IsInterfaceNil -
func (stub *ShardCoordinatorStub) IsInterfaceNil() bool {
	return stub == nil
}
