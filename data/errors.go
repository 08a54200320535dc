package data

import "errors"

// ErrInvalidShardLabel signals that a shard label could not be parsed
var ErrInvalidShardLabel = errors.New("invalid shard label")
