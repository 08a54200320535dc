package config

import "errors"

// ErrInvalidValue signals that an improper value was provided
var ErrInvalidValue = errors.New("invalid value")

// ErrEmptyValue signals that a required value is empty
var ErrEmptyValue = errors.New("empty value")
