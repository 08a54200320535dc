package core

import (
	"encoding/hex"
	"math/big"
)

// ConvertToPositiveBigInt will try to convert the provided string to its big int corresponding value. Only
// positive numbers are allowed
func ConvertToPositiveBigInt(value string) (*big.Int, error) {
	valueNumber, isNumber := big.NewInt(0).SetString(value, 10)
	if !isNumber {
		return nil, ErrStringIsNotANumber
	}

	if valueNumber.Cmp(big.NewInt(0)) < 0 {
		return nil, ErrNegativeValue
	}

	return valueNumber, nil
}

// FormatBalance converts a balance expressed in the smallest denomination into a decimal string
// with the provided number of display decimals
func FormatBalance(value string, denominationDecimals int, displayDecimals int) (string, error) {
	valueNumber, err := ConvertToPositiveBigInt(value)
	if err != nil {
		return "", err
	}

	denominator := big.NewInt(0).Exp(big.NewInt(10), big.NewInt(int64(denominationDecimals)), nil)
	ratio := big.NewRat(0, 1).SetFrac(valueNumber, denominator)

	return ratio.FloatString(displayDecimals), nil
}

// FormatEGLD converts a native token balance into its 4-decimals display form
func FormatEGLD(value string) (string, error) {
	return FormatBalance(value, EGLDDecimals, BalanceDisplayDecimals)
}

// EvenHex returns the hex representation of the provided number, left padded with a zero so the
// result always has an even length
func EvenHex(value *big.Int) string {
	if value == nil || value.Sign() == 0 {
		return "00"
	}

	return hex.EncodeToString(value.Bytes())
}
