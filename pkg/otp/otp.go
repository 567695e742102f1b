package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

// Generator produces one-time numeric codes for email verification and
// password reset.
type Generator interface {
	RandomCode(length int) (string, error)
}

// NumericGenerator draws codes uniformly from [10^(length-1), 10^length - 1],
// so a 6-digit code is always in [100000, 999999] and never carries a
// leading zero.
type NumericGenerator struct{}

func NewNumericGenerator() *NumericGenerator {
	return &NumericGenerator{}
}

func (g *NumericGenerator) RandomCode(length int) (string, error) {
	if length < 2 || length > 18 {
		return "", fmt.Errorf("unsupported code length %d", length)
	}

	low := int64(1)
	for i := 1; i < length; i++ {
		low *= 10
	}

	// span covers [low, 10*low-1], i.e. every length-digit number
	n, err := rand.Int(rand.Reader, big.NewInt(low*9))
	if err != nil {
		return "", fmt.Errorf("random draw failed: %w", err)
	}

	return strconv.FormatInt(low+n.Int64(), 10), nil
}
