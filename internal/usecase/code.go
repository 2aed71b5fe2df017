package usecase

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	// OrderCodeAlphabet excludes look-alike characters (0/O, 1/I/L).
	OrderCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	OrderCodeLength   = 5
)

// NewOrderCode draws a short human-shareable code from a cryptographically secure source.
// Codes are not checked for uniqueness.
func NewOrderCode() (string, error) {
	return newOrderCode(rand.Reader)
}

func newOrderCode(src io.Reader) (string, error) {
	size := big.NewInt(int64(len(OrderCodeAlphabet)))
	code := make([]byte, OrderCodeLength)
	for i := range code {
		n, err := rand.Int(src, size)
		if err != nil {
			return "", fmt.Errorf("generate order code: %w", err)
		}
		code[i] = OrderCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
