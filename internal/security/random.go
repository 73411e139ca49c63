package security

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const (
	digits     = "0123456789"
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	lowerAlnum = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// RandomDigits returns n uniformly random decimal digits, e.g. an OTP code.
func RandomDigits(n int) (string, error) {
	return randomFrom(digits, n)
}

// RandomUpperAlnum returns n random characters from [A-Z0-9].
func RandomUpperAlnum(n int) (string, error) {
	return randomFrom(upperAlnum, n)
}

func RandomLowerAlnum(n int) (string, error) {
	return randomFrom(lowerAlnum, n)
}

func randomFrom(alphabet string, n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}
	return sb.String(), nil
}
