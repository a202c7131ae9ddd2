package passcode

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length is the number of digits in a generated code.
const Length = 6

// Generate returns a uniformly random numeric code, left-zero-padded to
// Length digits — "007421" is a valid code. Codes are drawn from crypto/rand
// so they cannot be predicted from previous issuances.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
