// Package accesscode mints and validates FitGate access codes. A code is
// the human-shareable credential handed out at the end of onboarding:
//
//	FIT-<TIER>-<NNNN>
//
// where <TIER> is one of BEG, INT, ADV, PRO, VIP and NNNN is exactly four
// ASCII digits. Generation draws from [1000,9999]; the parser accepts any
// four digits (leading zeros included) for forward compatibility.
//
// The generator makes no uniqueness promise. Collisions are the store's
// problem: it rejects duplicate codes and the caller re-rolls.
package accesscode

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
)

// Prefix is the fixed first segment of every access code.
const Prefix = "FIT"

// ErrInvalid reports a string that does not have the three-segment
// FIT-<TIER>-<NNNN> shape.
var ErrInvalid = errors.New("accesscode: invalid access code")

var codePattern = regexp.MustCompile(`^FIT-(BEG|INT|ADV|PRO|VIP)-([0-9]{4})$`)

const (
	randMin = 1000
	randMax = 9999
)

var tiers = map[string]struct{}{
	"BEG": {}, "INT": {}, "ADV": {}, "PRO": {}, "VIP": {},
}

// Generate mints a new code for the given tier code ("BEG".."VIP"). The
// four-digit disambiguator is drawn uniformly from [1000,9999] using
// crypto/rand.
func Generate(tier string) (string, error) {
	if _, ok := tiers[tier]; !ok {
		return "", fmt.Errorf("accesscode: unknown tier %q", tier)
	}

	n, err := rand.Int(rand.Reader, big.NewInt(randMax-randMin+1))
	if err != nil {
		return "", fmt.Errorf("accesscode: random draw failed: %w", err)
	}

	return fmt.Sprintf("%s-%s-%04d", Prefix, tier, randMin+n.Int64()), nil
}

// MustGenerate is Generate for paths where entropy failure is unrecoverable.
func MustGenerate(tier string) string {
	code, err := Generate(tier)
	if err != nil {
		panic(err)
	}
	return code
}

// Parse validates the three-segment shape and returns the embedded tier
// code. Anything else fails with ErrInvalid.
func Parse(code string) (string, error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return "", ErrInvalid
	}
	return m[1], nil
}

// Validate reports whether Parse would succeed.
func Validate(code string) bool {
	_, err := Parse(code)
	return err == nil
}
