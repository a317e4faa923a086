package kernel

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"shipping/internal/pkg/errs"
)

const (
	// TrackingCodePrefix starts every shipment tracking code.
	TrackingCodePrefix = "BB"
	codeSuffixLength   = 5
	codeAlphabet       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var trackingCodePattern = regexp.MustCompile(`^BB-[A-Z0-9]{5}$`)

// TrackingCode is the public, customer facing shipment identifier ("BB-7K2QX").
// It is assigned once at intake and never changes.
type TrackingCode struct {
	value string
}

// NewTrackingCode generates a random code. Uniqueness is enforced by the
// store; callers retry on collision.
func NewTrackingCode() (TrackingCode, error) {
	suffix, err := RandomCodeSuffix()
	if err != nil {
		return TrackingCode{}, err
	}
	return TrackingCode{value: TrackingCodePrefix + "-" + suffix}, nil
}

// ParseTrackingCode accepts user input such as " bb-7k2qx " and normalizes it.
func ParseTrackingCode(s string) (TrackingCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if !trackingCodePattern.MatchString(normalized) {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code",
			fmt.Errorf("%q does not match %s-XXXXX", s, TrackingCodePrefix),
		)
	}
	return TrackingCode{value: normalized}, nil
}

func (c TrackingCode) String() string {
	return c.value
}

func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

func (c TrackingCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("tracking code")
	}
	return nil
}

// RandomCodeSuffix returns five characters drawn uniformly from [A-Z0-9].
func RandomCodeSuffix() (string, error) {
	var sb strings.Builder
	sb.Grow(codeSuffixLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for range codeSuffixLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("generate code suffix: %w", err)
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return sb.String(), nil
}
