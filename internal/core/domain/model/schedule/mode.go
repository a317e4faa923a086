package schedule

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Mode is the consolidation channel of a departure.
type Mode string

const (
	Air Mode = "Aéreo"
	Sea Mode = "Marítimo"
)

// ParseMode accepts the Spanish labels with or without accents and the English names.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aéreo", "aereo", "air":
		return Air, nil
	case "marítimo", "maritimo", "sea":
		return Sea, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is neither air nor sea", s))
	}
}

func (m Mode) Validate() error {
	if m != Air && m != Sea {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%q is neither air nor sea", string(m)))
	}
	return nil
}

func (m Mode) String() string {
	return string(m)
}
