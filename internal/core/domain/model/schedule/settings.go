package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/pkg/errs"
)

// Window is a scheduled departure.
type Window struct {
	Date time.Time `json:"date"`
	Mode Mode      `json:"mode"`
}

// Block is a free-text month entry of the calendar, e.g. {"ENERO 2026", "2, 17 y 30"}.
type Block struct {
	MonthLabel string `json:"monthLabel"`
	DaysText   string `json:"daysText"`
	Mode       Mode   `json:"mode"`
}

// Settings is the calendar snapshot kept in the settings store.
type Settings struct {
	Windows   []Window  `json:"windows"`
	Blocks    []Block   `json:"blocks"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate checks structural fields only. Free text inside blocks is parsed
// best-effort at read time and never rejected here.
func (s Settings) Validate() error {
	var all []error
	for i, w := range s.Windows {
		if w.Date.IsZero() {
			all = append(all, errs.NewValueIsRequiredError(fmt.Sprintf("windows[%d].date", i)))
		}
		if err := w.Mode.Validate(); err != nil {
			all = append(all, err)
		}
	}
	for i, b := range s.Blocks {
		if strings.TrimSpace(b.MonthLabel) == "" {
			all = append(all, errs.NewValueIsRequiredError(fmt.Sprintf("blocks[%d].monthLabel", i)))
		}
		if err := b.Mode.Validate(); err != nil {
			all = append(all, err)
		}
	}
	return errors.Join(all...)
}

// ExplicitDates returns the dates of the explicit windows in declaration order.
func (s Settings) ExplicitDates() []time.Time {
	dates := make([]time.Time, 0, len(s.Windows))
	for _, w := range s.Windows {
		dates = append(dates, w.Date)
	}
	return dates
}
