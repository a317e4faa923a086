package schedule

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"shipping/internal/pkg/errs"
)

var (
	daySeparators   = regexp.MustCompile(`[,;\s]+`)
	labelSeparators = regexp.MustCompile(`[\s,.;:/-]+`)
	yearPattern     = regexp.MustCompile(`^\d{4}$`)
)

// connector words between day numbers ("2, 17 y 30", "5 and 20").
var dayConnectors = map[string]struct{}{
	"Y":   {},
	"E":   {},
	"AND": {},
}

// connector words inside month labels ("DE FEBRERO DEL 2026").
var labelConnectors = map[string]struct{}{
	"DE":  {},
	"DEL": {},
}

// Resolver expands a calendar snapshot into concrete departure dates in one location.
type Resolver struct {
	location *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewResolver builds a resolver. now supplies the default year for month
// labels that omit it.
func NewResolver(location *time.Location, logger *slog.Logger, now func() time.Time) *Resolver {
	if location == nil {
		location = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &Resolver{
		location: location,
		logger:   logger.With("component", "schedule_resolver"),
		now:      now,
	}
}

// Location returns the time zone departures are anchored to.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Resolve returns the explicit dates plus every date named by the blocks,
// as local midnights, ascending and without duplicates. Malformed block
// content is skipped or defaulted and logged; it never fails the call.
func (r *Resolver) Resolve(explicitDates []time.Time, blocks []Block) []time.Time {
	dates := make([]time.Time, 0, len(explicitDates))
	for _, d := range explicitDates {
		dates = append(dates, r.midnight(d))
	}

	defaultYear := r.now().In(r.location).Year()
	for _, b := range blocks {
		parsed, warnings := ParseBlock(b, defaultYear, r.location)
		r.logWarnings(b, warnings)
		dates = append(dates, parsed...)
	}

	return sortUnique(dates)
}

// ResolveWindows is Resolve keeping the transport mode of each departure.
// The same date appears once per mode.
func (r *Resolver) ResolveWindows(settings Settings) []Window {
	windows := make([]Window, 0, len(settings.Windows))
	for _, w := range settings.Windows {
		windows = append(windows, Window{Date: r.midnight(w.Date), Mode: w.Mode})
	}

	defaultYear := r.now().In(r.location).Year()
	for _, b := range settings.Blocks {
		parsed, warnings := ParseBlock(b, defaultYear, r.location)
		r.logWarnings(b, warnings)
		for _, d := range parsed {
			windows = append(windows, Window{Date: d, Mode: b.Mode})
		}
	}

	sort.SliceStable(windows, func(i, j int) bool {
		if windows[i].Date.Equal(windows[j].Date) {
			return windows[i].Mode < windows[j].Mode
		}
		return windows[i].Date.Before(windows[j].Date)
	})

	unique := windows[:0]
	for i, w := range windows {
		if i > 0 && w.Date.Equal(unique[len(unique)-1].Date) && w.Mode == unique[len(unique)-1].Mode {
			continue
		}
		unique = append(unique, w)
	}
	return unique
}

// Upcoming keeps the windows whose departure day has not ended yet.
func (r *Resolver) Upcoming(windows []Window) []Window {
	now := r.now()
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		if !endOfDay(w.Date).Before(now) {
			out = append(out, w)
		}
	}
	return out
}

// ParseBlock reads one free-text month block. An unrecognized month falls
// back to January; tokens that are not day numbers of that month are
// dropped. Both cases are reported as warnings next to the best-effort result.
func ParseBlock(b Block, defaultYear int, loc *time.Location) ([]time.Time, []error) {
	var warnings []error

	month, year, labelWarnings := parseMonthLabel(b.MonthLabel, defaultYear)
	warnings = append(warnings, labelWarnings...)

	var dates []time.Time
	for _, token := range daySeparators.Split(strings.TrimSpace(b.DaysText), -1) {
		if token == "" {
			continue
		}
		if _, ok := dayConnectors[strings.ToUpper(token)]; ok {
			continue
		}

		day, convErr := strconv.Atoi(token)
		if convErr != nil || !isDigits(token) {
			warnings = append(warnings, errs.NewValueIsInvalidErrorWithCause(
				"day", fmt.Errorf("%q is not a day number", token),
			))
			continue
		}

		last := daysIn(year, month, loc)
		if day < 1 || day > last {
			warnings = append(warnings, errs.NewValueIsOutOfRangeError("day of "+monthName(month), day, 1, last))
			continue
		}

		dates = append(dates, time.Date(year, month, day, 0, 0, 0, 0, loc))
	}

	return dates, warnings
}

// parseMonthLabel takes the first month name and the first 4-digit year of
// the label. Every other token except connectors is reported.
func parseMonthLabel(label string, defaultYear int) (time.Month, int, []error) {
	var warnings []error
	year := defaultYear
	yearSeen := false
	var month time.Month
	monthSeen := false

	for _, token := range labelSeparators.Split(strings.ToUpper(strings.TrimSpace(label)), -1) {
		if token == "" {
			continue
		}
		if _, ok := labelConnectors[token]; ok {
			continue
		}
		if m, ok := lookupMonth(token); ok && !monthSeen {
			month, monthSeen = m, true
			continue
		}
		if yearPattern.MatchString(token) && !yearSeen {
			year, _ = strconv.Atoi(token)
			yearSeen = true
			continue
		}
		warnings = append(warnings, errs.NewValueIsInvalidErrorWithCause(
			"month label", fmt.Errorf("%q in %q is neither a month nor a year", token, label),
		))
	}

	if !monthSeen {
		warnings = append(warnings, errs.NewValueIsInvalidErrorWithCause(
			"month label", fmt.Errorf("%q has no known month name, defaulting to ENERO", label),
		))
		return time.January, year, warnings
	}
	return month, year, warnings
}

func (r *Resolver) midnight(d time.Time) time.Time {
	local := d.In(r.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.location)
}

func (r *Resolver) logWarnings(b Block, warnings []error) {
	for _, w := range warnings {
		r.logger.Warn("schedule block degraded",
			"month_label", b.MonthLabel,
			"days_text", b.DaysText,
			"error", w,
		)
	}
}

func sortUnique(dates []time.Time) []time.Time {
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	unique := make([]time.Time, 0, len(dates))
	for i, d := range dates {
		if i > 0 && d.Equal(unique[len(unique)-1]) {
			continue
		}
		unique = append(unique, d)
	}
	return unique
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}
