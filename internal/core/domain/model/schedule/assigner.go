package schedule

import (
	"fmt"
	"time"
)

// FallbackLabel groups everything created after the last known departure.
const FallbackLabel = "PRÓXIMOS ENVÍOS"

// Assignment is the dispatch folder chosen for one creation time.
// WindowDate is nil for the fallback folder.
type Assignment struct {
	Label      string
	WindowDate *time.Time
}

// IsFallback reports whether no scheduled window matched.
func (a Assignment) IsFallback() bool {
	return a.WindowDate == nil
}

// Assign picks the earliest window whose day has not ended at createdAt.
// A window on the same calendar day as createdAt still qualifies. The result
// depends only on the arguments.
func Assign(createdAt time.Time, windows []time.Time) Assignment {
	var target *time.Time
	for _, w := range windows {
		if endOfDay(w).Before(createdAt) {
			continue
		}
		if target == nil || w.Before(*target) {
			candidate := w
			target = &candidate
		}
	}

	if target == nil {
		return Assignment{Label: FallbackLabel}
	}
	return Assignment{Label: WindowLabel(*target), WindowDate: target}
}

// AssignLabel is Assign reduced to the folder label.
func AssignLabel(createdAt time.Time, windows []time.Time) string {
	return Assign(createdAt, windows).Label
}

// WindowLabel renders the long Spanish form, e.g. "ENVÍO DEL 17 DE ENERO DE 2026".
func WindowLabel(d time.Time) string {
	return fmt.Sprintf("ENVÍO DEL %d DE %s DE %d", d.Day(), monthName(d.Month()), d.Year())
}

// endOfDay is the last instant of w's calendar day in w's location.
func endOfDay(w time.Time) time.Time {
	start := time.Date(w.Year(), w.Month(), w.Day(), 0, 0, 0, 0, w.Location())
	return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}
