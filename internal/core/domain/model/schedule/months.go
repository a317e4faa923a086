package schedule

import "time"

var monthsByName = map[string]time.Month{
	"ENERO":      time.January,
	"FEBRERO":    time.February,
	"MARZO":      time.March,
	"ABRIL":      time.April,
	"MAYO":       time.May,
	"JUNIO":      time.June,
	"JULIO":      time.July,
	"AGOSTO":     time.August,
	"SEPTIEMBRE": time.September,
	"OCTUBRE":    time.October,
	"NOVIEMBRE":  time.November,
	"DICIEMBRE":  time.December,
}

// SETIEMBRE is a common spelling on hand written calendars.
var monthAliases = map[string]time.Month{
	"SETIEMBRE": time.September,
}

var monthNames = [...]string{
	time.January:   "ENERO",
	time.February:  "FEBRERO",
	time.March:     "MARZO",
	time.April:     "ABRIL",
	time.May:       "MAYO",
	time.June:      "JUNIO",
	time.July:      "JULIO",
	time.August:    "AGOSTO",
	time.September: "SEPTIEMBRE",
	time.October:   "OCTUBRE",
	time.November:  "NOVIEMBRE",
	time.December:  "DICIEMBRE",
}

func lookupMonth(name string) (time.Month, bool) {
	if m, ok := monthsByName[name]; ok {
		return m, true
	}
	m, ok := monthAliases[name]
	return m, ok
}

func monthName(m time.Month) string {
	return monthNames[m]
}
