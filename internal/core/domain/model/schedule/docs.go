// Package schedule turns the editable shipping calendar into concrete
// departure dates and maps shipment creation times onto them.
//
// The calendar is a Settings snapshot made of explicit windows and free-text
// month blocks such as {"ENERO 2026", "2, 17 y 30"}. Resolver expands it into
// sorted local-midnight dates; Assign picks the earliest window whose day has
// not yet ended and returns the folder label ("ENVÍO DEL 17 DE ENERO DE 2026")
// or FallbackLabel when every window has passed.
//
// Nothing here is cached: the calendar may change between two reads, so
// callers resolve and assign on every request.
package schedule
