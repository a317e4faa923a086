// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type unwraps to one sentinel, so callers classify with errors.Is:
//
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound): // unknown shipment or tracking code
//	case errors.Is(err, errs.ErrValueIsInvalid): // malformed input
//	case errors.Is(err, errs.ErrVersionIsInvalid): // stale aggregate
//	}
//
// The HTTP adapter maps these sentinels to status codes. User supplied values
// are flattened to one line before they reach a message.
package errs
