// Package services holds domain logic that spans aggregates or needs
// collaborators the aggregates should not know about.
//
// The package includes:
//   - StatusEngine: authorizes and timestamps shipment status changes
//   - GroupByBucket / FilterWithinBucket: the dispatch folder views used by
//     operations, shared by shipments and money transfers
package services
