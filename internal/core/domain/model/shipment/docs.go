// Package shipment models a package from intake to delivery.
//
// The package includes:
//   - Shipment: the aggregate root carrying the tracking code and the status history
//   - Status: the seven literal statuses and the transition rules between them
//   - HistoryEntry: one immutable timeline record per status change
//
// Key business rules:
//   - A shipment starts in Pendiente with exactly one history entry
//   - The current status is always the status of the last history entry
//   - History is append-only and timestamps never decrease
//   - Entregado and Cancelado are terminal; nothing may change a terminal shipment
//   - Progress is forward-only (steps may be skipped); Cancelado is reachable
//     from any non-terminal status. TransitionOverride relaxes the forward-only
//     rule for staff corrections but never reopens a terminal shipment.
package shipment
