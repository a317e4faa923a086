// Package kernel holds the value objects shared by the shipment and transfer
// aggregates: identifiers, public codes, money and the acting user.
//
// The package includes:
//   - UUID: entity identifier wrapping github.com/google/uuid
//   - TrackingCode: the customer facing "BB-XXXXX" shipment code
//   - Money: an amount in minor units plus an ISO currency code
//   - Actor: the authenticated caller and its role
//
// All values are immutable; zero values are invalid and rejected by Validate.
package kernel
