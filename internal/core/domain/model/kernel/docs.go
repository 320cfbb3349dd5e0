// Package kernel holds the value objects shared by every aggregate of the freight
// coordinator:
//   - UUID: identifiers of loads, bids, trucks, ratings and the acting users
//   - Location: an address with its resolved coordinates
//   - Event and EventRecorder: facts recorded by aggregates for the notification outbox
//
// Values in this package are immutable once constructed and their zero values
// fail validation.
package kernel
