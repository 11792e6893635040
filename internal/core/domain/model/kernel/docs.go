// Package kernel provides the value objects shared by the identity and listing
// aggregates.
//
// The package includes:
//   - UUID: identifier for identities and listings
//   - Email: a normalized, case-insensitive e-mail address
//   - Location: a city/state pair used for pickup and delivery points
//   - Clock: the source of transition timestamps
//
// Zero values of the value objects are invalid; build them with their constructors.
package kernel
