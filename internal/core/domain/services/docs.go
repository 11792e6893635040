// Package services provides domain services that span more than one aggregate or
// that must stay free of transport and storage concerns.
//
// The package includes:
//   - AccessGate: derives what the current session identity may do
//   - Credentials: hashes and checks passwords with bcrypt
package services
