// Package listing holds the Listing aggregate: a freight load posted by an
// approved shipper and reviewed once by an administrator.
//
// State transitions:
//
//	Pending ──approve──> Approved
//	   │
//	   └──────reject───> Rejected
//
// Approved and Rejected are final. The owner may delete a listing in any state.
package listing
