// Package identity holds the Identity aggregate: a registered shipper, carrier or
// administrator together with its approval state machine.
//
// Two axes describe an identity. The approval axis moves between Pending, Approved
// and Rejected and is driven by administrators:
//
//	Pending ──approve──> Approved ──reject──> Rejected
//	   │  ^                 │  ^                 │
//	   │  └─────restore─────┘  └─────restore─────┤
//	   └────────reject──────────────────────────>┘
//
// The removal axis is orthogonal: an identity is either active or removed, and
// removal keeps the approval status untouched so that reinstating the identity
// brings it back exactly as it was.
//
// Addresses on the AdminAllowList are always administrators. AdminAllowList.Normalize
// is the single place that rule is applied and it runs whenever an identity is
// loaded from storage.
package identity
