package identity

import "strings"

// Profile carries the role specific details a registrant supplies. The lifecycle
// does not interpret them; it only checks that the profile fits the role.
type Profile interface {
	Role() Role
}

// ShipperProfile describes a business that posts loads.
type ShipperProfile struct {
	BusinessName string
	Address      string
	Phone        string
	Description  string
}

// Role returns Shipper.
func (ShipperProfile) Role() Role { return Shipper }

// CarrierProfile describes a carrier or owner-operator that hauls loads.
type CarrierProfile struct {
	BusinessName string
	DOTNumber    string
	MCNumber     string
	Address      string
	Phone        string
	Equipment    []string
	Description  string
}

// Role returns Carrier.
func (CarrierProfile) Role() Role { return Carrier }

// BusinessName returns the business name of either profile kind, or "" for nil.
func BusinessName(p Profile) string {
	switch v := p.(type) {
	case ShipperProfile:
		return strings.TrimSpace(v.BusinessName)
	case CarrierProfile:
		return strings.TrimSpace(v.BusinessName)
	default:
		return ""
	}
}
