package http

import (
	"time"

	"loadboard/internal/core/application/usecases/queries"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/listing"
	"loadboard/internal/core/domain/services"
)

type Profile struct {
	BusinessName string   `json:"businessName,omitempty"`
	DOTNumber    string   `json:"dotNumber,omitempty"`
	MCNumber     string   `json:"mcNumber,omitempty"`
	Address      string   `json:"address,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// toDomain picks the profile kind from the role. Admins carry no profile.
func (p *Profile) toDomain(role identity.Role) identity.Profile {
	if p == nil {
		return nil
	}
	switch role {
	case identity.Shipper:
		return identity.ShipperProfile{
			BusinessName: p.BusinessName,
			Address:      p.Address,
			Phone:        p.Phone,
			Description:  p.Description,
		}
	case identity.Carrier:
		return identity.CarrierProfile{
			BusinessName: p.BusinessName,
			DOTNumber:    p.DOTNumber,
			MCNumber:     p.MCNumber,
			Address:      p.Address,
			Phone:        p.Phone,
			Equipment:    p.Equipment,
			Description:  p.Description,
		}
	default:
		return nil
	}
}

func profileFromDomain(p identity.Profile) *Profile {
	switch v := p.(type) {
	case identity.ShipperProfile:
		return &Profile{
			BusinessName: v.BusinessName,
			Address:      v.Address,
			Phone:        v.Phone,
			Description:  v.Description,
		}
	case identity.CarrierProfile:
		return &Profile{
			BusinessName: v.BusinessName,
			DOTNumber:    v.DOTNumber,
			MCNumber:     v.MCNumber,
			Address:      v.Address,
			Phone:        v.Phone,
			Equipment:    v.Equipment,
			Description:  v.Description,
		}
	default:
		return nil
	}
}

type NewIdentity struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Password string   `json:"password,omitempty"`
	Profile  *Profile `json:"profile,omitempty"`
}

type Identity struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	Verification     string     `json:"verification"`
	BusinessName     string     `json:"businessName,omitempty"`
	Profile          *Profile   `json:"profile,omitempty"`
	RegistrationDate time.Time  `json:"registrationDate"`
	ApprovalDate     *time.Time `json:"approvalDate,omitempty"`
	RejectionDate    *time.Time `json:"rejectionDate,omitempty"`
	RestorationDate  *time.Time `json:"restorationDate,omitempty"`
	RemovedDate      *time.Time `json:"removedDate,omitempty"`
}

func identityFromView(v queries.IdentityView) Identity {
	return Identity{
		ID:               v.ID.String(),
		Email:            v.Email,
		Name:             v.Name,
		Role:             v.Role.String(),
		Status:           v.Status.String(),
		Verification:     v.Verification.String(),
		BusinessName:     v.BusinessName,
		Profile:          profileFromDomain(v.Profile),
		RegistrationDate: v.RegistrationDate,
		ApprovalDate:     v.ApprovalDate,
		RejectionDate:    v.RejectionDate,
		RestorationDate:  v.RestorationDate,
		RemovedDate:      v.RemovedDate,
	}
}

func identityFromDomain(i *identity.Identity) Identity {
	return identityFromView(queries.NewIdentityView(i))
}

func identitiesFromViews(views []queries.IdentityView) []Identity {
	out := make([]Identity, len(views))
	for i, v := range views {
		out[i] = identityFromView(v)
	}
	return out
}

type RestoreRequest struct {
	Status string `json:"status"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Identity  Identity  `json:"identity"`
}

type Access struct {
	IsAuthenticated  bool      `json:"isAuthenticated"`
	IsApproved       bool      `json:"isApproved"`
	IsAdmin          bool      `json:"isAdmin"`
	CanSubmitListing bool      `json:"canSubmitListing"`
	Identity         *Identity `json:"identity,omitempty"`
}

func accessFromDomain(a services.Access) Access {
	out := Access{
		IsAuthenticated:  a.IsAuthenticated,
		IsApproved:       a.IsApproved,
		IsAdmin:          a.IsAdmin,
		CanSubmitListing: a.CanSubmitListing,
	}
	if a.Identity != nil {
		current := identityFromDomain(a.Identity)
		out.Identity = &current
	}
	return out
}

type Location struct {
	City  string `json:"city"`
	State string `json:"state"`
}

func locationFromDomain(l kernel.Location) Location {
	return Location{City: l.City(), State: l.State()}
}

type NewListing struct {
	Pickup        Location `json:"pickup"`
	Delivery      Location `json:"delivery"`
	EquipmentType string   `json:"equipmentType"`
	WeightLbs     int      `json:"weightLbs"`
	RateCents     int64    `json:"rateCents"`
	AvailableDate string   `json:"availableDate"`
	ContactName   string   `json:"contactName,omitempty"`
	ContactPhone  string   `json:"contactPhone,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type Listing struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"ownerId"`
	OwnerName       string     `json:"ownerName"`
	OwnerEmail      string     `json:"ownerEmail"`
	Pickup          Location   `json:"pickup"`
	Delivery        Location   `json:"delivery"`
	Route           string     `json:"route"`
	EquipmentType   string     `json:"equipmentType"`
	WeightLbs       int        `json:"weightLbs"`
	RateCents       int64      `json:"rateCents"`
	AvailableDate   string     `json:"availableDate"`
	ContactName     string     `json:"contactName,omitempty"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	SubmissionDate  time.Time  `json:"submissionDate"`
	ApprovalDate    *time.Time `json:"approvalDate,omitempty"`
	ReviewedBy      *string    `json:"reviewedBy,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

func listingFromView(v queries.ListingView) Listing {
	out := Listing{
		ID:              v.ID.String(),
		OwnerID:         v.OwnerID.String(),
		OwnerName:       v.OwnerName,
		OwnerEmail:      v.OwnerEmail,
		Pickup:          locationFromDomain(v.Pickup),
		Delivery:        locationFromDomain(v.Delivery),
		Route:           v.Route,
		EquipmentType:   v.EquipmentType,
		WeightLbs:       v.WeightLbs,
		RateCents:       v.RateCents,
		AvailableDate:   v.AvailableDate.Format(time.DateOnly),
		ContactName:     v.ContactName,
		ContactPhone:    v.ContactPhone,
		Notes:           v.Notes,
		Status:          v.Status.String(),
		SubmissionDate:  v.SubmissionDate,
		ApprovalDate:    v.ApprovalDate,
		RejectionReason: v.RejectionReason,
	}
	if v.ReviewedBy != nil {
		reviewer := v.ReviewedBy.String()
		out.ReviewedBy = &reviewer
	}
	return out
}

func listingFromDomain(l *listing.Listing) Listing {
	return listingFromView(queries.NewListingView(l))
}

func listingsFromViews(views []queries.ListingView) []Listing {
	out := make([]Listing, len(views))
	for i, v := range views {
		out[i] = listingFromView(v)
	}
	return out
}

type RejectListingRequest struct {
	Reason string `json:"reason"`
}
