package queries

import (
	"errors"
	"time"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/guard"
)

var (
	ErrListIdentitiesQueryIsNotConstructed = errors.New(
		"ListIdentitiesQuery must be created via NewListIdentitiesQuery constructor",
	)
	ErrListRemovedIdentitiesQueryIsNotConstructed = errors.New(
		"ListRemovedIdentitiesQuery must be created via NewListRemovedIdentitiesQuery constructor",
	)
)

// ListIdentitiesQuery lists active identities with the given status;
// identity.UnknownStatus matches every status.
type ListIdentitiesQuery struct {
	status identity.Status
	guard  guard.ConstructorGuard
}

func NewListIdentitiesQuery(status identity.Status) (ListIdentitiesQuery, error) {
	if status != identity.UnknownStatus {
		if err := status.Validate(); err != nil {
			return ListIdentitiesQuery{}, err
		}
	}
	return ListIdentitiesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListIdentitiesQuery) Validate() error {
	return q.guard.Validate(ErrListIdentitiesQueryIsNotConstructed)
}

// ListRemovedIdentitiesQuery lists the removed identities for the admin view.
type ListRemovedIdentitiesQuery struct {
	guard guard.ConstructorGuard
}

func NewListRemovedIdentitiesQuery() ListRemovedIdentitiesQuery {
	return ListRemovedIdentitiesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListRemovedIdentitiesQuery) Validate() error {
	return q.guard.Validate(ErrListRemovedIdentitiesQueryIsNotConstructed)
}

// IdentityView is the read model of an identity. The credential hash is never
// part of it.
type IdentityView struct {
	ID               kernel.UUID
	Email            string
	Name             string
	Role             identity.Role
	Status           identity.Status
	Verification     identity.Verification
	BusinessName     string
	Profile          identity.Profile
	RegistrationDate time.Time
	ApprovalDate     *time.Time
	RejectionDate    *time.Time
	RestorationDate  *time.Time
	RemovedDate      *time.Time
}

// NewIdentityView maps an aggregate.
func NewIdentityView(i *identity.Identity) IdentityView {
	return IdentityView{
		ID:               i.ID(),
		Email:            i.Email().String(),
		Name:             i.Name(),
		Role:             i.Role(),
		Status:           i.Status(),
		Verification:     i.Verification(),
		BusinessName:     identity.BusinessName(i.Profile()),
		Profile:          i.Profile(),
		RegistrationDate: i.RegistrationDate(),
		ApprovalDate:     i.ApprovalDate(),
		RejectionDate:    i.RejectionDate(),
		RestorationDate:  i.RestorationDate(),
		RemovedDate:      i.RemovedDate(),
	}
}
