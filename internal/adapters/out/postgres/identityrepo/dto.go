// Package identityrepo persists identities. Active and removed identities live in
// two tables with the same columns; only the active table enforces one identity
// per e-mail address.
package identityrepo

import (
	"time"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// IdentityColumns are the columns shared by both identity tables.
type IdentityColumns struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Role         int `gorm:"index"`
	Status       int `gorm:"index"`
	Verification int
	Profile      ProfileDTO `gorm:"embedded;embeddedPrefix:profile_"`

	CredentialHash   string
	RegistrationDate time.Time `gorm:"index"`
	ApprovalDate     *time.Time
	RejectionDate    *time.Time
	RestorationDate  *time.Time
}

// ProfileDTO flattens both profile kinds. Kind is the role the profile belongs to,
// or 0 when the identity has none.
type ProfileDTO struct {
	Kind         int
	BusinessName string
	DOTNumber    string
	MCNumber     string
	Address      string
	Phone        string
	Equipment    pq.StringArray `gorm:"type:text[]"`
	Description  string
}

// IdentityDTO is a row of the active identities table.
type IdentityDTO struct {
	IdentityColumns
	Email string `gorm:"uniqueIndex"`
}

func (IdentityDTO) TableName() string {
	return "identities"
}

// RemovedIdentityDTO is a row of the removed identities table. The same address
// may appear more than once.
type RemovedIdentityDTO struct {
	IdentityColumns
	Email       string `gorm:"index"`
	RemovedDate time.Time
}

func (RemovedIdentityDTO) TableName() string {
	return "removed_identities"
}

func columnsFromDomain(aggregate *identity.Identity) IdentityColumns {
	return IdentityColumns{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Role:             int(aggregate.Role()),
		Status:           int(aggregate.Status()),
		Verification:     int(aggregate.Verification()),
		Profile:          profileFromDomain(aggregate.Profile()),
		CredentialHash:   aggregate.CredentialHash(),
		RegistrationDate: aggregate.RegistrationDate(),
		ApprovalDate:     aggregate.ApprovalDate(),
		RejectionDate:    aggregate.RejectionDate(),
		RestorationDate:  aggregate.RestorationDate(),
	}
}

func fromDomain(aggregate *identity.Identity) IdentityDTO {
	return IdentityDTO{
		IdentityColumns: columnsFromDomain(aggregate),
		Email:           aggregate.Email().String(),
	}
}

func removedFromDomain(aggregate *identity.Identity) RemovedIdentityDTO {
	dto := RemovedIdentityDTO{
		IdentityColumns: columnsFromDomain(aggregate),
		Email:           aggregate.Email().String(),
	}
	if removed := aggregate.RemovedDate(); removed != nil {
		dto.RemovedDate = *removed
	}
	return dto
}

func profileFromDomain(p identity.Profile) ProfileDTO {
	switch v := p.(type) {
	case identity.ShipperProfile:
		return ProfileDTO{
			Kind:         int(identity.Shipper),
			BusinessName: v.BusinessName,
			Address:      v.Address,
			Phone:        v.Phone,
			Description:  v.Description,
		}
	case identity.CarrierProfile:
		return ProfileDTO{
			Kind:         int(identity.Carrier),
			BusinessName: v.BusinessName,
			DOTNumber:    v.DOTNumber,
			MCNumber:     v.MCNumber,
			Address:      v.Address,
			Phone:        v.Phone,
			Equipment:    pq.StringArray(v.Equipment),
			Description:  v.Description,
		}
	default:
		return ProfileDTO{}
	}
}

func (p ProfileDTO) toDomain() identity.Profile {
	switch identity.Role(p.Kind) {
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
			Equipment:    []string(p.Equipment),
			Description:  p.Description,
		}
	default:
		return nil
	}
}

func toDomain(cols IdentityColumns, rawEmail string, removedDate *time.Time) (*identity.Identity, error) {
	id, err := kernel.UUIDFromBytes(cols.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	return identity.RestoreIdentity(identity.Snapshot{
		ID:               id,
		Email:            email,
		Name:             cols.Name,
		Role:             identity.Role(cols.Role),
		Status:           identity.Status(cols.Status),
		Verification:     identity.Verification(cols.Verification),
		Profile:          cols.Profile.toDomain(),
		CredentialHash:   cols.CredentialHash,
		RegistrationDate: cols.RegistrationDate,
		ApprovalDate:     cols.ApprovalDate,
		RejectionDate:    cols.RejectionDate,
		RestorationDate:  cols.RestorationDate,
		RemovedDate:      removedDate,
	})
}
