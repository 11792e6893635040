package identityrepo

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIdentityRepository implements ports.IdentityRepository using GORM. Every
// identity it returns has passed through the admin allow-list.
type GormIdentityRepository struct {
	db        *gorm.DB
	allowList identity.AdminAllowList
}

// NewGormIdentityRepository creates a new GORM repository for active identities.
func NewGormIdentityRepository(db *gorm.DB, allowList identity.AdminAllowList) *GormIdentityRepository {
	return &GormIdentityRepository{
		db:        db,
		allowList: allowList,
	}
}

// Add saves a new identity. An address already held by another active identity
// is a DuplicateIdentityError.
func (r *GormIdentityRepository) Add(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateIdentityError(dto.Email)
		}
		return err
	}

	return nil
}

// Update saves an existing identity. Zero values are written too, so cleared
// dates and emptied profile fields reach the table.
func (r *GormIdentityRepository) Update(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&IdentityDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateIdentityError(dto.Email)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("identity", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an active identity by ID.
func (r *GormIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", id.String())
		}
		return nil, err
	}

	return r.toDomain(dto)
}

// FindByEmail retrieves the active identity owning email.
func (r *GormIdentityRepository) FindByEmail(ctx context.Context, email kernel.Email) (*identity.Identity, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto IdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("identity", email.String())
		}
		return nil, err
	}

	return r.toDomain(dto)
}

// GetAll retrieves every active identity, oldest registration first.
func (r *GormIdentityRepository) GetAll(ctx context.Context) ([]*identity.Identity, error) {
	var dtos []IdentityDTO
	if err := r.db.WithContext(ctx).Order("registration_date, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	identities := make([]*identity.Identity, 0, len(dtos))
	for _, dto := range dtos {
		i, err := r.toDomain(dto)
		if err != nil {
			return nil, err
		}
		identities = append(identities, i)
	}

	return identities, nil
}

// Delete removes an active identity.
func (r *GormIdentityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&IdentityDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("identity", id.String())
	}

	return nil
}

func (r *GormIdentityRepository) toDomain(dto IdentityDTO) (*identity.Identity, error) {
	aggregate, err := toDomain(dto.IdentityColumns, dto.Email, nil)
	if err != nil {
		return nil, err
	}
	r.allowList.Normalize(aggregate)
	return aggregate, nil
}
