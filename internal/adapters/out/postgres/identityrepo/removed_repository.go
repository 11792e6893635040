package identityrepo

import (
	"context"
	"errors"

	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRemovedIdentityRepository implements ports.RemovedIdentityRepository using GORM.
type GormRemovedIdentityRepository struct {
	db *gorm.DB
}

func NewGormRemovedIdentityRepository(db *gorm.DB) *GormRemovedIdentityRepository {
	return &GormRemovedIdentityRepository{db: db}
}

// Add stores a removed identity. The identity must carry a removal date.
func (r *GormRemovedIdentityRepository) Add(ctx context.Context, aggregate *identity.Identity) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsRemoved() {
		return errs.NewValueIsRequiredError("removed date")
	}

	dto := removedFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormRemovedIdentityRepository) Get(ctx context.Context, id kernel.UUID) (*identity.Identity, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RemovedIdentityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("removed identity", id.String())
		}
		return nil, err
	}

	return toDomain(dto.IdentityColumns, dto.Email, &dto.RemovedDate)
}

// GetAll returns removed identities, most recently removed first.
func (r *GormRemovedIdentityRepository) GetAll(ctx context.Context) ([]*identity.Identity, error) {
	var dtos []RemovedIdentityDTO
	if err := r.db.WithContext(ctx).Order("removed_date DESC, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	identities := make([]*identity.Identity, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto.IdentityColumns, dto.Email, &dto.RemovedDate)
		if err != nil {
			return nil, err
		}
		identities = append(identities, i)
	}

	return identities, nil
}

func (r *GormRemovedIdentityRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RemovedIdentityDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("removed identity", id.String())
	}

	return nil
}
