// Package postgres provides the GORM implementation of the Unit of Work pattern
// for the identity and listing collections.
//
// Moving an identity between the active and removed tables, or creating a
// listing for an owner read in the same request, happens inside one
// transaction so both writes commit or neither does.
//
// Basic Transaction Management:
//
//	factory := NewGormUnitOfWorkFactory(db, allowList)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.RemovedIdentityRepository().Add(ctx, removed); err != nil {
//	    return err
//	}
//	if err := uow.IdentityRepository().Delete(ctx, removed.ID()); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Rows are not locked between read and write; concurrent reviews of one
//     record race and the last commit wins
package postgres

import (
	"context"

	"loadboard/internal/adapters/out/postgres/identityrepo"
	"loadboard/internal/adapters/out/postgres/listingrepo"
	"loadboard/internal/core/domain/model/identity"
	"loadboard/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	allowList identity.AdminAllowList
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The allow-list is handed to the active identity repository, which normalizes
// every identity it loads.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, allowList)
func NewGormUnitOfWorkFactory(db *gorm.DB, allowList identity.AdminAllowList) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		allowList: allowList,
	}
}

// Create produces a new UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		allowList: f.allowList,
	}
}

// GormUnitOfWork coordinates one database transaction across the identity,
// removed identity and listing repositories.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	allowList identity.AdminAllowList
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes all changes made within the current transaction.
// After commit, the transaction is closed and cannot be reused.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Handlers defer it unconditionally, so after Commit it returns
// gorm.ErrInvalidTransaction and changes nothing.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// IdentityRepository returns the active identities. Operations run inside the
// current transaction if one is open, otherwise directly on the pool.
func (uow *GormUnitOfWork) IdentityRepository() ports.IdentityRepository {
	return identityrepo.NewGormIdentityRepository(uow.conn(), uow.allowList)
}

// RemovedIdentityRepository returns the removed identities.
func (uow *GormUnitOfWork) RemovedIdentityRepository() ports.RemovedIdentityRepository {
	return identityrepo.NewGormRemovedIdentityRepository(uow.conn())
}

// ListingRepository returns the listings.
func (uow *GormUnitOfWork) ListingRepository() ports.ListingRepository {
	return listingrepo.NewGormListingRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates the tables behind the repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identityrepo.IdentityDTO{},
		&identityrepo.RemovedIdentityDTO{},
		&listingrepo.ListingDTO{},
	)
}
