package infra

import (
	"context"
	"fmt"
	"reflect"

	categoryrepo "github.com/briancito0432-afk/gestomoney-proyect/infra/repository/category"
	transactionrepo "github.com/briancito0432-afk/gestomoney-proyect/infra/repository/transaction"
	userrepo "github.com/briancito0432-afk/gestomoney-proyect/infra/repository/user"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories obtained inside Do share the transaction; outside Do they use
// the pool directly.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			repository.TypeOf[user.Repository]():        func(db *gorm.DB) any { return userrepo.New(db) },
			repository.TypeOf[category.Repository]():    func(db *gorm.DB) any { return categoryrepo.New(db) },
			repository.TypeOf[transaction.Repository](): func(db *gorm.DB) any { return transactionrepo.New(db) },
		},
	}
}

// Do runs the given function in a transaction boundary, providing a UoW with repository access.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry})
	})
}

// GetRepository returns the repository registered for repoType, bound to the
// current transaction if there is one.
func (u *UoW) GetRepository(repoType reflect.Type) (any, error) {
	constructor, ok := u.repoRegistry[repoType]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return constructor(session), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
