// Package memory is a process-local storage driver. Units of work are
// serialised and commit by swapping in a modified copy of the data.
package memory

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"sync"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
)

// ErrNoUnitOfWork is returned when repositories are requested outside Do.
var ErrNoUnitOfWork = errors.New("memory: repositories are only available inside Do")

type state struct {
	users        map[int64]dto.UserRead
	categories   map[int64]dto.CategoryRead
	transactions map[int64]dto.TransactionRead

	lastUserID        int64
	lastCategoryID    int64
	lastTransactionID int64
}

func newState() *state {
	return &state{
		users:        map[int64]dto.UserRead{},
		categories:   map[int64]dto.CategoryRead{},
		transactions: map[int64]dto.TransactionRead{},
	}
}

// clone copies the maps. Values are plain structs; the only pointer, a
// transaction's description, is never mutated in place.
func (s *state) clone() *state {
	c := *s
	c.users = maps.Clone(s.users)
	c.categories = maps.Clone(s.categories)
	c.transactions = maps.Clone(s.transactions)
	return &c
}

// Store is an in-memory repository.UnitOfWork.
type Store struct {
	mu   sync.Mutex
	data *state
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: newState()}
}

// Do runs fn against a private copy of the data and publishes the copy only
// if fn succeeds.
func (s *Store) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &unitOfWork{data: s.data.clone()}
	if err := fn(work); err != nil {
		return err
	}
	s.data = work.data
	return nil
}

// GetRepository is only usable on the unit of work passed to Do.
func (s *Store) GetRepository(repoType reflect.Type) (any, error) {
	return nil, ErrNoUnitOfWork
}

type unitOfWork struct {
	data *state
}

func (u *unitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(u)
}

func (u *unitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	switch repoType {
	case repository.TypeOf[user.Repository]():
		return &userRepository{data: u.data}, nil
	case repository.TypeOf[category.Repository]():
		return &categoryRepository{data: u.data}, nil
	case repository.TypeOf[transaction.Repository]():
		return &transactionRepository{data: u.data}, nil
	}
	return nil, fmt.Errorf("unsupported repository type: %v", repoType)
}

var (
	_ repository.UnitOfWork = (*Store)(nil)
	_ repository.UnitOfWork = (*unitOfWork)(nil)
)
