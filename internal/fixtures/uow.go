// Package fixtures holds testify mocks of the repository contracts.
package fixtures

import (
	"context"
	"reflect"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock repository.UnitOfWork. Do may be given either an
// error or a func(context.Context, func(repository.UnitOfWork) error) error
// as its return value; RunInTx sets up the latter.
type MockUnitOfWork struct {
	mock.Mock
}

func NewMockUnitOfWork(t testingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}

func (m *MockUnitOfWork) GetRepository(repoType reflect.Type) (any, error) {
	args := m.Called(repoType)
	return args.Get(0), args.Error(1)
}

// RunInTx makes Do call fn with the mock itself.
func (m *MockUnitOfWork) RunInTx() *mock.Call {
	return m.On("Do", mock.Anything, mock.Anything).Return(
		func(_ context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(m)
		},
	)
}

// Provide makes GetRepository return repo for the repository interface T.
func Provide[T any](m *MockUnitOfWork, repo T) *mock.Call {
	return m.On("GetRepository", repository.TypeOf[T]()).Return(repo, nil)
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)
