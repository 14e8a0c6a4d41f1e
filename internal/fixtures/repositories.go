package fixtures

import (
	"context"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/category"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t testingT) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCategoryRepository) CreateBatch(ctx context.Context, creates []dto.CategoryCreate) error {
	return m.Called(ctx, creates).Error(0)
}

func (m *MockCategoryRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.CategoryRead, error) {
	args := m.Called(ctx, userID)
	cats, _ := args.Get(0).([]*dto.CategoryRead)
	return cats, args.Error(1)
}

func (m *MockCategoryRepository) GetForUser(ctx context.Context, id, userID int64) (*dto.CategoryRead, error) {
	args := m.Called(ctx, id, userID)
	c, _ := args.Get(0).(*dto.CategoryRead)
	return c, args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func NewMockTransactionRepository(t testingT) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionRepository) Create(ctx context.Context, create dto.TransactionCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) GetForUser(ctx context.Context, id, userID int64) (*dto.TransactionRead, error) {
	args := m.Called(ctx, id, userID)
	t, _ := args.Get(0).(*dto.TransactionRead)
	return t, args.Error(1)
}

func (m *MockTransactionRepository) List(ctx context.Context, filter dto.TransactionFilter) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, filter)
	txs, _ := args.Get(0).([]*dto.TransactionRead)
	return txs, args.Error(1)
}

func (m *MockTransactionRepository) Update(ctx context.Context, id int64, update dto.TransactionUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) Totals(ctx context.Context, userID int64, from, to time.Time) (dto.Totals, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(dto.Totals), args.Error(1)
}

func (m *MockTransactionRepository) ExpensesByCategory(ctx context.Context, userID int64, from, to time.Time) ([]dto.CategorySpending, error) {
	args := m.Called(ctx, userID, from, to)
	s, _ := args.Get(0).([]dto.CategorySpending)
	return s, args.Error(1)
}

var (
	_ user.Repository        = (*MockUserRepository)(nil)
	_ category.Repository    = (*MockCategoryRepository)(nil)
	_ transaction.Repository = (*MockTransactionRepository)(nil)
)
