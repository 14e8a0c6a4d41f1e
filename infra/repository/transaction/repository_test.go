package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var rowColumns = []string{
	"id", "user_id", "category_id", "amount", "type", "description",
	"transaction_date", "created_at", "category_name",
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func day(s string) time.Time {
	d, _ := time.Parse(time.DateOnly, s)
	return d
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	desc := "rent"

	mock.ExpectQuery(`INSERT INTO "transactions" (.+) VALUES (.+) RETURNING "id"`).
		WithArgs(int64(5), int64(4), sqlmock.AnyArg(), "EXPENSE", &desc, day("2024-03-01"), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	id, err := repo.Create(context.Background(), dto.TransactionCreate{
		UserID:      5,
		CategoryID:  4,
		Amount:      decimal.RequireFromString("800.00"),
		Type:        domain.Expense,
		Description: &desc,
		Date:        day("2024-03-01"),
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_FiltersAndPlaceholder(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	from, to := day("2024-03-01"), day("2024-03-31")

	mock.ExpectQuery(`SELECT t\.\*, COALESCE\(c\.name, \$1\) AS category_name FROM transactions AS t ` +
		`LEFT JOIN categories c ON c\.id = t\.category_id ` +
		`WHERE t\.user_id = \$2 AND t\.transaction_date >= \$3 AND t\.transaction_date <= \$4 ` +
		`AND t\.type = \$5 AND t\.category_id = \$6 ` +
		`ORDER BY t\.transaction_date DESC, t\.id DESC`).
		WithArgs("Desconocida", int64(5), from, to, "EXPENSE", int64(4)).
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow(12, 5, 4, "45.50", "EXPENSE", nil, day("2024-03-10"), time.Now(), "Desconocida").
			AddRow(11, 5, 4, "800.00", "EXPENSE", "rent", day("2024-03-01"), time.Now(), "Vivienda"))

	txs, err := repo.List(context.Background(), dto.TransactionFilter{
		UserID:     5,
		From:       &from,
		To:         &to,
		Type:       domain.Expense,
		CategoryID: 4,
	})
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, int64(12), txs[0].ID)
	assert.Equal(t, "Desconocida", txs[0].CategoryName)
	assert.Nil(t, txs[0].Description)
	assert.True(t, decimal.RequireFromString("45.5").Equal(txs[0].Amount))

	assert.Equal(t, "Vivienda", txs[1].CategoryName)
	require.NotNil(t, txs[1].Description)
	assert.Equal(t, "rent", *txs[1].Description)
	assert.Equal(t, day("2024-03-01"), txs[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_NoFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`FROM transactions AS t LEFT JOIN categories c ON c\.id = t\.category_id WHERE t\.user_id = \$2 ORDER BY`).
		WithArgs("Desconocida", int64(5)).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	txs, err := repo.List(context.Background(), dto.TransactionFilter{UserID: 5})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRepository_GetForUser_NotOwned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`WHERE t\.id = \$2 AND t\.user_id = \$3`).
		WillReturnRows(sqlmock.NewRows(rowColumns))

	tx, err := repo.GetForUser(context.Background(), 11, 6)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestRepository_Update_OnlySetFields(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	amount := decimal.RequireFromString("900.00")

	mock.ExpectExec(`UPDATE "transactions" SET "amount"=\$1,"description"=\$2 WHERE id = \$3`).
		WithArgs(sqlmock.AnyArg(), nil, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), 11, dto.TransactionUpdate{
		Amount:           &amount,
		ClearDescription: true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	require.NoError(t, repo.Update(context.Background(), 11, dto.TransactionUpdate{}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(11), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(11), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 11, 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), 11, 6)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_Totals(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	from, to := day("2024-03-01"), day("2024-03-15")

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(CASE WHEN type = \$1 THEN amount END\), 0\) AS income, ` +
		`COALESCE\(SUM\(CASE WHEN type = \$2 THEN amount END\), 0\) AS expenses FROM "transactions" ` +
		`WHERE user_id = \$3 AND transaction_date BETWEEN \$4 AND \$5`).
		WithArgs("INCOME", "EXPENSE", int64(5), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"income", "expenses"}).AddRow("1500.00", "845.50"))

	totals, err := repo.Totals(context.Background(), 5, from, to)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1500").Equal(totals.Income))
	assert.True(t, decimal.RequireFromString("845.5").Equal(totals.Expenses))
}

func TestRepository_ExpensesByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	from, to := day("2024-03-01"), day("2024-03-15")

	mock.ExpectQuery(`SELECT c\.name AS name, SUM\(t\.amount\) AS total FROM transactions AS t ` +
		`JOIN categories c ON c\.id = t\.category_id WHERE .+ GROUP BY .*name.* ORDER BY total DESC`).
		WithArgs(int64(5), "EXPENSE", from, to).
		WillReturnRows(sqlmock.NewRows([]string{"name", "total"}).
			AddRow("Vivienda", "800.00").
			AddRow("Comida y Bebidas", "45.50"))

	spending, err := repo.ExpensesByCategory(context.Background(), 5, from, to)
	require.NoError(t, err)
	require.Len(t, spending, 2)
	assert.Equal(t, "Vivienda", spending[0].Name)
	assert.True(t, decimal.RequireFromString("45.5").Equal(spending[1].Total))
}
