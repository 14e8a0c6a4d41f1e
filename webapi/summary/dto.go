package summary

import "github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"

// Totals are the figures of the dashboard cards.
type Totals struct {
	TotalBalance    float64 `json:"total_balance"`
	MonthlyIncome   float64 `json:"monthly_income"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
	BalanceChange   float64 `json:"balance_change"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// Response is the body of GET /api/data/summary.
type Response struct {
	UserName           string          `json:"user_name"`
	Summary            Totals          `json:"summary"`
	CategoriesSpending []CategoryTotal `json:"categories_spending"`
	Message            string          `json:"message"`
}

func toResponse(s *dto.Summary) Response {
	spending := make([]CategoryTotal, 0, len(s.CategoriesSpending))
	for _, cs := range s.CategoriesSpending {
		spending = append(spending, CategoryTotal{Name: cs.Name, Total: cs.Total.InexactFloat64()})
	}
	return Response{
		UserName: s.UserName,
		Summary: Totals{
			TotalBalance:    s.Balance.InexactFloat64(),
			MonthlyIncome:   s.Income.InexactFloat64(),
			MonthlyExpenses: s.Expenses.InexactFloat64(),
			BalanceChange:   s.BalanceChange,
		},
		CategoriesSpending: spending,
		Message:            "Dashboard data loaded successfully",
	}
}
