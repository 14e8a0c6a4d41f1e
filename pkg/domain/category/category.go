// Package category holds the per-user buckets that transactions are filed
// under.
package category

import "github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"

// UnknownName is shown for transactions whose category row is gone.
const UnknownName = "Desconocida"

// Category is a named INCOME or EXPENSE bucket owned by one user.
type Category struct {
	ID        int64
	UserID    int64
	Name      string
	Type      domain.EntryType
	IsDefault bool
}

var defaults = []struct {
	name string
	typ  domain.EntryType
}{
	{"Salario", domain.Income},
	{"Regalo", domain.Income},
	{"Comida y Bebidas", domain.Expense},
	{"Vivienda", domain.Expense},
	{"Transporte", domain.Expense},
	{"Ocio y Viajes", domain.Expense},
}

// Defaults returns the categories every new user starts with.
func Defaults(userID int64) []Category {
	out := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		out = append(out, Category{
			UserID:    userID,
			Name:      d.name,
			Type:      d.typ,
			IsDefault: true,
		})
	}
	return out
}
