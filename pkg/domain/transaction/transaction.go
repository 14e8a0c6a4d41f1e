// Package transaction holds the rules for dated income and expense entries.
package transaction

import (
	"strings"
	"time"

	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire and storage format of transaction dates.
const DateLayout = time.DateOnly

// MaxAmount is the largest value a NUMERIC(10,2) column holds.
var MaxAmount = decimal.RequireFromString("99999999.99")

// maxIntegerDigits is the number of digits MaxAmount has before the point.
const maxIntegerDigits = 8

// Transaction is a dated monetary event owned by a user.
type Transaction struct {
	ID          int64
	UserID      int64
	CategoryID  int64
	Amount      decimal.Decimal
	Type        domain.EntryType
	Description *string
	Date        time.Time
	CreatedAt   time.Time
}

// ParseAmount rounds amount to cents and checks that it is positive and fits
// the storage column. Magnitude is checked before rounding, since rounding a
// value like 1e900000000 rescales it digit by digit.
func ParseAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, errNotPositive()
	}
	// amount < 10^intDigits
	intDigits := int64(amount.NumDigits()) + int64(amount.Exponent())
	if intDigits > maxIntegerDigits {
		return decimal.Zero, errTooLarge()
	}
	if intDigits < -2 {
		return decimal.Zero, errNotPositive()
	}
	rounded := amount.Round(2)
	if !rounded.IsPositive() {
		return decimal.Zero, errNotPositive()
	}
	if rounded.GreaterThan(MaxAmount) {
		return decimal.Zero, errTooLarge()
	}
	return rounded, nil
}

func errNotPositive() error {
	return domain.NewValidationError("amount must be greater than zero")
}

func errTooLarge() error {
	return domain.NewValidationError("amount must not exceed %s", MaxAmount.StringFixed(2))
}

// ParseDate parses a YYYY-MM-DD calendar date. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, domain.NewValidationError("invalid date %q, expected YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatDate renders a calendar date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf truncates t to its calendar day in t's location, expressed as
// midnight UTC so it compares equal to dates read from storage.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
