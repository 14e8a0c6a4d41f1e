package transaction

import (
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/domain/transaction"
	"github.com/briancito0432-afk/gestomoney-proyect/pkg/dto"
	"github.com/briancito0432-afk/gestomoney-proyect/webapi/common"
	"github.com/shopspring/decimal"
)

// CreateInput is the request body of POST /api/transactions. Amount and
// category_id accept numbers or numeric strings.
type CreateInput struct {
	Amount      *decimal.Decimal  `json:"amount" swaggertype:"number"`
	Type        string            `json:"type" example:"EXPENSE"`
	CategoryID  common.FlexibleID `json:"category_id" swaggertype:"integer"`
	Date        string            `json:"date" example:"2024-03-15"`
	Description *string           `json:"description"`
}

func (in *CreateInput) command() dto.TransactionCommand {
	return dto.TransactionCommand{
		Amount:      in.Amount,
		Type:        in.Type,
		CategoryID:  int64(in.CategoryID),
		Date:        in.Date,
		Description: in.Description,
	}
}

// UpdateInput is the request body of PUT /api/transactions/{id}. Absent
// fields are left unchanged; a null description clears it.
type UpdateInput struct {
	Amount      *decimal.Decimal     `json:"amount" swaggertype:"number"`
	Type        *string              `json:"type"`
	CategoryID  *common.FlexibleID   `json:"category_id" swaggertype:"integer"`
	Description dto.Optional[string] `json:"description" swaggertype:"string"`
	Date        *string              `json:"date"`
}

func (in *UpdateInput) patch() dto.TransactionPatch {
	return dto.TransactionPatch{
		Amount:      in.Amount,
		Type:        in.Type,
		CategoryID:  in.CategoryID.Int64(),
		Description: in.Description,
		Date:        in.Date,
	}
}

// CreateResponse reports the id of a new transaction.
type CreateResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Item is one transaction of a listing.
type Item struct {
	ID           int64   `json:"id"`
	Amount       float64 `json:"amount"`
	Type         string  `json:"type"`
	Description  *string `json:"description"`
	Date         string  `json:"date"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

// ListResponse is the body of GET /api/transactions.
type ListResponse struct {
	Transactions []Item `json:"transactions"`
	Count        int    `json:"count"`
	Message      string `json:"message"`
}

func toListResponse(txs []*dto.TransactionRead) ListResponse {
	items := make([]Item, 0, len(txs))
	for _, tx := range txs {
		items = append(items, Item{
			ID:           tx.ID,
			Amount:       tx.Amount.InexactFloat64(),
			Type:         string(tx.Type),
			Description:  tx.Description,
			Date:         transaction.FormatDate(tx.Date),
			CategoryID:   tx.CategoryID,
			CategoryName: tx.CategoryName,
		})
	}
	return ListResponse{
		Transactions: items,
		Count:        len(items),
		Message:      "Lista de transacciones cargada con éxito",
	}
}
