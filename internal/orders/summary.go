package orders

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
)

// BatchDateUnavailable marks a batch no catalog product carries.
const BatchDateUnavailable = "N/A"

const dateLayout = "2006-01-02"

// BatchDates resolves an inbound batch to its date.
type BatchDates interface {
	BatchDate(batchID string) (time.Time, bool)
}

// FranchiseeNames resolves a franchisee code to its display name.
type FranchiseeNames interface {
	FranchiseeName(code string) (string, error)
}

// BatchSummary aggregates one inbound batch of the order.
type BatchSummary struct {
	BatchID    string          `json:"batch_id"`
	Quantity   int             `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
	BatchDate  string          `json:"batch_date"`
}

// OrderSummary holds whole-order totals and the per-batch breakdown.
type OrderSummary struct {
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	Batches       []BatchSummary  `json:"batches"`
}

// Summarize rolls order lines up into whole-order totals and per-batch
// sums. Empty input yields zero totals. Batches are sorted by identifier so
// repeated calls on the same input produce identical output.
func Summarize(lines []OrderLine, dates BatchDates) OrderSummary {
	summary := OrderSummary{TotalValue: decimal.Zero}

	byBatch := map[string]*BatchSummary{}
	for _, line := range lines {
		summary.TotalQuantity += line.Quantity
		summary.TotalValue = summary.TotalValue.Add(line.TotalValue)

		batch, ok := byBatch[line.BatchID]
		if !ok {
			batch = &BatchSummary{
				BatchID:    line.BatchID,
				TotalValue: decimal.Zero,
				BatchDate:  BatchDateUnavailable,
			}
			if dates != nil {
				if date, found := dates.BatchDate(line.BatchID); found {
					batch.BatchDate = date.Format(dateLayout)
				}
			}
			byBatch[line.BatchID] = batch
		}
		batch.Quantity += line.Quantity
		batch.TotalValue = batch.TotalValue.Add(line.TotalValue)
	}

	summary.Batches = make([]BatchSummary, 0, len(byBatch))
	for _, batch := range byBatch {
		summary.Batches = append(summary.Batches, *batch)
	}
	sort.Slice(summary.Batches, func(i, j int) bool {
		return summary.Batches[i].BatchID < summary.Batches[j].BatchID
	})
	return summary
}

// OrderHeader carries the order-level fields shared by every line.
type OrderHeader struct {
	FranchiseeCode   string                 `json:"franchisee_code"`
	FranchiseeName   string                 `json:"franchisee_name"`
	PaymentCondition enums.PaymentCondition `json:"payment_condition"`
	OrderDate        time.Time              `json:"order_date"`
}

// Header resolves the order header from the first line. An order with no
// lines has no header.
func Header(lines []OrderLine, names FranchiseeNames) (OrderHeader, error) {
	if len(lines) == 0 {
		return OrderHeader{}, pkgerrors.New(pkgerrors.CodeNotFound, "order has no lines")
	}
	first := lines[0]
	name, err := names.FranchiseeName(first.FranchiseeCode)
	if err != nil {
		return OrderHeader{}, pkgerrors.Wrap(pkgerrors.CodeDataIntegrity, err,
			fmt.Sprintf("resolving franchisee %q", first.FranchiseeCode))
	}
	return OrderHeader{
		FranchiseeCode:   first.FranchiseeCode,
		FranchiseeName:   name,
		PaymentCondition: first.PaymentCondition,
		OrderDate:        first.OrderDate,
	}, nil
}
