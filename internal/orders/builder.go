package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alberto-Moura/pedidos-backend/internal/catalog"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
)

// cashDiscountFactor prices the cash condition at 6% off.
var cashDiscountFactor = decimal.NewFromFloat(0.94)

// OrderLine is one priced entry of a built order.
type OrderLine struct {
	FranchiseeCode   string                 `json:"franchisee_code"`
	PaymentCondition enums.PaymentCondition `json:"payment_condition"`
	OrderDate        time.Time              `json:"order_date"`
	BatchID          string                 `json:"batch_id"`
	ProductCode      string                 `json:"product_code"`
	SizeColor        string                 `json:"size_color"`
	Quantity         int                    `json:"quantity"`
	TotalValue       decimal.Decimal        `json:"total_value"`
}

// Build converts requested quantities into priced order lines. Variants with
// a quantity of zero or less are not ordered. The result replaces any prior
// order in full; Build never merges. Pure function of its inputs.
//
// Any condition other than cash prices at the plain unit price, including
// values outside the enumerated set; callers are expected to validate the
// condition at the boundary.
func Build(variants []catalog.Variant, quantities map[catalog.VariantKey]int, franchiseeCode string, condition enums.PaymentCondition, today time.Time) []OrderLine {
	lines := make([]OrderLine, 0, len(variants))
	for _, variant := range variants {
		qty := quantities[variant.Key()]
		if qty <= 0 {
			continue
		}
		unitPrice := effectiveUnitPrice(variant.UnitPrice, condition)
		lines = append(lines, OrderLine{
			FranchiseeCode:   franchiseeCode,
			PaymentCondition: condition,
			OrderDate:        today,
			BatchID:          variant.BatchID,
			ProductCode:      variant.ProductCode,
			SizeColor:        variant.Size + " - " + variant.Color,
			Quantity:         qty,
			TotalValue:       decimal.NewFromInt(int64(qty)).Mul(unitPrice).Round(2),
		})
	}
	return lines
}

func effectiveUnitPrice(unitPrice decimal.Decimal, condition enums.PaymentCondition) decimal.Decimal {
	if condition.IsCash() {
		return unitPrice.Mul(cashDiscountFactor)
	}
	return unitPrice
}
