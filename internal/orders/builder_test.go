package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alberto-Moura/pedidos-backend/internal/catalog"
	"github.com/Alberto-Moura/pedidos-backend/pkg/enums"
)

var buildDate = time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

func TestBuildCashDiscountScenario(t *testing.T) {
	// One product, sizes P and M, only P ordered, cash condition.
	variants := catalog.Expand(testProducts())
	quantities := map[catalog.VariantKey]int{
		{ProductCode: "P001", Size: "P", Color: "Vermelho"}: 3,
		{ProductCode: "P001", Size: "M", Color: "Vermelho"}: 0,
	}

	lines := Build(variants, quantities, "F001", enums.PaymentConditionCash, buildDate)

	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, "F001", line.FranchiseeCode)
	assert.Equal(t, enums.PaymentConditionCash, line.PaymentCondition)
	assert.Equal(t, "Entrada 1", line.BatchID)
	assert.Equal(t, "P001", line.ProductCode)
	assert.Equal(t, "P - Vermelho", line.SizeColor)
	assert.Equal(t, 3, line.Quantity)
	assert.True(t, line.TotalValue.Equal(decimal.RequireFromString("141.00")),
		"expected 3 x 50 x 0.94 = 141.00, got %s", line.TotalValue)
}

func TestBuildWithoutDiscountScenario(t *testing.T) {
	variants := catalog.Expand(testProducts())
	quantities := map[catalog.VariantKey]int{
		{ProductCode: "P001", Size: "P", Color: "Vermelho"}: 3,
	}

	lines := Build(variants, quantities, "F001", enums.PaymentCondition30Days, buildDate)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].TotalValue.Equal(decimal.RequireFromString("150.00")),
		"expected 3 x 50 = 150.00, got %s", lines[0].TotalValue)
}

func TestBuildUnrecognizedConditionGetsNoDiscount(t *testing.T) {
	variants := catalog.Expand(testProducts())
	quantities := map[catalog.VariantKey]int{
		{ProductCode: "P001", Size: "P", Color: "Vermelho"}: 2,
	}

	lines := Build(variants, quantities, "F001", enums.PaymentCondition("parcelado"), buildDate)

	require.Len(t, lines, 1)
	assert.True(t, lines[0].TotalValue.Equal(decimal.NewFromInt(100)),
		"unknown condition must price at the plain unit price, got %s", lines[0].TotalValue)
}

func TestBuildFiltersNonPositiveQuantities(t *testing.T) {
	variants := catalog.Expand(testProducts())
	quantities := map[catalog.VariantKey]int{
		{ProductCode: "P001", Size: "P", Color: "Vermelho"}: 0,
		{ProductCode: "P001", Size: "M", Color: "Vermelho"}: -4,
		{ProductCode: "P001", Size: "G", Color: "Vermelho"}: 1,
	}

	lines := Build(variants, quantities, "F001", enums.PaymentCondition60Days, buildDate)

	require.Len(t, lines, 1)
	assert.Equal(t, "G - Vermelho", lines[0].SizeColor)
}

func TestBuildOrderedVariantAppearsExactlyOnce(t *testing.T) {
	variants := catalog.Expand(catalog.DefaultProducts())
	key := catalog.VariantKey{ProductCode: "P002", Size: "40", Color: "Preto"}
	quantities := map[catalog.VariantKey]int{key: 7}

	lines := Build(variants, quantities, "F002", enums.PaymentCondition90Days, buildDate)

	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.Equal(t, "P002", lines[0].ProductCode)
}

func TestBuildIsIdempotent(t *testing.T) {
	variants := catalog.Expand(catalog.DefaultProducts())
	quantities := map[catalog.VariantKey]int{
		{ProductCode: "P001", Size: "M", Color: "Azul"}:  2,
		{ProductCode: "P003", Size: "G", Color: "Preto"}: 5,
	}

	first := Build(variants, quantities, "F003", enums.PaymentConditionCash, buildDate)
	second := Build(variants, quantities, "F003", enums.PaymentConditionCash, buildDate)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].SizeColor, second[i].SizeColor)
		assert.True(t, first[i].TotalValue.Equal(second[i].TotalValue))
	}
}

func TestBuildRoundsHalfUpToCurrency(t *testing.T) {
	products := []catalog.ProductDefinition{{
		Code:      "P010",
		Name:      "Meia",
		Sizes:     []string{"U"},
		Colors:    []string{"Branco"},
		UnitPrice: decimal.RequireFromString("9.99"),
		BatchID:   "Entrada 9",
		Grade:     map[string]int{"U": 1},
	}}
	variants := catalog.Expand(products)
	quantities := map[catalog.VariantKey]int{
		{ProductCode: "P010", Size: "U", Color: "Branco"}: 5,
	}

	lines := Build(variants, quantities, "F001", enums.PaymentConditionCash, buildDate)

	require.Len(t, lines, 1)
	// 5 x 9.99 x 0.94 = 46.953 -> 46.95
	assert.True(t, lines[0].TotalValue.Equal(decimal.RequireFromString("46.95")),
		"expected 46.95, got %s", lines[0].TotalValue)
}

func testProducts() []catalog.ProductDefinition {
	return []catalog.ProductDefinition{{
		Code:      "P001",
		Name:      "Camiseta",
		Sizes:     []string{"P", "M", "G"},
		Colors:    []string{"Vermelho"},
		UnitPrice: decimal.NewFromInt(50),
		BatchID:   "Entrada 1",
		BatchDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		Grade:     map[string]int{"P": 10, "M": 15, "G": 20},
	}}
}
