package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ProductDefinition is immutable reference data describing one sellable
// product, its declared sizes/colors and the inbound batch it arrives in.
type ProductDefinition struct {
	Code      string
	Name      string
	Sizes     []string
	Colors    []string
	UnitPrice decimal.Decimal
	Image     string
	BatchID   string
	BatchDate time.Time
	Grade     map[string]int
}

// GradeFor returns the suggested grade quantity for a declared size.
func (p ProductDefinition) GradeFor(size string) (int, error) {
	grade, ok := p.Grade[size]
	if !ok {
		return 0, fmt.Errorf("product %s declares no grade for size %q", p.Code, size)
	}
	return grade, nil
}

// Variant is one sellable product × size × color combination.
type Variant struct {
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Color       string          `json:"color"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	BatchID     string          `json:"batch_id"`
	BatchDate   time.Time       `json:"batch_date"`
	Grade       int             `json:"grade"`
	Image       string          `json:"image"`
}

// Key returns the stable join key used to attach quantities to a variant.
func (v Variant) Key() VariantKey {
	return VariantKey{ProductCode: v.ProductCode, Size: v.Size, Color: v.Color}
}

// VariantKey identifies a variant by (product code, size, color).
type VariantKey struct {
	ProductCode string
	Size        string
	Color       string
}

const keySeparator = "_"

// String renders the key in the wire form used by quantity maps.
func (k VariantKey) String() string {
	return strings.Join([]string{k.ProductCode, k.Size, k.Color}, keySeparator)
}

// ParseVariantKey reverses VariantKey.String.
func ParseVariantKey(value string) (VariantKey, error) {
	parts := strings.SplitN(value, keySeparator, 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return VariantKey{}, fmt.Errorf("invalid variant key %q", value)
	}
	return VariantKey{ProductCode: parts[0], Size: parts[1], Color: parts[2]}, nil
}

// Franchisee is static reference data for an ordering store.
type Franchisee struct {
	Code      string `json:"code"`
	StoreName string `json:"store_name"`
}
