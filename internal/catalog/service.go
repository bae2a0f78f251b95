package catalog

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/multierr"

	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
)

// Service exposes the expanded variant catalog and reference lookups.
type Service struct {
	products    []ProductDefinition
	franchisees []Franchisee
	variants    []Variant
	byKey       map[VariantKey]Variant
}

// NewService validates the reference data and expands it once.
func NewService(products []ProductDefinition, franchisees []Franchisee) (*Service, error) {
	if err := validate(products, franchisees); err != nil {
		return nil, err
	}

	variants := Expand(products)
	byKey := make(map[VariantKey]Variant, len(variants))
	for _, v := range variants {
		byKey[v.Key()] = v
	}

	return &Service{
		products:    products,
		franchisees: franchisees,
		variants:    variants,
		byKey:       byKey,
	}, nil
}

// Expand flattens product definitions into one variant per product × size ×
// color. A product with no sizes or no colors contributes nothing. The
// result is sorted by (product code, color); sizes keep declared order
// within a code/color pair.
func Expand(products []ProductDefinition) []Variant {
	var variants []Variant
	for _, product := range products {
		for _, size := range product.Sizes {
			for _, color := range product.Colors {
				variants = append(variants, Variant{
					ProductCode: product.Code,
					ProductName: product.Name,
					Size:        size,
					Color:       color,
					UnitPrice:   product.UnitPrice,
					BatchID:     product.BatchID,
					BatchDate:   product.BatchDate,
					Grade:       product.Grade[size],
					Image:       product.Image,
				})
			}
		}
	}
	sort.SliceStable(variants, func(i, j int) bool {
		if variants[i].ProductCode != variants[j].ProductCode {
			return variants[i].ProductCode < variants[j].ProductCode
		}
		return variants[i].Color < variants[j].Color
	})
	return variants
}

// Variants returns the expanded catalog in display order.
func (s *Service) Variants() []Variant {
	out := make([]Variant, len(s.variants))
	copy(out, s.variants)
	return out
}

// Lookup resolves a variant by its join key.
func (s *Service) Lookup(key VariantKey) (Variant, bool) {
	v, ok := s.byKey[key]
	return v, ok
}

// Franchisees returns the static franchisee list.
func (s *Service) Franchisees() []Franchisee {
	out := make([]Franchisee, len(s.franchisees))
	copy(out, s.franchisees)
	return out
}

// FranchiseeName resolves the display name for a franchisee code.
func (s *Service) FranchiseeName(code string) (string, error) {
	for _, f := range s.franchisees {
		if f.Code == code {
			return f.StoreName, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeDataIntegrity, fmt.Sprintf("franchisee %q not found", code))
}

// BatchDate returns the date of the first product carrying the batch.
func (s *Service) BatchDate(batchID string) (time.Time, bool) {
	for _, p := range s.products {
		if p.BatchID == batchID {
			return p.BatchDate, true
		}
	}
	return time.Time{}, false
}

func validate(products []ProductDefinition, franchisees []Franchisee) error {
	var err error

	productCodes := map[string]struct{}{}
	for _, p := range products {
		if p.Code == "" {
			err = multierr.Append(err, fmt.Errorf("product %q has no code", p.Name))
			continue
		}
		if _, dup := productCodes[p.Code]; dup {
			err = multierr.Append(err, fmt.Errorf("duplicate product code %s", p.Code))
		}
		productCodes[p.Code] = struct{}{}

		if p.UnitPrice.IsNegative() {
			err = multierr.Append(err, fmt.Errorf("product %s has negative price", p.Code))
		}
		for _, size := range p.Sizes {
			if _, ok := p.Grade[size]; !ok {
				err = multierr.Append(err, fmt.Errorf("product %s declares size %q without a grade entry", p.Code, size))
			}
		}
	}

	franchiseeCodes := map[string]struct{}{}
	for _, f := range franchisees {
		if f.Code == "" {
			err = multierr.Append(err, fmt.Errorf("franchisee %q has no code", f.StoreName))
			continue
		}
		if _, dup := franchiseeCodes[f.Code]; dup {
			err = multierr.Append(err, fmt.Errorf("duplicate franchisee code %s", f.Code))
		}
		franchiseeCodes[f.Code] = struct{}{}
	}

	if err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}
