package catalog

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/Alberto-Moura/pedidos-backend/pkg/errors"
)

func TestExpandYieldsSizeTimesColorVariants(t *testing.T) {
	products := DefaultProducts()
	variants := Expand(products)

	want := 0
	for _, p := range products {
		want += len(p.Sizes) * len(p.Colors)
	}
	if len(variants) != want {
		t.Fatalf("expected %d variants, got %d", want, len(variants))
	}

	declared := map[string]ProductDefinition{}
	for _, p := range products {
		declared[p.Code] = p
	}
	for _, v := range variants {
		p, ok := declared[v.ProductCode]
		if !ok {
			t.Fatalf("variant references unknown product %s", v.ProductCode)
		}
		if !contains(p.Sizes, v.Size) {
			t.Fatalf("variant %s has undeclared size %q", v.Key(), v.Size)
		}
		if !contains(p.Colors, v.Color) {
			t.Fatalf("variant %s has undeclared color %q", v.Key(), v.Color)
		}
		if v.Grade != p.Grade[v.Size] {
			t.Fatalf("variant %s grade %d does not match product grade %d", v.Key(), v.Grade, p.Grade[v.Size])
		}
	}
}

func TestExpandOrderIsCodeThenColor(t *testing.T) {
	variants := Expand(DefaultProducts())

	sorted := sort.SliceIsSorted(variants, func(i, j int) bool {
		if variants[i].ProductCode != variants[j].ProductCode {
			return variants[i].ProductCode < variants[j].ProductCode
		}
		return variants[i].Color < variants[j].Color
	})
	if !sorted {
		t.Fatal("variants are not sorted by (code, color)")
	}
}

func TestExpandEmptySizesOrColors(t *testing.T) {
	products := []ProductDefinition{
		{Code: "P100", Name: "Sem tamanho", Colors: []string{"Azul"}, Grade: map[string]int{}},
		{Code: "P101", Name: "Sem cor", Sizes: []string{"M"}, Grade: map[string]int{"M": 1}},
	}
	if got := Expand(products); len(got) != 0 {
		t.Fatalf("expected zero variants, got %d", len(got))
	}
}

func TestExpandIsDeterministic(t *testing.T) {
	first := Expand(DefaultProducts())
	second := Expand(DefaultProducts())
	if len(first) != len(second) {
		t.Fatalf("expansion size changed between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Key() != second[i].Key() {
			t.Fatalf("expansion order changed at index %d: %s vs %s", i, first[i].Key(), second[i].Key())
		}
	}
}

func TestServiceLookupAndFranchiseeName(t *testing.T) {
	svc := newTestService(t)

	key := VariantKey{ProductCode: "P001", Size: "P", Color: "Vermelho"}
	v, ok := svc.Lookup(key)
	if !ok {
		t.Fatalf("expected variant for %s", key)
	}
	if !v.UnitPrice.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected unit price %s", v.UnitPrice)
	}

	name, err := svc.FranchiseeName("F001")
	if err != nil {
		t.Fatalf("franchisee name: %v", err)
	}
	if name != "Loja Centro" {
		t.Fatalf("unexpected store name %q", name)
	}

	_, err = svc.FranchiseeName("F999")
	if err == nil {
		t.Fatal("expected error for unknown franchisee")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDataIntegrity {
		t.Fatalf("expected data integrity code, got %v", err)
	}
}

func TestServiceBatchDate(t *testing.T) {
	svc := newTestService(t)

	date, ok := svc.BatchDate("Entrada 2")
	if !ok {
		t.Fatal("expected batch date for Entrada 2")
	}
	if !date.Equal(time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected batch date %s", date)
	}

	if _, ok := svc.BatchDate("Entrada 99"); ok {
		t.Fatal("expected no date for unknown batch")
	}
}

func TestNewServiceRejectsBrokenCatalog(t *testing.T) {
	products := []ProductDefinition{
		{Code: "P001", Name: "A", Sizes: []string{"M"}, Colors: []string{"Azul"}, Grade: map[string]int{}},
		{Code: "P001", Name: "B", Sizes: []string{"M"}, Colors: []string{"Azul"}, Grade: map[string]int{"M": 1}},
	}
	_, err := NewService(products, DefaultFranchisees())
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGradeForUndeclaredSize(t *testing.T) {
	p := DefaultProducts()[0]
	if _, err := p.GradeFor("GG"); err == nil {
		t.Fatal("expected error for undeclared size")
	}
	grade, err := p.GradeFor("M")
	if err != nil {
		t.Fatalf("grade for declared size: %v", err)
	}
	if grade != 15 {
		t.Fatalf("unexpected grade %d", grade)
	}
}

func TestVariantKeyRoundTrip(t *testing.T) {
	key := VariantKey{ProductCode: "P002", Size: "40", Color: "Bege"}
	parsed, err := ParseVariantKey(key.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != key {
		t.Fatalf("expected %v, got %v", key, parsed)
	}

	if _, err := ParseVariantKey("P002_40"); err == nil {
		t.Fatal("expected error for malformed key")
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(DefaultProducts(), DefaultFranchisees())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
