package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultProducts returns the seeded product catalog. Created once at
// process start and never mutated.
func DefaultProducts() []ProductDefinition {
	return []ProductDefinition{
		{
			Code:      "P001",
			Name:      "Camiseta",
			Sizes:     []string{"P", "M", "G"},
			Colors:    []string{"Vermelho", "Azul"},
			UnitPrice: decimal.NewFromFloat(50.0),
			Image:     "https://luposport.vtexassets.com/arquivos/ids/225845-1200-auto",
			BatchID:   "Entrada 1",
			BatchDate: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			Grade:     map[string]int{"P": 10, "M": 15, "G": 20},
		},
		{
			Code:      "P002",
			Name:      "Calça",
			Sizes:     []string{"38", "40", "42"},
			Colors:    []string{"Preto", "Bege"},
			UnitPrice: decimal.NewFromFloat(100.0),
			Image:     "https://luposport.vtexassets.com/arquivos/ids/234606-1200-auto",
			BatchID:   "Entrada 2",
			BatchDate: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
			Grade:     map[string]int{"38": 5, "40": 10, "42": 15},
		},
		{
			Code:      "P003",
			Name:      "Jaqueta",
			Sizes:     []string{"M", "G"},
			Colors:    []string{"Preto", "Azul"},
			UnitPrice: decimal.NewFromFloat(200.0),
			Image:     "https://luposport.vtexassets.com/arquivos/ids/230553-1200-auto",
			BatchID:   "Entrada 3",
			BatchDate: time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
			Grade:     map[string]int{"M": 8, "G": 12},
		},
	}
}

// DefaultFranchisees returns the seeded franchisee list.
func DefaultFranchisees() []Franchisee {
	return []Franchisee{
		{Code: "F001", StoreName: "Loja Centro"},
		{Code: "F002", StoreName: "Loja Norte"},
		{Code: "F003", StoreName: "Loja Sul"},
	}
}
