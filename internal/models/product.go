package models

import "github.com/lib/pq"

// Product categories shown in the storefront. Writes are validated against this list.
var ProductCategories = []string{
	"Dresses",
	"Accessories",
	"Combos",
	"Shirts",
	"Pants",
	"Sportswear",
	"Formals",
	"Casuals",
	"Branded",
}

// ValidCategory reports whether name is one of the fixed storefront categories.
func ValidCategory(name string) bool {
	for _, c := range ProductCategories {
		if c == name {
			return true
		}
	}
	return false
}

type Product struct {
	BaseModel
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Image       string         `json:"image"`
	Category    string         `gorm:"index" json:"category"`
	Trending    bool           `gorm:"index" json:"trending"`
	Description string         `json:"description"`
	DataAiHint  string         `json:"dataAiHint"`
	Sizes       pq.StringArray `gorm:"type:text[]" json:"sizes"`
	Stock       int            `json:"stock"`
}

// InStock reports whether the product can still be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
