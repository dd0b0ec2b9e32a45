package models

import "github.com/vijay-heerarajan/billing-app/validation"

// Product is a catalog entry owned by a single user namespace.
// Invoice lines copy its fields; they never hold a reference to it.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	HSN      string  `json:"hsn"`
	Rate     float64 `json:"rate"`
	CGSTRate float64 `json:"cgstRate"`
	SGSTRate float64 `json:"sgstRate"`
}

func (p Product) Check(v validation.Violations) {
	validation.Required("name", p.Name, v)
	validation.NonNegativeFloat("rate", p.Rate, v)
	validation.RangeFloat("cgstRate", p.CGSTRate, 0, 100, v)
	validation.RangeFloat("sgstRate", p.SGSTRate, 0, 100, v)
}
