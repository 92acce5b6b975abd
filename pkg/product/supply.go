package product

import "time"

// Supplier identifies the party a retailer orders from. TaxID is the
// national tax number (NIP) used as a proprietary supplier identifier.
type Supplier struct {
	Name     string
	Role     string
	TaxID    string
	Phone    string
	Email    string
	Websites []string
}

// StockInfo is an exact stock figure. OnHand and Proximity are always
// emitted together; the model carries no coded-quantity alternative.
type StockInfo struct {
	OnHand    int
	Proximity string
}

// PriceInfo is one price communicated for an availability. Amount and
// VatRate are strings and integers as supplied by the publisher; no
// arithmetic is ever performed on them.
type PriceInfo struct {
	Amount               string
	CurrencyCode         string
	VatRate              *int
	MinimumOrderQuantity *int
	EffectiveFrom        *time.Time
}

// Availability describes the product's standing at one supplier, including
// the supplier-assigned product code when one exists.
type Availability struct {
	Supplier           Supplier
	SupplierIdentifier string
	AvailabilityCode   string
	Stock              *StockInfo
	Prices             []PriceInfo
}
