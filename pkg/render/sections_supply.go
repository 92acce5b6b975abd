package render

import (
	"strconv"
	"strings"

	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

// supplyDetails renders the full ProductSupply tree: one SupplyDetail per
// availability with supplier identity, availability code, stock figures and
// price blocks. Products that opt out of supply data, or expose no
// availabilities at all, contribute nothing.
func (r *batch) supplyDetails(p *product.Product) {
	if p.SkipProductSupply || len(p.Availabilities) == 0 {
		return
	}

	r.b.Block("ProductSupply", func() {
		for i := range p.Availabilities {
			pa := &p.Availabilities[i]
			r.b.Block("SupplyDetail", func() {
				r.supplier(&pa.Supplier)

				r.commentDictionary("Availability type", dict.ListProductAvailability, 10, KindSupplyDetails)
				r.b.Text("ProductAvailability", pa.AvailabilityCode)

				if pa.Stock != nil {
					r.b.Block("Stock", func() {
						r.b.Text("OnHand", strconv.Itoa(pa.Stock.OnHand))
						proximity := pa.Stock.Proximity
						if !product.Present(proximity) {
							proximity = dict.ProximityExactly
						}
						r.b.Text("Proximity", proximity)
					})
				}

				if p.PackQuantity != nil {
					r.comment("How many copies the supplier packs together", KindSupplyDetails)
					r.b.Text("PackQuantity", strconv.Itoa(*p.PackQuantity))
				}

				for j := range pa.Prices {
					r.price(p, &pa.Prices[j])
				}
			})
		}
	})
}

func (r *batch) supplier(s *product.Supplier) {
	r.b.Block("Supplier", func() {
		r.commentDictionary("Supplier role", dict.ListSupplierRole, 12, KindSupplyDetails)
		r.b.Text("SupplierRole", s.Role)

		if product.Present(s.TaxID) {
			r.b.Block("SupplierIdentifier", func() {
				r.comment("Always "+dict.SupplierIDProprietary+" - proprietary. Suppliers are identified by tax id", KindSupplyDetails)
				r.b.Text("SupplierIDType", dict.SupplierIDProprietary)
				r.b.Text("IDTypeName", "NIP")
				r.b.Text("IDValue", strings.ReplaceAll(s.TaxID, "-", ""))
			})
		}

		r.b.Text("SupplierName", s.Name)
		if product.Present(s.Phone) {
			r.b.Text("TelephoneNumber", s.Phone)
		}
		if product.Present(s.Email) {
			r.b.Text("EmailAddress", s.Email)
		}
		for _, site := range s.Websites {
			if !product.Present(site) {
				continue
			}
			link := site
			r.b.Block("Website", func() {
				r.b.Text("WebsiteLink", link)
			})
		}
	})
}

func (r *batch) price(p *product.Product, info *product.PriceInfo) {
	r.b.Block("Price", func() {
		r.commentDictionary("Price type", dict.ListPriceType, 12, KindSupplyDetails)
		r.b.Text("PriceType", dict.PriceRRPWithTax)
		if info.MinimumOrderQuantity != nil {
			r.b.Text("MinimumOrderQuantity", strconv.Itoa(*info.MinimumOrderQuantity))
		}
		r.b.Text("PriceAmount", info.Amount)

		r.b.Block("Tax", func() {
			r.comment("VAT", KindSupplyDetails)
			r.b.Text("TaxType", dict.TaxVAT)
			if info.VatRate != nil {
				r.b.Text("TaxRatePercent", strconv.Itoa(*info.VatRate))
			}
		})

		r.b.Text("CurrencyCode", info.CurrencyCode)

		if product.Present(p.PricePrintedOnProduct) {
			r.commentDictionary("Price printed on the cover?", dict.ListPrintedOnProduct, 12, KindSupplyDetails)
			r.b.Text("PrintedOnProduct", p.PricePrintedOnProduct)
			r.comment("Always "+dict.PositionUnknown+" - unknown / unspecified", KindSupplyDetails)
			r.b.Text("PositionOnProduct", dict.PositionUnknown)
		}

		if info.EffectiveFrom != nil {
			r.b.Block("PriceDate", func() {
				r.comment(dict.PriceFromDate+" - the price applies from this date", KindSupplyDetails)
				r.b.Text("PriceDateRole", dict.PriceFromDate)
				r.b.Text("Date", info.EffectiveFrom.Format("20060102"))
			})
		}
	})
}
