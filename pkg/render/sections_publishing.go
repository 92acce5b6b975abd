package render

import (
	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

func (r *batch) publisherInfo(p *product.Product) {
	if product.Present(p.ImprintName) {
		r.b.Block("Imprint", func() {
			r.comment("Imprint name", KindPublisherInfo)
			r.b.Text("ImprintName", p.ImprintName)
		})
	}

	if product.Present(p.PublisherName) {
		r.b.Block("Publisher", func() {
			r.comment("Publisher - only role "+dict.PublishingRolePublisher+" (main publisher)", KindPublisherInfo)
			r.b.Text("PublishingRole", dict.PublishingRolePublisher)
			if product.Present(p.PublisherID) {
				r.b.Block("PublisherIdentifier", func() {
					r.b.Text("PublisherIDType", "01")
					r.b.Text("IDTypeName", "ElibriPublisherCode")
					r.b.Text("IDValue", p.PublisherID)
				})
			}
			r.b.Text("PublisherName", p.PublisherName)
		})
	}

	if product.Present(p.CityOfPublication) {
		r.b.Text("CityOfPublication", p.CityOfPublication)
	}
}

// publishingStatus emits the record's life-cycle code plus up to three
// PublishingDate blocks: the (possibly partial) publication date, the
// preorder embargo and the out-of-print date.
func (r *batch) publishingStatus(p *product.Product) {
	if product.Present(p.PublishingStatusCode) {
		r.commentDictionary("Publishing status", dict.ListPublishingStatus, 10, KindPublishingStatus)
		r.b.Text("PublishingStatus", p.PublishingStatusCode)
	}

	if date, formatCode := p.PublicationDate(); date != "" {
		r.b.Block("PublishingDate", func() {
			r.comment(dict.PublicationDate+" - publication date", KindPublishingStatus)
			r.b.Text("PublishingDateRole", dict.PublicationDate)
			r.commentDictionary("Date format", dict.ListDateFormat, 12, KindPublishingStatus)
			r.b.Text("DateFormat", formatCode)
			r.b.Text("Date", date)
		})
	}

	if p.DistributionStart != nil {
		r.b.Block("PublishingDate", func() {
			r.comment(dict.PreorderEmbargo+" - the date orders start being accepted", KindPublishingStatus)
			r.b.Text("PublishingDateRole", dict.PreorderEmbargo)
			r.b.Text("DateFormat", dict.DateYYYYMMDD)
			r.b.Text("Date", p.DistributionStart.Format("20060102"))
		})
	}

	if p.EpubSaleRestrictedTo != nil && !p.EpubSaleNotRestricted {
		r.b.Block("PublishingDate", func() {
			r.comment(dict.OutOfPrintDate+" - the licence expiry date", KindPublishingStatus)
			r.b.Text("PublishingDateRole", dict.OutOfPrintDate)
			r.b.Text("DateFormat", dict.DateYYYYMMDD)
			r.b.Text("Date", p.EpubSaleRestrictedTo.Format("20060102"))
		})
	}
}

// territorialRights restricts sales to Poland or opens them worldwide; when
// the record says nothing about territory the block is absent.
func (r *batch) territorialRights(p *product.Product) {
	if p.SaleRestrictedToPoland == nil {
		return
	}
	r.b.Block("SalesRights", func() {
		r.comment("Restriction type - sale allowed in the named country or region only, always 01", KindTerritorialRights)
		r.b.Text("SalesRightsType", "01")
		r.b.Block("Territory", func() {
			if *p.SaleRestrictedToPoland {
				r.b.Text("CountriesIncluded", "PL")
			} else {
				r.b.Text("RegionsIncluded", "WORLD")
			}
		})
	})
}

// saleRestrictions communicates a retailer exclusivity window; its end date
// should be treated as the effective premiere date.
func (r *batch) saleRestrictions(p *product.Product) {
	if !p.SaleRestricted() {
		return
	}
	r.b.Block("SalesRestriction", func() {
		r.comment("Restriction type - only "+dict.RestrictionRetailerExclusive+" (sale through a designated retailer)", KindSaleRestrictions)
		r.b.Text("SalesRestrictionType", dict.RestrictionRetailerExclusive)
		r.b.Block("SalesOutlet", func() {
			r.b.Text("SalesOutletName", p.SaleRestrictedFor)
		})
		r.comment("The restriction expires "+p.SaleRestrictedTo.Format("02.01.2006"), KindSaleRestrictions)
		r.b.Text("EndDate", p.SaleRestrictedTo.Format("20060102"))
	})
}
