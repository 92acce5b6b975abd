package render

import (
	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

// recordIdentifiers emits the record reference, the notification type and
// every product identifier the record carries. The EAN is suppressed when it
// duplicates the ISBN; one proprietary identifier is added per stock-carrying
// availability with a supplier-assigned code, but only for stock exports.
func (r *batch) recordIdentifiers(p *product.Product) {
	r.comment("Unique product record ID", KindRecordIdentifiers)
	r.b.Text("RecordReference", p.RecordReference)

	r.commentDictionary("Notification type", dict.ListNotificationType, 4, KindPublishingStatus)
	r.b.Text("NotificationType", p.NotificationType)

	if product.Present(p.DeletionText) {
		r.comment("Present only when NotificationType is "+dict.NotificationDelete, KindRecordIdentifiers)
		r.b.Text("DeletionText", p.DeletionText)
	}

	if product.Present(p.ISBNValue) {
		r.comment("ISBN", KindRecordIdentifiers)
		r.productIdentifier(dict.ProductIDISBN13, "", p.ISBNValue)
	}

	if product.Present(p.EAN) && p.EAN != p.ISBNValue {
		r.comment("EAN-13 - only when it differs from the ISBN", KindRecordIdentifiers)
		r.productIdentifier(dict.ProductIDEAN, "", p.EAN)
	}

	if product.Present(p.DOI) {
		r.comment("DOI", KindRecordIdentifiers)
		r.productIdentifier(dict.ProductIDDOI, "", p.DOI)
	}

	if p.ExternalIdentifier != nil && product.Present(p.ExternalIdentifier.Value) {
		r.productIdentifier(dict.ProductIDProprietary, p.ExternalIdentifier.TypeName, p.ExternalIdentifier.Value)
	}

	if r.opts.Variant.IncludesStocks {
		for _, pa := range p.Availabilities {
			if product.Present(pa.SupplierIdentifier) {
				r.comment("Supplier identifier: "+pa.Supplier.Name, KindRecordIdentifiers)
				r.productIdentifier(dict.ProductIDProprietary, pa.Supplier.Name, pa.SupplierIdentifier)
			}
		}
	}
}

func (r *batch) productIdentifier(idType, typeName, value string) {
	r.b.Block("ProductIdentifier", func() {
		r.b.Text("ProductIDType", idType)
		if product.Present(typeName) {
			r.b.Text("IDTypeName", typeName)
		}
		r.b.Text("IDValue", value)
	})
}
