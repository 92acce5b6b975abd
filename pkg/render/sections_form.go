package render

import (
	"strconv"

	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

// legacyFormCodes maps form codes retired between the dialects to the
// equivalents that 3.0.1 consumers still understand. Codes outside the table
// pass through unchanged.
var legacyFormCodes = map[string]string{
	"AN": "AJ",
	"AO": "AJ",
	"ED": "DG",
	"EL": "DG",
}

// productForm emits the fixed product composition plus the form code. The
// two dialects place form details differently: 3.0.1 keeps ProductForm here
// and moves the detail codes to the e-publication section, 3.0.2 pairs
// ProductForm with its ProductFormDetail codes in one spot.
func (r *batch) productForm(p *product.Product) {
	r.comment("Currently always 00 - single-item retail product", KindProductForm)
	r.b.Text("ProductComposition", dict.CompositionSingleItem)

	if !product.Present(p.ProductFormCode) {
		return
	}

	switch r.opts.Dialect {
	case Dialect301:
		code := p.ProductFormCode
		if mapped, ok := legacyFormCodes[code]; ok {
			code = mapped
		}
		r.commentDictionary("Product format", dict.ListProductForm, 10, KindProductForm)
		r.b.Text("ProductForm", code)
	case Dialect302:
		r.commentDictionary("Product format", dict.ListProductForm, 10, KindProductForm)
		r.b.Text("ProductForm", p.ProductFormCode)
		for _, detail := range p.ProductFormDetails {
			r.b.Text("ProductFormDetail", detail)
		}
	}
}

// epubDetails emits the digital-product attributes. Under dialect 3.0.1 the
// form detail codes live here; under 3.0.2 productForm already emitted them.
func (r *batch) epubDetails(p *product.Product) {
	if r.opts.Dialect == Dialect301 && len(p.ProductFormDetails) > 0 {
		r.commentDictionary("Available product formats", dict.ListProductForm, 10, KindEpubDetails)
		for _, code := range p.ProductFormDetails {
			r.b.Text("ProductFormDetail", code)
		}
	}

	if p.Kind.Digital() && product.Present(p.EpubTechnicalProtection) {
		r.commentDictionary("Technical protection", dict.ListEpubProtection, 10, KindEpubDetails)
		r.b.Text("EpubTechnicalProtection", p.EpubTechnicalProtection)
	}

	if p.Kind.Digital() && product.Present(p.PreviewStatus) {
		r.b.Block("EpubUsageConstraint", func() {
			r.comment("Constraint type - always "+dict.UsagePreview+" (availability of a book fragment)", KindEpubDetails)
			r.b.Text("EpubUsageType", dict.UsagePreview)
			r.commentDictionary("Publisher's decision", dict.ListEpubUsageStatus, 12, KindEpubDetails)
			r.b.Text("EpubUsageStatus", p.PreviewStatus)
			if p.PreviewStatus == dict.UsageLimited && p.PreviewLimit != nil {
				r.b.Block("EpubUsageLimit", func() {
					r.b.Text("Quantity", strconv.Itoa(*p.PreviewLimit))
					r.commentDictionary("Limit unit", dict.ListEpubUsageUnit, 12, KindEpubDetails)
					r.b.Text("EpubUsageUnit", p.PreviewUnit)
				})
			}
		})
	}
}
