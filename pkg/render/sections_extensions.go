package render

import (
	"fmt"
	"strconv"

	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/xmlbuild"
)

// elibriExtensions carries the attributes the ONIX standard has no place
// for, under the vendor namespace declared in the envelope. The caller has
// already checked that extensions are enabled for the active dialect.
func (r *batch) elibriExtensions(p *product.Product) {
	ext := func(name string) string { return extensionPrefix + ":" + name }

	if product.Present(p.CoverType) {
		r.comment("Cover format")
		r.b.Text(ext("CoverType"), p.CoverType)
	}
	if product.Present(p.CoverPrice) {
		r.comment("Cover price")
		r.b.Text(ext("CoverPrice"), p.CoverPrice)
	}
	if p.Vat != nil {
		r.comment("VAT in percent")
		r.b.Text(ext("Vat"), strconv.Itoa(*p.Vat))
	}
	if product.Present(p.PKWiU) {
		r.b.Text(ext("PKWiU"), p.PKWiU)
	}
	if product.Present(p.PDWExclusiveness) {
		r.b.Text(ext("PDWExclusiveness"), p.PDWExclusiveness)
	}

	r.b.Text(ext("preview_exists"), strconv.FormatBool(p.PreviewExists))

	if p.Kind.Digital() {
		if p.EpubSaleNotRestricted || p.EpubSaleRestrictedTo == nil {
			r.b.Empty(ext("SaleNotRestricted"))
		} else {
			r.b.Text(ext("SaleRestrictedTo"), p.EpubSaleRestrictedTo.Format("20060102"))
		}
	}

	if product.Present(p.HyphenatedISBN) {
		r.b.Text(ext("HyphenatedISBN"), p.HyphenatedISBN)
	}

	if p.Kind.Digital() {
		if len(p.Excerpts) > 0 {
			r.b.Block(ext("excerpts"), func() {
				for _, excerpt := range p.Excerpts {
					e := excerpt
					r.b.Text(ext("excerpt"),
						fmt.Sprintf("%s/excerpt/%d", defaultMediaHost, e.ID),
						fileAssetAttrs(e, true)...)
				}
			})
		}
		if len(p.Masters) > 0 {
			r.b.Block(ext("masters"), func() {
				for _, master := range p.Masters {
					r.b.Empty(ext("master"), fileAssetAttrs(master, false)...)
				}
			})
		}
	}
}

// fileAssetAttrs describes one stored file. Excerpts put the id after the
// file attributes, masters lead with it.
func fileAssetAttrs(asset product.FileAsset, idLast bool) []xmlbuild.Attr {
	id := xmlbuild.Attr{Name: "id", Value: strconv.Itoa(asset.ID)}
	attrs := make([]xmlbuild.Attr, 0, 5)
	if !idLast {
		attrs = append(attrs, id)
	}
	attrs = append(attrs,
		xmlbuild.Attr{Name: "md5", Value: asset.MD5},
		xmlbuild.Attr{Name: "file_size", Value: strconv.Itoa(asset.FileSize)},
		xmlbuild.Attr{Name: "file_type", Value: asset.FileType},
		xmlbuild.Attr{Name: "updated_at", Value: asset.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z")},
	)
	if idLast {
		attrs = append(attrs, id)
	}
	return attrs
}
