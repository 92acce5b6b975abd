package render

import (
	"strings"

	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/xmlbuild"
)

// titles emits up to four independent TitleDetail blocks: the full product
// title (with a collection-level element prepended when the record names a
// collection), the English title, the original-language title and the trade
// title. Title text is trimmed and tagged with the working language.
func (r *batch) titles(p *product.Product) {
	lang := xmlbuild.Attr{Name: "language", Value: r.opts.LanguageCode}

	if product.Present(p.Title) {
		r.b.Block("TitleDetail", func() {
			r.comment("Full product title - type "+dict.TitleDistinctive, KindTitles)
			r.b.Text("TitleType", dict.TitleDistinctive)

			if product.Present(p.CollectionName) {
				r.b.Block("TitleElement", func() {
					r.comment("Collection level title - "+dict.LevelCollection, KindTitles)
					r.b.Text("TitleElementLevel", dict.LevelCollection)
					if product.Present(p.CollectionPart) {
						r.b.Text("PartNumber", strings.TrimSpace(p.CollectionPart))
					}
					r.b.Text("TitleText", strings.TrimSpace(p.CollectionName), lang)
				})
			}

			r.b.Block("TitleElement", func() {
				r.comment("Product level title - "+dict.LevelProduct, KindTitles)
				r.b.Text("TitleElementLevel", dict.LevelProduct)
				if product.Present(p.TitlePart) {
					r.b.Text("PartNumber", strings.TrimSpace(p.TitlePart))
				}
				r.b.Text("TitleText", strings.TrimSpace(p.Title), lang)
				if product.Present(p.Subtitle) {
					r.b.Text("Subtitle", strings.TrimSpace(p.Subtitle), lang)
				}
			})
		})
	}

	r.simpleTitle(dict.TitleOtherLanguage, p.EnglishTitle, "English title",
		xmlbuild.Attr{Name: "language", Value: "eng"})
	// The original language is not recorded alongside the title, so the
	// original title carries no language attribute.
	r.simpleTitle(dict.TitleOriginal, p.OriginalTitle, "Title in original language")
	r.simpleTitle(dict.TitleDistributors, p.TradeTitle, "Publisher's trade title", lang)
}

func (r *batch) simpleTitle(titleType, text, label string, attrs ...xmlbuild.Attr) {
	if !product.Present(text) {
		return
	}
	r.b.Block("TitleDetail", func() {
		r.comment(label+" - type "+titleType, KindTitles)
		r.b.Text("TitleType", titleType)
		r.b.Block("TitleElement", func() {
			r.comment("Product level title - "+dict.LevelProduct, KindTitles)
			r.b.Text("TitleElementLevel", dict.LevelProduct)
			r.b.Text("TitleText", strings.TrimSpace(text), attrs...)
		})
	})
}

// seriesMemberships renders one Collection block per series the product
// belongs to, plus the ISSN-carrying collection for periodicals.
func (r *batch) seriesMemberships(p *product.Product) {
	memberships := append([]product.SeriesMembership(nil), p.SeriesMemberships...)
	if p.CollectionWithISSN != nil {
		memberships = append(memberships, *p.CollectionWithISSN)
	}

	for _, sm := range memberships {
		if !product.Present(sm.SeriesName) {
			continue
		}
		r.b.Block("Collection", func() {
			r.comment("Only "+dict.PublisherCollection+" - publisher's own series", KindSeriesMemberships)
			r.b.Text("CollectionType", dict.PublisherCollection)

			if product.Present(sm.ISSN) {
				r.comment("Periodicals carry their ISSN", KindSeriesMemberships)
				r.b.Block("CollectionIdentifier", func() {
					r.b.Text("CollectionIDType", dict.CollectionIDISSN)
					r.b.Text("IDValue", sm.ISSN)
				})
			}

			r.comment("The same structure as in the title block follows", KindSeriesMemberships)
			r.b.Block("TitleDetail", func() {
				r.b.Text("TitleType", dict.TitleDistinctive)
				r.b.Block("TitleElement", func() {
					r.b.Text("TitleElementLevel", dict.LevelCollection)
					if product.Present(sm.NumberWithinSeries) {
						r.b.Text("PartNumber", sm.NumberWithinSeries)
					}
					r.b.Text("TitleText", strings.TrimSpace(sm.SeriesName))
				})
			})
		})
	}
}
