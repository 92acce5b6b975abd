package render

import (
	"strconv"

	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

func (r *batch) edition(p *product.Product) {
	if product.Present(p.EditionStatement) {
		r.comment("Edition description", KindEdition)
		r.b.Text("EditionStatement", p.EditionStatement)
	}
}

func (r *batch) languages(p *product.Product) {
	if len(p.Languages) == 0 {
		return
	}
	r.commentDictionary("Language role", dict.ListLanguageRole, 10, KindLanguages)
	for _, language := range p.Languages {
		r.b.Block("Language", func() {
			r.b.Text("LanguageRole", language.Role)
			r.b.Text("LanguageCode", language.Code)
		})
	}
}

// extent reports size attributes bound to the product kind: file size for
// digital products, duration for audio, page and illustration counts for
// books and e-books.
func (r *batch) extent(p *product.Product) {
	if p.Kind.Digital() && p.FileSize != nil {
		r.b.Block("Extent", func() {
			r.comment("File size (in MB) - digital products only", KindExtent)
			r.b.Text("ExtentType", dict.ExtentFileSize)
			r.b.Text("ExtentValue", strconv.Itoa(*p.FileSize))
			r.comment("In MB", KindExtent)
			r.b.Text("ExtentUnit", dict.UnitMegabytes)
		})
	}

	if p.Kind.Audio() && p.Duration != nil {
		r.b.Block("Extent", func() {
			r.comment("Duration (in minutes) - audio products only", KindExtent)
			r.b.Text("ExtentType", dict.ExtentDuration)
			r.b.Text("ExtentValue", strconv.Itoa(*p.Duration))
			r.comment("In minutes", KindExtent)
			r.b.Text("ExtentUnit", dict.UnitMinutes)
		})
	}

	pagesApply := p.Kind == product.KindBook || p.Kind == product.KindEbook
	if pagesApply && p.NumberOfPages != nil {
		r.b.Block("Extent", func() {
			r.comment("Page count - book products only", KindExtent)
			r.b.Text("ExtentType", dict.ExtentPageCount)
			r.b.Text("ExtentValue", strconv.Itoa(*p.NumberOfPages))
			r.b.Text("ExtentUnit", dict.UnitPages)
		})
	}
	if pagesApply && p.NumberOfIllustrations != nil {
		r.comment("Illustration count - book products only", KindExtent)
		r.b.Text("NumberOfIllustrations", strconv.Itoa(*p.NumberOfIllustrations))
	}
}

// audienceRange emits reading-age bounds; both ends are independently
// optional.
func (r *batch) audienceRange(p *product.Product) {
	if p.AudienceAgeFrom != nil {
		r.b.Block("AudienceRange", func() {
			r.comment("Always reading age - "+dict.AudienceReadingAge, KindAudienceRange)
			r.b.Text("AudienceRangeQualifier", dict.AudienceReadingAge)
			r.comment("From "+strconv.Itoa(*p.AudienceAgeFrom)+" years of age", KindAudienceRange)
			r.b.Text("AudienceRangePrecision", dict.AudienceGradeFrom)
			r.b.Text("AudienceRangeValue", strconv.Itoa(*p.AudienceAgeFrom))
		})
	}

	if p.AudienceAgeTo != nil {
		r.b.Block("AudienceRange", func() {
			r.comment("Always reading age - "+dict.AudienceReadingAge, KindAudienceRange)
			r.b.Text("AudienceRangeQualifier", dict.AudienceReadingAge)
			r.comment("Up to "+strconv.Itoa(*p.AudienceAgeTo)+" years of age", KindAudienceRange)
			r.b.Text("AudienceRangePrecision", dict.AudienceGradeTo)
			r.b.Text("AudienceRangeValue", strconv.Itoa(*p.AudienceAgeTo))
		})
	}
}
