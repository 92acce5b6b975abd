package render

import (
	"sort"
	"strings"

	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/xmlbuild"
)

// themaScheme resolves the subject scheme identifier for one Thema code.
// Qualifier codes open with a digit naming their qualifier family; category
// codes open with a letter.
func themaScheme(code string) string {
	switch code[0] {
	case '1':
		return dict.SchemeThemaPlace
	case '2':
		return dict.SchemeThemaLanguage
	case '3':
		return dict.SchemeThemaTimePeriod
	case '4':
		return dict.SchemeThemaEducation
	case '5':
		return dict.SchemeThemaInterest
	case '6':
		return dict.SchemeThemaStyle
	default:
		return dict.SchemeThemaSubject
	}
}

// subjects renders three independently optional classification schemes:
// Thema codes, proprietary categories (both the catalogue's own and the
// publisher's) and keyword groups. Keyword languages are iterated in sorted
// order so repeated renders stay byte-identical.
func (r *batch) subjects(p *product.Product) {
	for _, raw := range p.ThemaCodes {
		code := strings.TrimSpace(raw)
		if code == "" {
			continue
		}
		r.b.Block("Subject", func() {
			r.b.Text("SubjectSchemeIdentifier", themaScheme(code))
			r.b.Text("SubjectCode", code)
		})
	}

	for i, category := range p.ElibriCategories {
		first := i == 0
		cat := category
		r.b.Block("Subject", func() {
			if first {
				r.b.Empty("MainSubject")
			}
			r.b.Text("SubjectSchemeIdentifier", dict.SchemeProprietary)
			r.b.Text("SubjectSchemeName", "elibri.com.pl")
			r.b.Text("SubjectSchemeVersion", "1.0")
			r.b.Text("SubjectCode", cat.Code)
			r.b.Text("SubjectHeadingText", cat.Heading)
		})
	}

	for _, category := range p.PublisherCategories {
		cat := category
		r.b.Block("Subject", func() {
			r.b.Text("SubjectSchemeIdentifier", dict.SchemeProprietary)
			r.b.Text("SubjectSchemeName", p.PublisherName)
			r.b.Text("SubjectCode", cat.Code)
			r.b.Text("SubjectHeadingText", cat.Heading)
		})
	}

	languages := make([]string, 0, len(p.Keywords))
	for language := range p.Keywords {
		languages = append(languages, language)
	}
	sort.Strings(languages)

	for _, language := range languages {
		kept := make([]string, 0, len(p.Keywords[language]))
		for _, keyword := range p.Keywords[language] {
			if product.Present(keyword) {
				kept = append(kept, strings.TrimSpace(keyword))
			}
		}
		if len(kept) == 0 {
			continue
		}
		heading := strings.Join(kept, "; ")
		lang := language
		r.b.Block("Subject", func() {
			r.b.Text("SubjectSchemeIdentifier", dict.SchemeKeywords)
			r.b.Text("SubjectHeadingText", heading, xmlbuild.Attr{Name: "language", Value: lang})
		})
	}
}
