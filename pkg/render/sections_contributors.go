package render

import (
	"strconv"

	"github.com/elibri/go-onixgen/internal/sanitize"
	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
)

// contributors renders the authorship of a product. Exactly one of three
// mutually exclusive kinds applies: contributors listed by name in original
// order, a collective-work marker, or an explicit no-contributor marker.
func (r *batch) contributors(p *product.Product) {
	switch p.Authorship {
	case product.AuthorshipUserGiven:
		if len(p.Contributors) > 0 {
			r.comment("Contributors listed by name", KindContributors)
		}
		for i := range p.Contributors {
			c := &p.Contributors[i]
			seq := i + 1
			attrs := r.volatileAttrs("contributorid", c.ID, c.UpdatedAt)
			r.b.Block("Contributor", func() {
				r.b.Text("SequenceNumber", strconv.Itoa(seq))
				r.commentDictionary("Contributor role", dict.ListContributorRole, 10, KindContributors)
				r.b.Text("ContributorRole", c.Role)
				if product.Present(c.FromLanguage) {
					r.comment("Translators only:", KindContributors)
					r.b.Text("FromLanguage", c.FromLanguage)
				}
				r.b.Text("PersonName", c.DisplayName())

				if c.StructuredName() {
					if product.Present(c.TitleBeforeName) {
						r.b.Text("TitlesBeforeNames", c.TitleBeforeName)
					}
					r.b.Text("NamesBeforeKey", c.FirstName)
					if product.Present(c.LastNamePrefix) {
						r.b.Text("PrefixToKey", c.LastNamePrefix)
					}
					r.b.Text("KeyNames", c.LastName)
					if product.Present(c.LastNamePostfix) {
						r.b.Text("NamesAfterKey", c.LastNamePostfix)
					}
				}

				if product.Present(c.Biography) {
					// Sanitized rich text, already entity-encoded.
					r.b.CDATA("BiographicalNote", sanitize.HTML(c.Biography))
				}
			}, attrs...)
		}

	case product.AuthorshipCollective:
		r.comment("Collective work", KindContributors)
		r.b.Block("Contributor", func() {
			r.comment("Author - "+dict.RoleAuthor, KindContributors)
			r.b.Text("ContributorRole", dict.RoleAuthor)
			r.comment("Various authors - "+dict.VariousAuthors, KindContributors)
			r.b.Text("UnnamedPersons", dict.VariousAuthors)
		})

	case product.AuthorshipNoContributor:
		r.comment("No authors at all", KindContributors)
		r.b.Empty("NoContributor")
	}
}
