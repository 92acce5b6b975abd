package render

import (
	"strings"

	"github.com/elibri/go-onixgen/internal/sanitize"
	"github.com/elibri/go-onixgen/pkg/dict"
	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/xmlbuild"
)

// defaultMediaHost completes relative attachment paths; hotlinking targets
// must always be absolute in the output.
const defaultMediaHost = "https://www.elibri.com.pl"

// texts renders one TextContent block per exportable free text. Blank
// texts, texts without an ONIX type and internal-only texts are skipped.
func (r *batch) texts(p *product.Product) {
	exportable := make([]*product.OtherText, 0, len(p.OtherTexts))
	for i := range p.OtherTexts {
		t := &p.OtherTexts[i]
		if t.Internal || !product.Present(t.Text) || !product.Present(t.TypeCode) {
			continue
		}
		exportable = append(exportable, t)
	}
	if len(exportable) == 0 {
		return
	}

	r.commentDictionary("Text types", dict.ListTextType, 10, KindTexts)
	for _, t := range exportable {
		attrs := r.volatileAttrs("textid", t.ID, t.UpdatedAt)
		text := t
		r.b.Block("TextContent", func() {
			r.b.Text("TextType", text.TypeCode)
			r.comment("Always "+dict.AudienceUnrestricted+" - unrestricted", KindTexts)
			r.b.Text("ContentAudience", dict.AudienceUnrestricted)

			var sourceAttrs []xmlbuild.Attr
			if text.Review && product.Present(text.ResourceLink) {
				sourceAttrs = append(sourceAttrs, xmlbuild.Attr{Name: "sourcename", Value: text.ResourceLink})
			}
			r.b.CDATA("Text", sanitize.HTML(text.Text), sourceAttrs...)

			if product.Present(text.TextAuthor) {
				r.b.Text("TextAuthor", text.TextAuthor)
			}
			if product.Present(text.SourceTitle) {
				r.b.Text("SourceTitle", text.SourceTitle)
			}
		}, attrs...)
	}
}

// supportingResources renders one SupportingResource per attachment whose
// upload produced a recognized resource mode.
func (r *batch) supportingResources(p *product.Product) {
	for i := range p.Attachments {
		a := &p.Attachments[i]
		if !product.Present(a.ResourceMode) {
			continue
		}
		attrs := r.volatileAttrs("resourceid", a.ID, a.UpdatedAt)
		attachment := a
		r.b.Block("SupportingResource", func() {
			r.commentDictionary("Attachment type", dict.ListResourceContentType, 12, KindSupportingResources)
			r.b.Text("ResourceContentType", attachment.ContentType)
			r.comment("Always "+dict.AudienceUnrestricted+" - unrestricted", KindSupportingResources)
			r.b.Text("ContentAudience", dict.AudienceUnrestricted)
			r.commentDictionary("Attachment mode", dict.ListResourceMode, 12, KindSupportingResources)
			r.b.Text("ResourceMode", attachment.ResourceMode)
			r.b.Block("ResourceVersion", func() {
				r.comment("Always "+dict.ResourceDownloadableFile+" - downloadable file", KindSupportingResources)
				r.b.Text("ResourceForm", dict.ResourceDownloadableFile)
				r.b.Text("ResourceLink", absoluteURL(attachment.URL))
			})
		}, attrs...)
	}
}

func absoluteURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return defaultMediaHost + url
}

// relatedProducts links the record to its reproductions in other media.
func (r *batch) relatedProducts(p *product.Product) {
	r.b.Block("RelatedMaterial", func() {
		r.commentDictionary("Relation types", dict.ListProductRelation, 10, KindRelatedProducts)
		for _, facsimile := range p.Facsimiles {
			ref := facsimile.RecordReference
			r.b.Block("RelatedProduct", func() {
				r.b.Text("ProductRelationCode", dict.RelationFacsimile)
				r.b.Block("ProductIdentifier", func() {
					r.comment("Always "+dict.ProductIDProprietary+" - the internal record reference", KindRelatedProducts)
					r.b.Text("ProductIDType", dict.ProductIDProprietary)
					r.b.Text("IDTypeName", "elibri")
					r.b.Text("IDValue", ref)
				})
			})
		}
	})
}
