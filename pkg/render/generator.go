// Package render turns product records into ONIX 3.0 XML messages. The
// Generator is configured once per batch; each Generate call owns a fresh
// output buffer, so independent batches may run concurrently.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/xmlbuild"
)

const (
	referenceNamespace = "http://ns.editeur.org/onix/3.0/reference"
	extensionNamespace = "http://elibri.com.pl/ns/extensions"

	// extensionPrefix is the namespace prefix carried by every
	// non-standard element.
	extensionPrefix = "elibri"
)

// Generator renders batches of products under one fixed set of options.
type Generator struct {
	opts Options
}

// New validates the configuration and returns a ready Generator.
// An unknown dialect or a missing variant is a configuration error and is
// reported immediately, before any product is touched.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if strings.TrimSpace(o.SenderName) == "" {
		o.SenderName = defaultSenderName
	}
	if o.Now == nil {
		o.Now = func() string { return time.Now().UTC().Format("20060102") }
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Generator{opts: o}, nil
}

// Options returns a copy of the effective configuration.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate renders every public product of the batch into a single XML
// document. Either the whole document is produced or an error is returned
// with no partial output.
func (g *Generator) Generate(products ...*product.Product) ([]byte, error) {
	for _, p := range products {
		if p.Public && !product.Present(p.RecordReference) {
			return nil, fmt.Errorf("render: product without record reference")
		}
	}

	r := &batch{b: xmlbuild.New(), opts: g.opts}
	if g.opts.EmitHeaders {
		r.header(func() {
			for _, p := range products {
				r.renderProduct(p)
			}
		})
	} else {
		for _, p := range products {
			r.renderProduct(p)
		}
	}
	return r.b.Bytes(), nil
}

// GenerateString is Generate returning a string.
func (g *Generator) GenerateString(products ...*product.Product) (string, error) {
	out, err := g.Generate(products...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// batch is the per-Generate render state: one output buffer plus the frozen
// options. Section renderers hang off it.
type batch struct {
	b    *xmlbuild.Builder
	opts Options
}

// extensionsEnabled reports whether the vendor namespace is declared and the
// extension block rendered. Dialect 3.0.2 drops the extension namespace from
// the envelope, so extensions are only ever carried under 3.0.1 without
// PureONIX.
func (r *batch) extensionsEnabled() bool {
	return r.opts.Dialect == Dialect301 && !r.opts.PureONIX
}

// header emits the message envelope once per batch and nests the product
// stream inside it.
func (r *batch) header(body func()) {
	r.b.Instruct()

	attrs := []xmlbuild.Attr{
		{Name: "release", Value: "3.0"},
		{Name: "xmlns", Value: referenceNamespace},
	}
	if r.extensionsEnabled() {
		attrs = append(attrs, xmlbuild.Attr{Name: "xmlns:" + extensionPrefix, Value: extensionNamespace})
	}

	r.b.Block("ONIXMessage", func() {
		if r.extensionsEnabled() {
			// Parsers need the dialect to interpret form detail placement.
			r.b.Text(extensionPrefix+":Dialect", string(r.opts.Dialect))
		}
		r.b.Block("Header", func() {
			r.b.Block("Sender", func() {
				r.b.Text("SenderName", r.opts.SenderName)
				if product.Present(r.opts.ContactName) {
					r.b.Text("ContactName", r.opts.ContactName)
				}
				if product.Present(r.opts.Email) {
					r.b.Text("EmailAddress", r.opts.Email)
				}
			})
			r.b.Text("SentDateTime", r.opts.Now())
		})
		body()
	}, attrs...)
}

// renderProduct walks the fixed container order for one record. The order of
// top-level containers is part of the external contract; downstream ONIX
// consumers may rely on it.
func (r *batch) renderProduct(p *product.Product) {
	if !p.Public {
		return
	}
	v := *r.opts.Variant

	r.b.Block("Product", func() {
		r.recordIdentifiers(p)

		if v.IncludesBasicMeta {
			r.b.Block("DescriptiveDetail", func() {
				r.productForm(p)
				r.epubDetails(p)
				r.measurement(p)
				r.seriesMemberships(p)
				r.titles(p)
				r.contributors(p)
				r.edition(p)
				r.languages(p)
				r.extent(p)
				r.subjects(p)
				r.audienceRange(p)
			})
		}

		if v.IncludesOtherTexts || v.IncludesMediaFiles {
			r.b.Block("CollateralDetail", func() {
				if v.IncludesOtherTexts {
					r.texts(p)
				}
				if v.IncludesMediaFiles {
					r.supportingResources(p)
				}
			})
		}
		r.b.RemoveIfEmpty("CollateralDetail")

		r.b.Block("PublishingDetail", func() {
			r.publisherInfo(p)
			r.publishingStatus(p)
			r.territorialRights(p)
			r.saleRestrictions(p)
		})
		r.b.RemoveIfEmpty("PublishingDetail")

		if len(p.Facsimiles) > 0 {
			r.relatedProducts(p)
		}

		if v.IncludesStocks {
			r.supplyDetails(p)
		}

		if r.extensionsEnabled() {
			r.elibriExtensions(p)
		}
	})
}

// volatileAttrs builds the sourcename/datestamp attribute pair for elements
// backed by a database row, unless stable output was requested.
func (r *batch) volatileAttrs(kind string, id int, updated *time.Time) []xmlbuild.Attr {
	if r.opts.SkipVolatileMetadata {
		return nil
	}
	var attrs []xmlbuild.Attr
	if id != 0 {
		attrs = append(attrs, xmlbuild.Attr{Name: "sourcename", Value: fmt.Sprintf("%s:%d", kind, id)})
	}
	if updated != nil {
		attrs = append(attrs, xmlbuild.Attr{Name: "datestamp", Value: updated.UTC().Format("20060102T150405")})
	}
	return attrs
}
