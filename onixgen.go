// Package onixgen builds ONIX 3.0 release messages from catalogue product
// records. The root package re-exports the render entry points so most
// callers never import the subpackages directly.
package onixgen

import (
	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/render"
)

// Product aliases the catalogue record the generator consumes.
type Product = product.Product

// Option configures a Generator.
type Option = render.Option

// Variant selects which message sections an export profile includes.
type Variant = render.Variant

// Dialect names an ONIX 3.0 sub-release.
type Dialect = render.Dialect

// Re-exported dialects and export profiles.
var (
	Dialect301 = render.Dialect301
	Dialect302 = render.Dialect302

	VariantFull       = render.VariantFull
	VariantBasicMeta  = render.VariantBasicMeta
	VariantStocksOnly = render.VariantStocksOnly
)

// Re-exported generator options.
var (
	WithDialect      = render.WithDialect
	WithVariant      = render.WithVariant
	WithPureONIX     = render.WithPureONIX
	WithoutHeaders   = render.WithoutHeaders
	WithSender       = render.WithSender
	WithComments     = render.WithComments
	WithCommentKinds = render.WithCommentKinds
	WithLanguageCode = render.WithLanguageCode
	WithStableOutput = render.WithStableOutput
)

// New constructs a configured generator.
func New(opts ...Option) (*render.Generator, error) {
	return render.New(opts...)
}

// Generate renders the products into a complete ONIX message using the full
// export profile plus the provided options. It is the simplest entry point
// for callers that just want the XML bytes.
func Generate(products []*Product, opts ...Option) ([]byte, error) {
	gen, err := render.New(append([]Option{WithVariant(VariantFull)}, opts...)...)
	if err != nil {
		return nil, err
	}
	return gen.Generate(products...)
}

// GenerateString is Generate returning a string.
func GenerateString(products []*Product, opts ...Option) (string, error) {
	out, err := Generate(products, opts...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
