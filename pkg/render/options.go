package render

import "fmt"

// Dialect selects between the two supported ONIX 3.0 sub-versions. The
// dialects differ in where product form details may be placed and in whether
// the vendor extension namespace is declared.
type Dialect string

const (
	Dialect301 Dialect = "3.0.1"
	Dialect302 Dialect = "3.0.2"
)

func (d Dialect) known() bool {
	return d == Dialect301 || d == Dialect302
}

// Variant names the subset of top-level containers a given export asks for.
type Variant struct {
	IncludesBasicMeta  bool
	IncludesOtherTexts bool
	IncludesMediaFiles bool
	IncludesStocks     bool
}

// Predefined variants matching the export use cases downstream consumers
// subscribe to.
var (
	VariantFull = Variant{IncludesBasicMeta: true, IncludesOtherTexts: true, IncludesMediaFiles: true, IncludesStocks: true}

	VariantBasicMeta = Variant{IncludesBasicMeta: true, IncludesOtherTexts: true, IncludesMediaFiles: true}

	VariantStocksOnly = Variant{IncludesStocks: true}
)

// CommentMode controls whether explanatory comments appear in the output.
// Comments are documentation only; switching them off never changes document
// structure.
type CommentMode int

const (
	CommentsNone CommentMode = iota
	CommentsAll
	CommentsSelective
)

// CommentKind labels a comment with the section family it documents, used by
// CommentsSelective to filter output.
type CommentKind string

const (
	KindRecordIdentifiers   CommentKind = "onix_record_identifiers"
	KindProductForm         CommentKind = "onix_product_form"
	KindEpubDetails         CommentKind = "onix_epub_details"
	KindMeasurement         CommentKind = "onix_measurement"
	KindTitles              CommentKind = "onix_titles"
	KindSeriesMemberships   CommentKind = "onix_series_memberships"
	KindContributors        CommentKind = "onix_contributors"
	KindPublishingStatus    CommentKind = "onix_publishing_status"
	KindTerritorialRights   CommentKind = "onix_territorial_rights"
	KindSaleRestrictions    CommentKind = "onix_sale_restrictions"
	KindAudienceRange       CommentKind = "onix_audience_range"
	KindPublisherInfo       CommentKind = "onix_publisher_info"
	KindExtent              CommentKind = "onix_extent"
	KindEdition             CommentKind = "onix_edition"
	KindLanguages           CommentKind = "onix_languages"
	KindTexts               CommentKind = "onix_texts"
	KindSupportingResources CommentKind = "onix_supporting_resources"
	KindSubjects            CommentKind = "onix_subjects"
	KindRelatedProducts     CommentKind = "onix_related_products"
	KindSupplyDetails       CommentKind = "onix_supply_details"
)

const defaultSenderName = "Elibri.com.pl"

// Options collects every knob a batch render recognises. Use New with
// functional options rather than constructing the struct directly.
type Options struct {
	Dialect  Dialect
	Variant  *Variant
	PureONIX bool

	EmitHeaders bool
	SenderName  string
	ContactName string
	Email       string

	Comments     CommentMode
	CommentKinds []CommentKind

	// LanguageCode tags free-text elements with a working language.
	LanguageCode string

	// SkipVolatileMetadata drops per-element sourcename/datestamp
	// attributes so repeated renders of unchanged data diff clean.
	SkipVolatileMetadata bool

	// Now supplies the header timestamp; tests pin it for determinism.
	Now func() string
}

// Option customises the generator configuration.
type Option func(*Options)

// WithDialect selects the ONIX sub-version to emit.
func WithDialect(d Dialect) Option {
	return func(o *Options) { o.Dialect = d }
}

// WithVariant selects which top-level containers are requested.
func WithVariant(v Variant) Option {
	return func(o *Options) { o.Variant = &v }
}

// WithPureONIX suppresses the vendor extension namespace and every element
// under it.
func WithPureONIX(pure bool) Option {
	return func(o *Options) { o.PureONIX = pure }
}

// WithoutHeaders skips the message envelope; useful in tests that only care
// about Product subtrees.
func WithoutHeaders() Option {
	return func(o *Options) { o.EmitHeaders = false }
}

// WithSender overrides the sender identity emitted in the header.
func WithSender(name, contact, email string) Option {
	return func(o *Options) {
		o.SenderName = name
		o.ContactName = contact
		o.Email = email
	}
}

// WithComments enables explanatory comments for every section.
func WithComments() Option {
	return func(o *Options) { o.Comments = CommentsAll }
}

// WithCommentKinds enables comments for the named section families only.
func WithCommentKinds(kinds ...CommentKind) Option {
	return func(o *Options) {
		o.Comments = CommentsSelective
		o.CommentKinds = append(o.CommentKinds, kinds...)
	}
}

// WithLanguageCode sets the working language attribute applied to free-text
// elements such as title text.
func WithLanguageCode(code string) Option {
	return func(o *Options) { o.LanguageCode = code }
}

// WithStableOutput suppresses volatile per-element metadata attributes.
func WithStableOutput() Option {
	return func(o *Options) { o.SkipVolatileMetadata = true }
}

func defaultOptions() Options {
	return Options{
		Dialect:      Dialect301,
		EmitHeaders:  true,
		SenderName:   defaultSenderName,
		LanguageCode: "pol",
	}
}

func (o *Options) validate() error {
	if !o.Dialect.known() {
		return fmt.Errorf("render: %w: %q", ErrUnknownDialect, o.Dialect)
	}
	if o.Variant == nil {
		return fmt.Errorf("render: %w", ErrMissingVariant)
	}
	return nil
}

func (o *Options) commentKindEnabled(kinds []CommentKind) bool {
	for _, want := range kinds {
		for _, have := range o.CommentKinds {
			if want == have {
				return true
			}
		}
	}
	return false
}
