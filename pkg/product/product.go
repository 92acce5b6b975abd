// Package product holds the read-only record the generator consumes. Every
// attribute except RecordReference is optional; optionality is modelled with
// nil pointers, empty slices and blank strings together with the Present
// predicate, never with reflection-based capability probing.
package product

import (
	"fmt"
	"strings"
	"time"
)

// Kind classifies a product for the handful of renderers whose output
// depends on the physical or digital nature of the record.
type Kind int

const (
	KindBook Kind = iota
	KindEbook
	KindAudiobook
	KindMap
	KindGame
	KindOther
)

// Digital reports whether the product is delivered electronically.
func (k Kind) Digital() bool {
	return k == KindEbook || k == KindAudiobook
}

// Audio reports whether the product is an audio recording.
func (k Kind) Audio() bool {
	return k == KindAudiobook
}

// Measurable reports whether physical dimensions make sense for the product.
func (k Kind) Measurable() bool {
	return !k.Digital()
}

// AuthorshipKind states how the authors of a product are communicated.
// Exactly one kind applies to a record.
type AuthorshipKind int

const (
	// AuthorshipUserGiven enumerates each contributor in original order.
	AuthorshipUserGiven AuthorshipKind = iota
	// AuthorshipCollective marks a collective work ("various authors").
	AuthorshipCollective
	// AuthorshipNoContributor marks records without any author (e.g. maps).
	AuthorshipNoContributor
)

// ExternalID is a proprietary identifier assigned outside the publisher's
// own numbering (for example a distributor database key).
type ExternalID struct {
	TypeName string
	Value    string
}

// SeriesMembership places the product inside a publisher series, optionally
// at a numbered position. Periodicals additionally carry an ISSN.
type SeriesMembership struct {
	SeriesName         string
	NumberWithinSeries string
	ISSN               string
}

// Language is one language the product is available in.
type Language struct {
	Role string
	Code string
}

// Category is one node of a classification scheme.
type Category struct {
	Code    string
	Heading string
}

// Facsimile points at another record reproducing this product in a
// different medium.
type Facsimile struct {
	RecordReference string
}

// FileAsset describes a downloadable excerpt or master file manifest entry.
type FileAsset struct {
	ID        int
	MD5       string
	FileSize  int
	FileType  string
	UpdatedAt time.Time
}

// Product is the exported view of one catalogue record. RecordReference is
// immutable and non-blank for the life of the record; everything else may be
// absent and the renderers silently skip what is missing.
type Product struct {
	RecordReference  string
	Public           bool
	Kind             Kind
	NotificationType string
	DeletionText     string

	ISBNValue          string
	EAN                string
	DOI                string
	HyphenatedISBN     string
	ExternalIdentifier *ExternalID

	ProductFormCode    string
	ProductFormDetails []string

	EpubTechnicalProtection string
	EpubSaleNotRestricted   bool
	EpubSaleRestrictedTo    *time.Time
	PreviewExists           bool

	// Preview-fragment policy of a digital product. PreviewStatus is a
	// list 146 code; a limited status carries the fragment size in
	// PreviewLimit, expressed in the list 147 unit.
	PreviewStatus string
	PreviewUnit   string
	PreviewLimit  *int

	Height    *int
	Width     *int
	Thickness *int
	Weight    *int
	MapScale  *int

	PublicationYear   int
	PublicationMonth  int
	PublicationDay    int
	DistributionStart *time.Time

	PublishingStatusCode string

	Authorship   AuthorshipKind
	Contributors []Contributor

	CollectionName string
	CollectionPart string
	Title          string
	Subtitle       string
	TitlePart      string
	EnglishTitle   string
	OriginalTitle  string
	TradeTitle     string

	SeriesMemberships  []SeriesMembership
	CollectionWithISSN *SeriesMembership

	EditionStatement string
	Languages        []Language

	FileSize              *int
	Duration              *int
	NumberOfPages         *int
	NumberOfIllustrations *int

	AudienceAgeFrom *int
	AudienceAgeTo   *int

	ImprintName       string
	PublisherName     string
	PublisherID       string
	CityOfPublication string

	SaleRestrictedFor      string
	SaleRestrictedTo       *time.Time
	SaleRestrictedToPoland *bool

	ThemaCodes          []string
	ElibriCategories    []Category
	PublisherCategories []Category
	Keywords            map[string][]string

	OtherTexts  []OtherText
	Attachments []Attachment
	Facsimiles  []Facsimile

	Availabilities    []Availability
	PackQuantity      *int
	SkipProductSupply bool

	CoverType        string
	CoverPrice       string
	Vat              *int
	PKWiU            string
	PDWExclusiveness string

	// PricePrintedOnProduct is the ONIX code answering whether the cover
	// price is printed on the product; blank when unknown.
	PricePrintedOnProduct string

	Excerpts []FileAsset
	Masters  []FileAsset
}

// Present reports whether an optional string attribute carries a value:
// non-blank after trimming.
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// PublicationDate resolves the possibly partial publication date to its
// serialized value and the matching ONIX date format code. Precision follows
// the most specific field present: full date, year+month, or year only.
// Both return values are empty when no year is known.
func (p *Product) PublicationDate() (value, formatCode string) {
	switch {
	case p.PublicationYear > 0 && p.PublicationMonth > 0 && p.PublicationDay > 0:
		return fmt.Sprintf("%04d%02d%02d", p.PublicationYear, p.PublicationMonth, p.PublicationDay), "00"
	case p.PublicationYear > 0 && p.PublicationMonth > 0:
		return fmt.Sprintf("%04d%02d", p.PublicationYear, p.PublicationMonth), "01"
	case p.PublicationYear > 0:
		return fmt.Sprintf("%04d", p.PublicationYear), "05"
	default:
		return "", ""
	}
}

// SaleRestricted reports whether the product is under a retailer exclusivity
// window, which requires both the outlet name and the expiry date.
func (p *Product) SaleRestricted() bool {
	return Present(p.SaleRestrictedFor) && p.SaleRestrictedTo != nil
}
