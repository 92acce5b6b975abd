package productfile

import (
	"fmt"
	"time"

	"github.com/elibri/go-onixgen/pkg/product"
)

type document struct {
	Products []fileProduct `yaml:"products"`
}

type fileProduct struct {
	RecordReference  string `yaml:"record_reference"`
	Public           *bool  `yaml:"public"`
	Kind             string `yaml:"kind"`
	NotificationType string `yaml:"notification_type"`
	DeletionText     string `yaml:"deletion_text"`

	ISBN           string          `yaml:"isbn"`
	EAN            string          `yaml:"ean"`
	DOI            string          `yaml:"doi"`
	HyphenatedISBN string          `yaml:"hyphenated_isbn"`
	ExternalID     *fileExternalID `yaml:"external_identifier"`

	ProductForm        string   `yaml:"product_form"`
	ProductFormDetails []string `yaml:"product_form_details"`

	EpubTechnicalProtection string `yaml:"epub_technical_protection"`
	EpubSaleNotRestricted   bool   `yaml:"epub_sale_not_restricted"`
	EpubSaleRestrictedTo    string `yaml:"epub_sale_restricted_to"`
	PreviewExists           bool   `yaml:"preview_exists"`
	PreviewStatus           string `yaml:"preview_status"`
	PreviewUnit             string `yaml:"preview_unit"`
	PreviewLimit            *int   `yaml:"preview_limit"`

	Height    *int `yaml:"height"`
	Width     *int `yaml:"width"`
	Thickness *int `yaml:"thickness"`
	Weight    *int `yaml:"weight"`
	MapScale  *int `yaml:"map_scale"`

	PublicationYear   int    `yaml:"publication_year"`
	PublicationMonth  int    `yaml:"publication_month"`
	PublicationDay    int    `yaml:"publication_day"`
	DistributionStart string `yaml:"distribution_start"`

	PublishingStatus string `yaml:"publishing_status"`

	Authorship   string            `yaml:"authorship"`
	Contributors []fileContributor `yaml:"contributors"`

	CollectionName string `yaml:"collection_name"`
	CollectionPart string `yaml:"collection_part"`
	Title          string `yaml:"title"`
	Subtitle       string `yaml:"subtitle"`
	TitlePart      string `yaml:"title_part"`
	EnglishTitle   string `yaml:"english_title"`
	OriginalTitle  string `yaml:"original_title"`
	TradeTitle     string `yaml:"trade_title"`

	Series             []fileSeries `yaml:"series"`
	CollectionWithISSN *fileSeries  `yaml:"collection_with_issn"`

	EditionStatement string         `yaml:"edition_statement"`
	Languages        []fileLanguage `yaml:"languages"`

	FileSize              *int `yaml:"file_size"`
	Duration              *int `yaml:"duration"`
	NumberOfPages         *int `yaml:"number_of_pages"`
	NumberOfIllustrations *int `yaml:"number_of_illustrations"`

	AudienceAgeFrom *int `yaml:"audience_age_from"`
	AudienceAgeTo   *int `yaml:"audience_age_to"`

	Imprint           string `yaml:"imprint"`
	PublisherName     string `yaml:"publisher_name"`
	PublisherID       string `yaml:"publisher_id"`
	CityOfPublication string `yaml:"city_of_publication"`

	SaleRestrictedFor      string `yaml:"sale_restricted_for"`
	SaleRestrictedTo       string `yaml:"sale_restricted_to"`
	SaleRestrictedToPoland *bool  `yaml:"sale_restricted_to_poland"`

	ThemaCodes          []string            `yaml:"thema_codes"`
	ElibriCategories    []fileCategory      `yaml:"elibri_categories"`
	PublisherCategories []fileCategory      `yaml:"publisher_categories"`
	Keywords            map[string][]string `yaml:"keywords"`

	Texts       []fileText       `yaml:"texts"`
	Attachments []fileAttachment `yaml:"attachments"`
	Facsimiles  []string         `yaml:"facsimiles"`

	Availabilities    []fileAvailability `yaml:"availabilities"`
	PackQuantity      *int               `yaml:"pack_quantity"`
	SkipProductSupply bool               `yaml:"skip_product_supply"`

	PricePrintedOnProduct string `yaml:"price_printed_on_product"`

	CoverType        string `yaml:"cover_type"`
	CoverPrice       string `yaml:"cover_price"`
	Vat              *int   `yaml:"vat"`
	PKWiU            string `yaml:"pkwiu"`
	PDWExclusiveness string `yaml:"pdw_exclusiveness"`

	Excerpts []fileAsset `yaml:"excerpts"`
	Masters  []fileAsset `yaml:"masters"`
}

type fileExternalID struct {
	TypeName string `yaml:"type_name"`
	Value    string `yaml:"value"`
}

type fileContributor struct {
	ID              int    `yaml:"id"`
	Role            string `yaml:"role"`
	FromLanguage    string `yaml:"from_language"`
	FullName        string `yaml:"full_name"`
	TitleBeforeName string `yaml:"title_before_name"`
	FirstName       string `yaml:"first_name"`
	LastNamePrefix  string `yaml:"last_name_prefix"`
	LastName        string `yaml:"last_name"`
	LastNamePostfix string `yaml:"last_name_postfix"`
	Biography       string `yaml:"biography"`
}

type fileSeries struct {
	Name   string `yaml:"name"`
	Number string `yaml:"number"`
	ISSN   string `yaml:"issn"`
}

type fileLanguage struct {
	Role string `yaml:"role"`
	Code string `yaml:"code"`
}

type fileCategory struct {
	Code    string `yaml:"code"`
	Heading string `yaml:"heading"`
}

type fileText struct {
	ID           int    `yaml:"id"`
	Type         string `yaml:"type"`
	Text         string `yaml:"text"`
	TextAuthor   string `yaml:"text_author"`
	SourceTitle  string `yaml:"source_title"`
	ResourceLink string `yaml:"resource_link"`
	Review       bool   `yaml:"review"`
	Internal     bool   `yaml:"internal"`
}

type fileAttachment struct {
	ID           int    `yaml:"id"`
	ContentType  string `yaml:"content_type"`
	ResourceMode string `yaml:"resource_mode"`
	URL          string `yaml:"url"`
}

type fileAvailability struct {
	Supplier           fileSupplier `yaml:"supplier"`
	SupplierIdentifier string       `yaml:"supplier_identifier"`
	Availability       string       `yaml:"availability"`
	OnHand             *int         `yaml:"on_hand"`
	Proximity          string       `yaml:"proximity"`
	Prices             []filePrice  `yaml:"prices"`
}

type fileSupplier struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	TaxID    string   `yaml:"tax_id"`
	Phone    string   `yaml:"phone"`
	Email    string   `yaml:"email"`
	Websites []string `yaml:"websites"`
}

type filePrice struct {
	Amount               string `yaml:"amount"`
	Currency             string `yaml:"currency"`
	Vat                  *int   `yaml:"vat"`
	MinimumOrderQuantity *int   `yaml:"minimum_order_quantity"`
	EffectiveFrom        string `yaml:"effective_from"`
}

type fileAsset struct {
	ID        int    `yaml:"id"`
	MD5       string `yaml:"md5"`
	FileSize  int    `yaml:"file_size"`
	FileType  string `yaml:"file_type"`
	UpdatedAt string `yaml:"updated_at"`
}

func (fp *fileProduct) toProduct() (*product.Product, error) {
	if fp.RecordReference == "" {
		return nil, fmt.Errorf("record_reference is required")
	}
	kind, err := parseKind(fp.Kind)
	if err != nil {
		return nil, err
	}
	authorship, err := parseAuthorship(fp.Authorship)
	if err != nil {
		return nil, err
	}

	p := &product.Product{
		RecordReference:  fp.RecordReference,
		Public:           fp.Public == nil || *fp.Public,
		Kind:             kind,
		NotificationType: fp.NotificationType,
		DeletionText:     fp.DeletionText,

		ISBNValue:      fp.ISBN,
		EAN:            fp.EAN,
		DOI:            fp.DOI,
		HyphenatedISBN: fp.HyphenatedISBN,

		ProductFormCode:    fp.ProductForm,
		ProductFormDetails: fp.ProductFormDetails,

		EpubTechnicalProtection: fp.EpubTechnicalProtection,
		EpubSaleNotRestricted:   fp.EpubSaleNotRestricted,
		PreviewExists:           fp.PreviewExists,
		PreviewStatus:           fp.PreviewStatus,
		PreviewUnit:             fp.PreviewUnit,
		PreviewLimit:            fp.PreviewLimit,

		Height:    fp.Height,
		Width:     fp.Width,
		Thickness: fp.Thickness,
		Weight:    fp.Weight,
		MapScale:  fp.MapScale,

		PublicationYear:  fp.PublicationYear,
		PublicationMonth: fp.PublicationMonth,
		PublicationDay:   fp.PublicationDay,

		PublishingStatusCode: fp.PublishingStatus,
		Authorship:           authorship,

		CollectionName: fp.CollectionName,
		CollectionPart: fp.CollectionPart,
		Title:          fp.Title,
		Subtitle:       fp.Subtitle,
		TitlePart:      fp.TitlePart,
		EnglishTitle:   fp.EnglishTitle,
		OriginalTitle:  fp.OriginalTitle,
		TradeTitle:     fp.TradeTitle,

		EditionStatement: fp.EditionStatement,

		FileSize:              fp.FileSize,
		Duration:              fp.Duration,
		NumberOfPages:         fp.NumberOfPages,
		NumberOfIllustrations: fp.NumberOfIllustrations,

		AudienceAgeFrom: fp.AudienceAgeFrom,
		AudienceAgeTo:   fp.AudienceAgeTo,

		ImprintName:       fp.Imprint,
		PublisherName:     fp.PublisherName,
		PublisherID:       fp.PublisherID,
		CityOfPublication: fp.CityOfPublication,

		SaleRestrictedFor:      fp.SaleRestrictedFor,
		SaleRestrictedToPoland: fp.SaleRestrictedToPoland,

		ThemaCodes: fp.ThemaCodes,
		Keywords:   fp.Keywords,

		PackQuantity:      fp.PackQuantity,
		SkipProductSupply: fp.SkipProductSupply,

		PricePrintedOnProduct: fp.PricePrintedOnProduct,

		CoverType:        fp.CoverType,
		CoverPrice:       fp.CoverPrice,
		Vat:              fp.Vat,
		PKWiU:            fp.PKWiU,
		PDWExclusiveness: fp.PDWExclusiveness,
	}

	if fp.ExternalID != nil {
		p.ExternalIdentifier = &product.ExternalID{TypeName: fp.ExternalID.TypeName, Value: fp.ExternalID.Value}
	}

	if p.EpubSaleRestrictedTo, err = parseDate(fp.EpubSaleRestrictedTo, "epub_sale_restricted_to"); err != nil {
		return nil, err
	}
	if p.DistributionStart, err = parseDate(fp.DistributionStart, "distribution_start"); err != nil {
		return nil, err
	}
	if p.SaleRestrictedTo, err = parseDate(fp.SaleRestrictedTo, "sale_restricted_to"); err != nil {
		return nil, err
	}

	for _, c := range fp.Contributors {
		p.Contributors = append(p.Contributors, product.Contributor{
			ID:              c.ID,
			Role:            c.Role,
			FromLanguage:    c.FromLanguage,
			FullName:        c.FullName,
			TitleBeforeName: c.TitleBeforeName,
			FirstName:       c.FirstName,
			LastNamePrefix:  c.LastNamePrefix,
			LastName:        c.LastName,
			LastNamePostfix: c.LastNamePostfix,
			Biography:       c.Biography,
		})
	}

	for _, s := range fp.Series {
		p.SeriesMemberships = append(p.SeriesMemberships, seriesMembership(s))
	}
	if fp.CollectionWithISSN != nil {
		sm := seriesMembership(*fp.CollectionWithISSN)
		p.CollectionWithISSN = &sm
	}

	for _, l := range fp.Languages {
		p.Languages = append(p.Languages, product.Language{Role: l.Role, Code: l.Code})
	}
	for _, c := range fp.ElibriCategories {
		p.ElibriCategories = append(p.ElibriCategories, product.Category{Code: c.Code, Heading: c.Heading})
	}
	for _, c := range fp.PublisherCategories {
		p.PublisherCategories = append(p.PublisherCategories, product.Category{Code: c.Code, Heading: c.Heading})
	}

	for _, t := range fp.Texts {
		p.OtherTexts = append(p.OtherTexts, product.OtherText{
			ID:           t.ID,
			TypeCode:     t.Type,
			Text:         t.Text,
			TextAuthor:   t.TextAuthor,
			SourceTitle:  t.SourceTitle,
			ResourceLink: t.ResourceLink,
			Review:       t.Review,
			Internal:     t.Internal,
		})
	}
	for _, a := range fp.Attachments {
		p.Attachments = append(p.Attachments, product.Attachment{
			ID:           a.ID,
			ContentType:  a.ContentType,
			ResourceMode: a.ResourceMode,
			URL:          a.URL,
		})
	}
	for _, ref := range fp.Facsimiles {
		p.Facsimiles = append(p.Facsimiles, product.Facsimile{RecordReference: ref})
	}

	for _, av := range fp.Availabilities {
		availability := product.Availability{
			Supplier: product.Supplier{
				Name:     av.Supplier.Name,
				Role:     av.Supplier.Role,
				TaxID:    av.Supplier.TaxID,
				Phone:    av.Supplier.Phone,
				Email:    av.Supplier.Email,
				Websites: av.Supplier.Websites,
			},
			SupplierIdentifier: av.SupplierIdentifier,
			AvailabilityCode:   av.Availability,
		}
		if av.OnHand != nil {
			availability.Stock = &product.StockInfo{OnHand: *av.OnHand, Proximity: av.Proximity}
		}
		for _, pr := range av.Prices {
			price := product.PriceInfo{
				Amount:               pr.Amount,
				CurrencyCode:         pr.Currency,
				VatRate:              pr.Vat,
				MinimumOrderQuantity: pr.MinimumOrderQuantity,
			}
			if price.EffectiveFrom, err = parseDate(pr.EffectiveFrom, "effective_from"); err != nil {
				return nil, err
			}
			availability.Prices = append(availability.Prices, price)
		}
		p.Availabilities = append(p.Availabilities, availability)
	}

	for _, a := range fp.Excerpts {
		asset, err := fileAssetToProduct(a)
		if err != nil {
			return nil, err
		}
		p.Excerpts = append(p.Excerpts, asset)
	}
	for _, a := range fp.Masters {
		asset, err := fileAssetToProduct(a)
		if err != nil {
			return nil, err
		}
		p.Masters = append(p.Masters, asset)
	}

	return p, nil
}

func seriesMembership(s fileSeries) product.SeriesMembership {
	return product.SeriesMembership{SeriesName: s.Name, NumberWithinSeries: s.Number, ISSN: s.ISSN}
}

func fileAssetToProduct(a fileAsset) (product.FileAsset, error) {
	asset := product.FileAsset{ID: a.ID, MD5: a.MD5, FileSize: a.FileSize, FileType: a.FileType}
	if a.UpdatedAt != "" {
		updated, err := time.Parse(time.RFC3339, a.UpdatedAt)
		if err != nil {
			return product.FileAsset{}, fmt.Errorf("updated_at: %w", err)
		}
		asset.UpdatedAt = updated
	}
	return asset, nil
}

func parseDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &parsed, nil
}
