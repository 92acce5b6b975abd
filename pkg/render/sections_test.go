package render

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/elibri/go-onixgen/internal/sanitize"
	"github.com/elibri/go-onixgen/pkg/product"
	"github.com/elibri/go-onixgen/pkg/testsupport"
)

func renderOne(t *testing.T, p *product.Product, opts ...Option) string {
	t.Helper()
	return mustGenerate(t, []*product.Product{p}, append([]Option{WithoutHeaders()}, opts...)...)
}

func TestIdentifiersSuppressDuplicateEAN(t *testing.T) {
	p := testsupport.PublishedBook()
	p.EAN = p.ISBNValue
	out := renderOne(t, p)

	if strings.Contains(out, "<ProductIDType>03</ProductIDType>") {
		t.Fatalf("EAN equal to ISBN must be suppressed:\n%s", out)
	}
	if !strings.Contains(out, "<ProductIDType>15</ProductIDType>") {
		t.Fatalf("ISBN identifier missing:\n%s", out)
	}
}

func TestIdentifiersEmitDistinctEAN(t *testing.T) {
	p := testsupport.PublishedBook()
	p.EAN = "5901234123457"
	out := renderOne(t, p)

	if !strings.Contains(out, "<ProductIDType>03</ProductIDType>") ||
		!strings.Contains(out, "<IDValue>5901234123457</IDValue>") {
		t.Fatalf("distinct EAN must be emitted:\n%s", out)
	}
}

func TestIdentifiersDOIAndExternal(t *testing.T) {
	p := testsupport.PublishedBook()
	p.DOI = "10.1000/182"
	p.ExternalIdentifier = &product.ExternalID{TypeName: "Azymut", Value: "A-12345"}
	out := renderOne(t, p)

	if !strings.Contains(out, "<ProductIDType>06</ProductIDType>") {
		t.Fatalf("DOI identifier missing:\n%s", out)
	}
	if !strings.Contains(out, "<IDTypeName>Azymut</IDTypeName>") {
		t.Fatalf("external proprietary identifier missing:\n%s", out)
	}
}

func TestSupplierIdentifiersOnlyInStockExports(t *testing.T) {
	p := testsupport.StockedProduct()

	full := renderOne(t, p)
	if !strings.Contains(full, "<IDTypeName>Hurtownia Książek</IDTypeName>") {
		t.Fatalf("supplier identifier missing from stock export:\n%s", full)
	}

	meta := renderOne(t, p, WithVariant(VariantBasicMeta))
	if strings.Contains(meta, "<IDTypeName>Hurtownia Książek</IDTypeName>") {
		t.Fatalf("supplier identifier leaked into metadata export:\n%s", meta)
	}
}

func TestTitleBlockWithCollectionLevel(t *testing.T) {
	p := testsupport.PublishedBook()
	p.CollectionName = "Klasyka polska"
	p.CollectionPart = "7"
	out := renderOne(t, p)

	collection := strings.Index(out, "<TitleElementLevel>02</TitleElementLevel>")
	prod := strings.Index(out, "<TitleElementLevel>01</TitleElementLevel>")
	if collection < 0 || prod < 0 || collection > prod {
		t.Fatalf("collection level must precede product level:\n%s", out)
	}
	if !strings.Contains(out, "<PartNumber>7</PartNumber>") {
		t.Fatalf("collection part missing:\n%s", out)
	}
	if !strings.Contains(out, `<TitleText language="pol">Ogniem i mieczem</TitleText>`) {
		t.Fatalf("product title with working language missing:\n%s", out)
	}
}

func TestEnglishTitleCarriesFixedLanguage(t *testing.T) {
	p := testsupport.PublishedBook()
	p.EnglishTitle = "With Fire and Sword"
	out := renderOne(t, p)

	if !strings.Contains(out, "<TitleType>06</TitleType>") {
		t.Fatalf("English title type missing:\n%s", out)
	}
	if !strings.Contains(out, `<TitleText language="eng">With Fire and Sword</TitleText>`) {
		t.Fatalf("English title must be tagged eng:\n%s", out)
	}
}

func TestOriginalTitleHasNoLanguageAttr(t *testing.T) {
	out := renderOne(t, testsupport.PublishedBook())
	if !strings.Contains(out, "<TitleType>03</TitleType>") {
		t.Fatalf("original title missing:\n%s", out)
	}
	if !strings.Contains(out, "<TitleText>Ogniem i mieczem</TitleText>") {
		t.Fatalf("original title must carry no language attribute:\n%s", out)
	}
}

func TestSeriesMembershipBlock(t *testing.T) {
	out := renderOne(t, testsupport.PublishedBook())

	if !strings.Contains(out, "<CollectionType>10</CollectionType>") {
		t.Fatalf("publisher collection type missing:\n%s", out)
	}
	if !strings.Contains(out, "<PartNumber>1</PartNumber>") {
		t.Fatalf("series number missing:\n%s", out)
	}
	if !strings.Contains(out, "<TitleText>Trylogia</TitleText>") {
		t.Fatalf("series name missing:\n%s", out)
	}
}

func TestSeriesWithISSN(t *testing.T) {
	p := testsupport.PublishedBook()
	p.CollectionWithISSN = &product.SeriesMembership{SeriesName: "Kwartalnik", ISSN: "12345679"}
	out := renderOne(t, p)

	if !strings.Contains(out, "<CollectionIDType>02</CollectionIDType>") ||
		!strings.Contains(out, "<IDValue>12345679</IDValue>") {
		t.Fatalf("ISSN collection identifier missing:\n%s", out)
	}
}

func TestContributorStructuredParts(t *testing.T) {
	p := testsupport.PublishedBook()
	p.Contributors = []product.Contributor{{
		ID:              5,
		Role:            "B06",
		FromLanguage:    "fre",
		TitleBeforeName: "dr",
		FirstName:       "Anna",
		LastNamePrefix:  "de",
		LastName:        "Krasicka",
		LastNamePostfix: "jr",
	}}
	out := renderOne(t, p)

	for _, want := range []string{
		"<SequenceNumber>1</SequenceNumber>",
		"<ContributorRole>B06</ContributorRole>",
		"<FromLanguage>fre</FromLanguage>",
		"<PersonName>Anna Krasicka</PersonName>",
		"<TitlesBeforeNames>dr</TitlesBeforeNames>",
		"<NamesBeforeKey>Anna</NamesBeforeKey>",
		"<PrefixToKey>de</PrefixToKey>",
		"<KeyNames>Krasicka</KeyNames>",
		"<NamesAfterKey>jr</NamesAfterKey>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestContributorUnstructuredNameOnly(t *testing.T) {
	p := testsupport.DigitalProduct()
	out := renderOne(t, p)

	if !strings.Contains(out, "<PersonName>Maria Nowak</PersonName>") {
		t.Fatalf("person name missing:\n%s", out)
	}
	if strings.Contains(out, "<KeyNames>") {
		t.Fatalf("structured parts must need both first and last name:\n%s", out)
	}
}

func TestContributorBiographyRoundTrip(t *testing.T) {
	const biography = "Pisał dla Kuriera & Gazety"
	p := testsupport.PublishedBook()
	p.Contributors[0].Biography = biography
	out := renderOne(t, p)

	if strings.Contains(out, "&amp;amp;") {
		t.Fatalf("biography escaped twice:\n%s", out)
	}
	if !strings.Contains(out, "<BiographicalNote><![CDATA[") {
		t.Fatalf("biography must be wrapped in CDATA:\n%s", out)
	}

	// Re-parsing must recover the sanitized text exactly as supplied.
	dec := xml.NewDecoder(strings.NewReader(out))
	var got string
	var inNote bool
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("re-parse: %v", err)
		}
		switch v := tok.(type) {
		case xml.StartElement:
			inNote = v.Name.Local == "BiographicalNote"
		case xml.CharData:
			if inNote {
				got += string(v)
			}
		case xml.EndElement:
			inNote = false
		}
	}
	if want := sanitize.HTML(biography); got != want {
		t.Fatalf("recovered %q, want %q", got, want)
	}
}

func TestCollectiveWorkMarker(t *testing.T) {
	out := renderOne(t, testsupport.CollectiveWork())

	if !strings.Contains(out, "<UnnamedPersons>04</UnnamedPersons>") {
		t.Fatalf("collective work marker missing:\n%s", out)
	}
	if strings.Contains(out, "<PersonName>") {
		t.Fatalf("collective work must not name persons:\n%s", out)
	}
}

func TestNoContributorMarker(t *testing.T) {
	out := renderOne(t, testsupport.MapProduct())
	if !strings.Contains(out, "<NoContributor/>") {
		t.Fatalf("no-contributor marker missing:\n%s", out)
	}
}

func TestMeasurementFixedOrder(t *testing.T) {
	out := renderOne(t, testsupport.PublishedBook())

	height := strings.Index(out, "<MeasureType>01</MeasureType>")
	width := strings.Index(out, "<MeasureType>02</MeasureType>")
	thickness := strings.Index(out, "<MeasureType>03</MeasureType>")
	weight := strings.Index(out, "<MeasureType>08</MeasureType>")
	if height < 0 || width < 0 || thickness < 0 || weight < 0 {
		t.Fatalf("expected all four measures:\n%s", out)
	}
	if !(height < width && width < thickness && thickness < weight) {
		t.Fatalf("measures out of order:\n%s", out)
	}
	if !strings.Contains(out, "<MeasureUnitCode>gr</MeasureUnitCode>") {
		t.Fatalf("weight must be in grams:\n%s", out)
	}
}

func TestDigitalProductSkipsMeasures(t *testing.T) {
	p := testsupport.DigitalProduct()
	p.Height = testsupport.IntPtr(210)
	out := renderOne(t, p)

	if strings.Contains(out, "<Measure>") {
		t.Fatalf("digital products carry no physical measures:\n%s", out)
	}
}

func TestEpubPreviewConstraint(t *testing.T) {
	out := renderOne(t, testsupport.DigitalProduct())

	want := "    <EpubUsageConstraint>\n" +
		"      <EpubUsageType>01</EpubUsageType>\n" +
		"      <EpubUsageStatus>02</EpubUsageStatus>\n" +
		"      <EpubUsageLimit>\n" +
		"        <Quantity>20</Quantity>\n" +
		"        <EpubUsageUnit>09</EpubUsageUnit>\n" +
		"      </EpubUsageLimit>\n" +
		"    </EpubUsageConstraint>\n"
	if !strings.Contains(out, want) {
		t.Fatalf("missing preview constraint block in:\n%s", out)
	}
}

func TestEpubPreviewProhibitedHasNoLimit(t *testing.T) {
	p := testsupport.DigitalProduct()
	p.PreviewStatus = "03"
	p.PreviewLimit = nil
	out := renderOne(t, p)

	if !strings.Contains(out, "<EpubUsageStatus>03</EpubUsageStatus>") {
		t.Fatalf("usage status missing:\n%s", out)
	}
	if strings.Contains(out, "<EpubUsageLimit>") {
		t.Fatalf("prohibited preview must not carry a limit:\n%s", out)
	}
}

func TestEpubPreviewIgnoredForPrintedProducts(t *testing.T) {
	p := testsupport.PublishedBook()
	p.PreviewStatus = "02"
	p.PreviewLimit = testsupport.IntPtr(10)
	out := renderOne(t, p)

	if strings.Contains(out, "<EpubUsageConstraint>") {
		t.Fatalf("printed products carry no usage constraints:\n%s", out)
	}
}

func TestMapScale(t *testing.T) {
	out := renderOne(t, testsupport.MapProduct())
	if !strings.Contains(out, "<MapScale>50000</MapScale>") {
		t.Fatalf("map scale missing:\n%s", out)
	}
}

func TestExtentByKind(t *testing.T) {
	book := renderOne(t, testsupport.PublishedBook())
	if !strings.Contains(book, "<ExtentType>00</ExtentType>") ||
		!strings.Contains(book, "<ExtentValue>448</ExtentValue>") {
		t.Fatalf("page count extent missing:\n%s", book)
	}
	if !strings.Contains(book, "<NumberOfIllustrations>12</NumberOfIllustrations>") {
		t.Fatalf("illustration count missing:\n%s", book)
	}

	ebook := renderOne(t, testsupport.DigitalProduct())
	if !strings.Contains(ebook, "<ExtentType>22</ExtentType>") ||
		!strings.Contains(ebook, "<ExtentUnit>19</ExtentUnit>") {
		t.Fatalf("file size extent missing:\n%s", ebook)
	}
}

func TestAudienceRangeBounds(t *testing.T) {
	p := testsupport.PublishedBook()
	p.AudienceAgeFrom = testsupport.IntPtr(7)
	p.AudienceAgeTo = testsupport.IntPtr(12)
	out := renderOne(t, p)

	if strings.Count(out, "<AudienceRangeQualifier>18</AudienceRangeQualifier>") != 2 {
		t.Fatalf("expected two audience range blocks:\n%s", out)
	}
	if !strings.Contains(out, "<AudienceRangePrecision>03</AudienceRangePrecision>") ||
		!strings.Contains(out, "<AudienceRangePrecision>04</AudienceRangePrecision>") {
		t.Fatalf("from/to precisions missing:\n%s", out)
	}
}

func TestThemaSchemeMapping(t *testing.T) {
	p := testsupport.PublishedBook()
	p.ThemaCodes = []string{"FBA", "1DTP", "2ACB", "3MN", "4Z", "5AN", "6RA"}
	p.ElibriCategories = nil
	p.Keywords = nil
	out := renderOne(t, p)

	cases := map[string]string{
		"FBA":  "93",
		"1DTP": "94",
		"2ACB": "95",
		"3MN":  "96",
		"4Z":   "97",
		"5AN":  "98",
		"6RA":  "99",
	}
	for code, scheme := range cases {
		block := "<SubjectSchemeIdentifier>" + scheme + "</SubjectSchemeIdentifier>\n      <SubjectCode>" + code + "</SubjectCode>"
		if !strings.Contains(out, block) {
			t.Errorf("Thema code %s must map to scheme %s:\n%s", code, scheme, out)
		}
	}
}

func TestProprietaryCategoriesAndMainSubject(t *testing.T) {
	p := testsupport.PublishedBook()
	p.PublisherCategories = []product.Category{{Code: "K7", Heading: "Kryminał"}}
	out := renderOne(t, p)

	if !strings.Contains(out, "<MainSubject/>") {
		t.Fatalf("first catalogue category must be the main subject:\n%s", out)
	}
	if !strings.Contains(out, "<SubjectSchemeName>elibri.com.pl</SubjectSchemeName>") {
		t.Fatalf("catalogue scheme name missing:\n%s", out)
	}
	if !strings.Contains(out, "<SubjectSchemeName>Wydawnictwo Krajowe Sp. z o.o.</SubjectSchemeName>") {
		t.Fatalf("publisher scheme name missing:\n%s", out)
	}
}

func TestKeywordsGroupedByLanguage(t *testing.T) {
	p := testsupport.PublishedBook()
	p.Keywords = map[string][]string{
		"pol": {"powieść", " historia "},
		"eng": {"novel"},
	}
	out := renderOne(t, p)

	eng := strings.Index(out, `<SubjectHeadingText language="eng">novel</SubjectHeadingText>`)
	pol := strings.Index(out, `<SubjectHeadingText language="pol">powieść; historia</SubjectHeadingText>`)
	if eng < 0 || pol < 0 {
		t.Fatalf("keyword groups missing:\n%s", out)
	}
	if eng > pol {
		t.Fatalf("keyword languages must render in sorted order:\n%s", out)
	}
}

func TestPublishingDatePrecisionCodes(t *testing.T) {
	p := testsupport.PublishedBook()
	p.PublicationMonth = 0
	p.PublicationDay = 0
	out := renderOne(t, p)

	if !strings.Contains(out, "<DateFormat>05</DateFormat>") ||
		!strings.Contains(out, "<Date>2024</Date>") {
		t.Fatalf("year-precision date missing:\n%s", out)
	}
}

func TestDistributionStartDate(t *testing.T) {
	p := testsupport.PublishedBook()
	p.DistributionStart = testsupport.TimePtr(testsupport.Date(2024, 5, 1))
	out := renderOne(t, p)

	if !strings.Contains(out, "<PublishingDateRole>27</PublishingDateRole>") ||
		!strings.Contains(out, "<Date>20240501</Date>") {
		t.Fatalf("preorder embargo date missing:\n%s", out)
	}
}

func TestLicenseExpiryBecomesOutOfPrintDate(t *testing.T) {
	out := renderOne(t, testsupport.DigitalProduct())
	if !strings.Contains(out, "<PublishingDateRole>13</PublishingDateRole>") ||
		!strings.Contains(out, "<Date>20271231</Date>") {
		t.Fatalf("out-of-print date missing:\n%s", out)
	}

	unrestricted := testsupport.DigitalProduct()
	unrestricted.EpubSaleNotRestricted = true
	out = renderOne(t, unrestricted)
	if strings.Contains(out, "<PublishingDateRole>13</PublishingDateRole>") {
		t.Fatalf("unrestricted sale must not produce an out-of-print date:\n%s", out)
	}
}

func TestTerritorialRights(t *testing.T) {
	p := testsupport.PublishedBook()
	p.SaleRestrictedToPoland = testsupport.BoolPtr(true)
	out := renderOne(t, p)
	if !strings.Contains(out, "<CountriesIncluded>PL</CountriesIncluded>") {
		t.Fatalf("Poland-only sales rights missing:\n%s", out)
	}

	p.SaleRestrictedToPoland = testsupport.BoolPtr(false)
	out = renderOne(t, p)
	if !strings.Contains(out, "<RegionsIncluded>WORLD</RegionsIncluded>") {
		t.Fatalf("worldwide sales rights missing:\n%s", out)
	}

	p.SaleRestrictedToPoland = nil
	out = renderOne(t, p)
	if strings.Contains(out, "<SalesRights>") {
		t.Fatalf("unknown territory must not emit sales rights:\n%s", out)
	}
}

func TestRetailerExclusivityWindow(t *testing.T) {
	p := testsupport.PublishedBook()
	p.SaleRestrictedFor = "Empik"
	p.SaleRestrictedTo = testsupport.TimePtr(testsupport.Date(2026, 3, 1))
	out := renderOne(t, p)

	if !strings.Contains(out, "<SalesRestrictionType>04</SalesRestrictionType>") ||
		!strings.Contains(out, "<SalesOutletName>Empik</SalesOutletName>") ||
		!strings.Contains(out, "<EndDate>20260301</EndDate>") {
		t.Fatalf("exclusivity window missing:\n%s", out)
	}
}

func TestTextsSkipInternalAndSanitize(t *testing.T) {
	p := testsupport.PublishedBook()
	p.OtherTexts = []product.OtherText{
		{ID: 1, TypeCode: "03", Text: "<p>Opis <script>alert(1)</script>książki</p>"},
		{ID: 2, TypeCode: "03", Text: "tylko dla redakcji", Internal: true},
		{ID: 3, Text: "bez typu"},
	}
	out := renderOne(t, p)

	if strings.Contains(out, "script") {
		t.Fatalf("markup must be sanitized:\n%s", out)
	}
	if !strings.Contains(out, "<![CDATA[") {
		t.Fatalf("text payload must be CDATA-wrapped:\n%s", out)
	}
	if strings.Contains(out, "tylko dla redakcji") || strings.Contains(out, "bez typu") {
		t.Fatalf("internal or untyped texts leaked:\n%s", out)
	}
}

func TestReviewCarriesSourceURL(t *testing.T) {
	p := testsupport.PublishedBook()
	p.OtherTexts = []product.OtherText{
		{ID: 4, TypeCode: "06", Text: "Świetna lektura", Review: true, ResourceLink: "https://reviews.example/1", TextAuthor: "Jan Recenzent", SourceTitle: "Tygodnik"},
	}
	out := renderOne(t, p)

	if !strings.Contains(out, `<Text sourcename="https://reviews.example/1">`) {
		t.Fatalf("review source attribute missing:\n%s", out)
	}
	if !strings.Contains(out, "<TextAuthor>Jan Recenzent</TextAuthor>") ||
		!strings.Contains(out, "<SourceTitle>Tygodnik</SourceTitle>") {
		t.Fatalf("review attribution missing:\n%s", out)
	}
}

func TestSupportingResourcesNeedModeAndAbsoluteLink(t *testing.T) {
	p := testsupport.PublishedBook()
	p.Attachments = []product.Attachment{
		{ID: 7, ContentType: "01", ResourceMode: "03", URL: "/covers/978.jpg"},
		{ID: 8, ContentType: "01", URL: "/skipped.jpg"},
	}
	out := renderOne(t, p)

	if !strings.Contains(out, "<ResourceLink>https://www.elibri.com.pl/covers/978.jpg</ResourceLink>") {
		t.Fatalf("relative link must be absolutized:\n%s", out)
	}
	if strings.Contains(out, "skipped.jpg") {
		t.Fatalf("attachment without resource mode leaked:\n%s", out)
	}
	if !strings.Contains(out, "<ResourceForm>02</ResourceForm>") {
		t.Fatalf("downloadable resource form missing:\n%s", out)
	}
}

func TestRelatedProductsFacsimiles(t *testing.T) {
	p := testsupport.PublishedBook()
	p.Facsimiles = []product.Facsimile{{RecordReference: "eb7720a1b3144390ab11"}}
	out := renderOne(t, p)

	if !strings.Contains(out, "<ProductRelationCode>23</ProductRelationCode>") ||
		!strings.Contains(out, "<IDTypeName>elibri</IDTypeName>") ||
		!strings.Contains(out, "<IDValue>eb7720a1b3144390ab11</IDValue>") {
		t.Fatalf("facsimile relation missing:\n%s", out)
	}
}

func TestSupplyDetailFullChain(t *testing.T) {
	out := renderOne(t, testsupport.StockedProduct())

	for _, want := range []string{
		"<SupplierRole>03</SupplierRole>",
		"<IDValue>5252104234</IDValue>",
		"<SupplierName>Hurtownia Książek</SupplierName>",
		"<TelephoneNumber>+48 22 123 45 67</TelephoneNumber>",
		"<WebsiteLink>https://hurtownia.example.pl</WebsiteLink>",
		"<ProductAvailability>21</ProductAvailability>",
		"<OnHand>130</OnHand>",
		"<Proximity>03</Proximity>",
		"<PackQuantity>20</PackQuantity>",
		"<PriceType>02</PriceType>",
		"<PriceAmount>49.90</PriceAmount>",
		"<TaxType>01</TaxType>",
		"<TaxRatePercent>5</TaxRatePercent>",
		"<CurrencyCode>PLN</CurrencyCode>",
		"<PrintedOnProduct>02</PrintedOnProduct>",
		"<PositionOnProduct>00</PositionOnProduct>",
		"<PriceDateRole>14</PriceDateRole>",
		"<Date>20240601</Date>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestSkipProductSupply(t *testing.T) {
	p := testsupport.StockedProduct()
	p.SkipProductSupply = true
	out := renderOne(t, p)

	if strings.Contains(out, "<ProductSupply>") {
		t.Fatalf("opted-out product still carries supply data:\n%s", out)
	}
}

func TestExtensionsBlock(t *testing.T) {
	out := renderOne(t, testsupport.DigitalProduct())

	for _, want := range []string{
		"<elibri:preview_exists>true</elibri:preview_exists>",
		"<elibri:SaleRestrictedTo>20271231</elibri:SaleRestrictedTo>",
		`<elibri:excerpt md5="0cc175b9c0f1b6a831c399e269772661"`,
		`updated_at="2025-01-10T00:00:00Z" id="9001">https://www.elibri.com.pl/excerpt/9001</elibri:excerpt>`,
		`<elibri:master id="9002" md5="92eb5ffee6ae2fec3ad71c777531578f"`,
		`file_type="epub"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestExtensionsSaleNotRestricted(t *testing.T) {
	p := testsupport.DigitalProduct()
	p.EpubSaleNotRestricted = true
	out := renderOne(t, p)

	if !strings.Contains(out, "<elibri:SaleNotRestricted/>") {
		t.Fatalf("unrestricted marker missing:\n%s", out)
	}
	if strings.Contains(out, "<elibri:SaleRestrictedTo>") {
		t.Fatalf("restriction date must not accompany the unrestricted marker:\n%s", out)
	}
}

func TestExtensionsHyphenatedISBNAndCover(t *testing.T) {
	out := renderOne(t, testsupport.PublishedBook())

	for _, want := range []string{
		"<elibri:CoverType>miękka</elibri:CoverType>",
		"<elibri:CoverPrice>49.90</elibri:CoverPrice>",
		"<elibri:Vat>5</elibri:Vat>",
		"<elibri:HyphenatedISBN>978-83-247-9999-2</elibri:HyphenatedISBN>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
