// Package testsupport provides canned product records and golden-file helpers
// shared by the generator test suites.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/elibri/go-onixgen/pkg/product"
)

// IntPtr returns a pointer to v, for the optional numeric fields.
func IntPtr(v int) *int { return &v }

// BoolPtr returns a pointer to v, for tri-state flags.
func BoolPtr(v bool) *bool { return &v }

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time { return &t }

// Date builds a midnight UTC time for fixture literals.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// PublishedBook is a fully described printed title: identifiers, measurements,
// contributors, titles, subjects and publisher info are all present so that
// completeness assertions have something to find in every container.
func PublishedBook() *product.Product {
	return &product.Product{
		RecordReference:      "fa3bcgdeaa9c8b1c1272",
		Public:               true,
		Kind:                 product.KindBook,
		NotificationType:     "03",
		ISBNValue:            "9788324799992",
		HyphenatedISBN:       "978-83-247-9999-2",
		ProductFormCode:      "BC",
		Height:               IntPtr(210),
		Width:                IntPtr(148),
		Thickness:            IntPtr(14),
		Weight:               IntPtr(240),
		PublicationYear:      2024,
		PublicationMonth:     5,
		PublicationDay:       15,
		PublishingStatusCode: "04",
		Authorship:           product.AuthorshipUserGiven,
		Contributors: []product.Contributor{
			{
				ID:        101,
				Role:      "A01",
				FirstName: "Jan",
				LastName:  "Kowalski",
				FullName:  "Jan Kowalski",
				UpdatedAt: TimePtr(Date(2024, time.March, 2)),
			},
		},
		Title:         "Ogniem i mieczem",
		Subtitle:      "Powieść historyczna",
		OriginalTitle: "Ogniem i mieczem",
		SeriesMemberships: []product.SeriesMembership{
			{SeriesName: "Trylogia", NumberWithinSeries: "1"},
		},
		EditionStatement: "wyd. 3, poprawione",
		Languages: []product.Language{
			{Role: "01", Code: "pol"},
		},
		NumberOfPages:         IntPtr(448),
		NumberOfIllustrations: IntPtr(12),
		ImprintName:           "Wydawnictwo Krajowe",
		PublisherName:         "Wydawnictwo Krajowe Sp. z o.o.",
		PublisherID:           "1410",
		CityOfPublication:     "Warszawa",
		ThemaCodes:            []string{"FBA", "3MN"},
		ElibriCategories: []product.Category{
			{Code: "480", Heading: "Literatura piękna"},
		},
		Keywords: map[string][]string{
			"pol": {"powieść", "historia"},
		},
		CoverType:  "miękka",
		CoverPrice: "49.90",
		Vat:        IntPtr(5),
	}
}

// DigitalProduct is an e-book with DRM info, a limited preview fragment,
// extent in megabytes and a license expiry date, exercising the epub and
// out-of-print date paths.
func DigitalProduct() *product.Product {
	return &product.Product{
		RecordReference:         "eb7720a1b3144390ab11",
		Public:                  true,
		Kind:                    product.KindEbook,
		NotificationType:        "03",
		ISBNValue:               "9788324799893",
		EAN:                     "9788324799893",
		ProductFormCode:         "ED",
		ProductFormDetails:      []string{"E101", "E200"},
		EpubTechnicalProtection: "03",
		EpubSaleRestrictedTo:    TimePtr(Date(2027, time.December, 31)),
		PreviewExists:           true,
		PreviewStatus:           "02",
		PreviewUnit:             "09",
		PreviewLimit:            IntPtr(20),
		PublicationYear:         2025,
		PublicationMonth:        2,
		PublishingStatusCode:    "04",
		Authorship:              product.AuthorshipUserGiven,
		Contributors: []product.Contributor{
			{ID: 77, Role: "A01", FullName: "Maria Nowak"},
		},
		Title:         "Cyfrowe miasto",
		FileSize:      IntPtr(4),
		ImprintName:   "Wydawnictwo Krajowe",
		PublisherName: "Wydawnictwo Krajowe Sp. z o.o.",
		Excerpts: []product.FileAsset{
			{ID: 9001, MD5: "0cc175b9c0f1b6a831c399e269772661", FileSize: 215040, FileType: "epub", UpdatedAt: Date(2025, time.January, 10)},
		},
		Masters: []product.FileAsset{
			{ID: 9002, MD5: "92eb5ffee6ae2fec3ad71c777531578f", FileSize: 4194304, FileType: "epub", UpdatedAt: Date(2025, time.January, 10)},
		},
	}
}

// MapProduct carries a cartographic scale and no contributors.
func MapProduct() *product.Product {
	return &product.Product{
		RecordReference:      "map0918273645fedcba0",
		Public:               true,
		Kind:                 product.KindMap,
		NotificationType:     "03",
		ISBNValue:            "9788374955423",
		ProductFormCode:      "CB",
		MapScale:             IntPtr(50000),
		Authorship:           product.AuthorshipNoContributor,
		Title:                "Tatry Wysokie",
		PublicationYear:      2023,
		PublishingStatusCode: "04",
		PublisherName:        "Kartografia Tatrzańska",
	}
}

// CollectiveWork is authored by "various" rather than named persons.
func CollectiveWork() *product.Product {
	return &product.Product{
		RecordReference:      "anthology1234567890ab",
		Public:               true,
		Kind:                 product.KindBook,
		NotificationType:     "03",
		ISBNValue:            "9788311155558",
		ProductFormCode:      "BB",
		Authorship:           product.AuthorshipCollective,
		Title:                "Antologia opowiadań",
		PublicationYear:      2022,
		PublishingStatusCode: "04",
		PublisherName:        "Oficyna Zbiorowa",
	}
}

// StockedProduct has a full supply chain: supplier identity, stock level,
// pack quantity and a price with VAT and an activation date.
func StockedProduct() *product.Product {
	p := PublishedBook()
	p.RecordReference = "stocked0011223344556"
	p.PackQuantity = IntPtr(20)
	p.PricePrintedOnProduct = "02"
	p.Availabilities = []product.Availability{
		{
			Supplier: product.Supplier{
				Name:     "Hurtownia Książek",
				Role:     "03",
				TaxID:    "525-21-04-234",
				Phone:    "+48 22 123 45 67",
				Email:    "zamowienia@hurtownia.example.pl",
				Websites: []string{"https://hurtownia.example.pl"},
			},
			SupplierIdentifier: "HK-778",
			AvailabilityCode:   "21",
			Stock:              &product.StockInfo{OnHand: 130},
			Prices: []product.PriceInfo{
				{
					Amount:        "49.90",
					CurrencyCode:  "PLN",
					VatRate:       IntPtr(5),
					EffectiveFrom: TimePtr(Date(2024, time.June, 1)),
				},
			},
		},
	}
	return p
}

// DeletedRecord is the minimal delete notification: reference, type 05 and
// an explanation, nothing else.
func DeletedRecord() *product.Product {
	return &product.Product{
		RecordReference:  "gone5566778899aabbcc",
		Public:           true,
		NotificationType: "05",
		DeletionText:     "wycofane z oferty",
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Diff returns a human readable diff between want and got, empty when equal.
func Diff(want, got any) string {
	return cmp.Diff(want, got)
}
