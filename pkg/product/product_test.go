package product

import (
	"testing"
	"time"
)

func TestPresent(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"x", true},
		{"  x  ", true},
	}
	for _, tc := range cases {
		if got := Present(tc.in); got != tc.want {
			t.Errorf("Present(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPublicationDatePrecision(t *testing.T) {
	cases := []struct {
		name       string
		year       int
		month      int
		day        int
		wantValue  string
		wantFormat string
	}{
		{"full date", 2024, 5, 15, "20240515", "00"},
		{"year and month", 2024, 5, 0, "202405", "01"},
		{"year only", 2024, 0, 0, "2024", "05"},
		{"day without month is year precision", 2024, 0, 15, "2024", "05"},
		{"nothing known", 0, 0, 0, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Product{PublicationYear: tc.year, PublicationMonth: tc.month, PublicationDay: tc.day}
			value, format := p.PublicationDate()
			if value != tc.wantValue || format != tc.wantFormat {
				t.Fatalf("got (%q, %q), want (%q, %q)", value, format, tc.wantValue, tc.wantFormat)
			}
		})
	}
}

func TestSaleRestrictedNeedsOutletAndDate(t *testing.T) {
	until := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	p := &Product{SaleRestrictedFor: "Empik", SaleRestrictedTo: &until}
	if !p.SaleRestricted() {
		t.Fatal("outlet plus expiry date should restrict sales")
	}
	if (&Product{SaleRestrictedFor: "Empik"}).SaleRestricted() {
		t.Fatal("outlet without expiry date must not restrict")
	}
	if (&Product{SaleRestrictedTo: &until}).SaleRestricted() {
		t.Fatal("expiry date without outlet must not restrict")
	}
}

func TestKindPredicates(t *testing.T) {
	if !KindEbook.Digital() || !KindAudiobook.Digital() {
		t.Fatal("e-book and audiobook are digital")
	}
	if KindBook.Digital() {
		t.Fatal("printed book is not digital")
	}
	if !KindAudiobook.Audio() || KindEbook.Audio() {
		t.Fatal("only audiobooks are audio")
	}
	if !KindBook.Measurable() || KindEbook.Measurable() {
		t.Fatal("physical products are measurable, digital ones are not")
	}
}

func TestContributorDisplayName(t *testing.T) {
	c := &Contributor{FullName: "Jan Kowalski"}
	if got := c.DisplayName(); got != "Jan Kowalski" {
		t.Fatalf("explicit full name wins: %q", got)
	}

	c = &Contributor{FirstName: "Jan", LastName: "Kowalski"}
	if got := c.DisplayName(); got != "Jan Kowalski" {
		t.Fatalf("joined parts: %q", got)
	}

	c = &Contributor{LastName: "Kowalski"}
	if got := c.DisplayName(); got != "Kowalski" {
		t.Fatalf("missing first name must not leave a stray space: %q", got)
	}
}

func TestContributorStructuredName(t *testing.T) {
	if !(&Contributor{FirstName: "Jan", LastName: "Kowalski"}).StructuredName() {
		t.Fatal("both parts present should be structured")
	}
	if (&Contributor{FullName: "Jan Kowalski"}).StructuredName() {
		t.Fatal("full name alone is not structured")
	}
	if (&Contributor{FirstName: "Jan"}).StructuredName() {
		t.Fatal("first name alone is not structured")
	}
}
