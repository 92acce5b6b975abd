package onixgen

import (
	"strings"
	"testing"

	"github.com/elibri/go-onixgen/pkg/testsupport"
)

func TestGenerateDefaultsToFullProfile(t *testing.T) {
	out, err := GenerateString([]*Product{testsupport.StockedProduct()})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, want := range []string{
		"<ONIXMessage",
		"<DescriptiveDetail>",
		"<ProductSupply>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestGenerateHonoursOptions(t *testing.T) {
	out, err := GenerateString([]*Product{testsupport.StockedProduct()},
		WithVariant(VariantStocksOnly), WithPureONIX(true))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if strings.Contains(out, "<DescriptiveDetail>") {
		t.Fatalf("stock profile must not render descriptive detail:\n%s", out)
	}
	if strings.Contains(out, "elibri:") {
		t.Fatalf("pure ONIX output carries vendor elements:\n%s", out)
	}
}

func TestNewValidatesConfiguration(t *testing.T) {
	if _, err := New(WithVariant(VariantFull), WithDialect("2.1")); err == nil {
		t.Fatal("unknown dialect must be rejected")
	}
}
