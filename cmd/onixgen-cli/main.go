package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	onixgen "github.com/elibri/go-onixgen"
	"github.com/elibri/go-onixgen/internal/productfile"
	"github.com/elibri/go-onixgen/pkg/render"
)

func main() {
	input := flag.String("input", "", "product batch file, YAML or JSON")
	output := flag.String("output", "", "output file (stdout if empty)")
	dialect := flag.String("dialect", "3.0.1", "ONIX dialect: 3.0.1 or 3.0.2")
	variant := flag.String("variant", "full", "export profile: full, basic_meta or stocks_only")
	pureONIX := flag.Bool("pure-onix", false, "suppress vendor extension elements")
	noHeaders := flag.Bool("no-headers", false, "emit Product subtrees without the message envelope")
	comments := flag.Bool("comments", false, "include explanatory comments in the output")
	sender := flag.String("sender", "", "sender name for the message header")
	contact := flag.String("contact", "", "sender contact name")
	email := flag.String("email", "", "sender contact email")
	language := flag.String("language", "pol", "working language code for free-text elements")
	stable := flag.Bool("stable", false, "suppress volatile sourcename/datestamp attributes")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -input: need a product batch file")
	}

	products, err := productfile.Load(*input)
	if err != nil {
		log.Fatalf("Failed to load products: %v", err)
	}

	v, err := parseVariant(*variant)
	if err != nil {
		log.Fatalf("invalid variant: %v", err)
	}

	opts := []onixgen.Option{
		onixgen.WithDialect(render.Dialect(*dialect)),
		onixgen.WithVariant(v),
		onixgen.WithPureONIX(*pureONIX),
		onixgen.WithLanguageCode(*language),
	}
	if *noHeaders {
		opts = append(opts, onixgen.WithoutHeaders())
	}
	if *comments {
		opts = append(opts, onixgen.WithComments())
	}
	if *sender != "" {
		opts = append(opts, onixgen.WithSender(*sender, *contact, *email))
	}
	if *stable {
		opts = append(opts, onixgen.WithStableOutput())
	}

	xml, err := onixgen.Generate(products, opts...)
	if err != nil {
		log.Fatalf("Failed to generate message: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, xml, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("ONIX message written to %s\n", *output)
	} else {
		fmt.Println(string(xml))
	}
}

func parseVariant(raw string) (onixgen.Variant, error) {
	switch strings.TrimSpace(raw) {
	case "full":
		return onixgen.VariantFull, nil
	case "basic_meta":
		return onixgen.VariantBasicMeta, nil
	case "stocks_only":
		return onixgen.VariantStocksOnly, nil
	default:
		return onixgen.Variant{}, fmt.Errorf("unknown profile %q", raw)
	}
}
