// Package productfile decodes batches of product records from YAML or JSON
// files for the command line tools. Decoding is strict: unknown keys are
// reported as errors rather than silently dropped, since a typo in a field
// name would otherwise degrade to a silently absent attribute.
package productfile

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/elibri/go-onixgen/pkg/product"
)

// Load reads a product batch from a file on disk.
func Load(path string) ([]*product.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("productfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a product batch from an fs.FS, mirroring Load.
func LoadFS(fsys fs.FS, path string) ([]*product.Product, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("productfile: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes a product batch from raw bytes. The path is used for error
// reporting only; YAML is a superset of JSON, so both formats go through the
// same decoder.
func Parse(data []byte, path string) ([]*product.Product, error) {
	var doc document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("productfile: parse %s: %w", path, err)
	}

	products := make([]*product.Product, 0, len(doc.Products))
	for i, fp := range doc.Products {
		p, err := fp.toProduct()
		if err != nil {
			return nil, fmt.Errorf("productfile: %s: product %d: %w", path, i, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func parseKind(raw string) (product.Kind, error) {
	switch strings.TrimSpace(raw) {
	case "", "book":
		return product.KindBook, nil
	case "ebook":
		return product.KindEbook, nil
	case "audiobook":
		return product.KindAudiobook, nil
	case "map":
		return product.KindMap, nil
	case "game":
		return product.KindGame, nil
	case "other":
		return product.KindOther, nil
	default:
		return 0, fmt.Errorf("unknown product kind %q", raw)
	}
}

func parseAuthorship(raw string) (product.AuthorshipKind, error) {
	switch strings.TrimSpace(raw) {
	case "", "user_given":
		return product.AuthorshipUserGiven, nil
	case "collective":
		return product.AuthorshipCollective, nil
	case "no_contributor":
		return product.AuthorshipNoContributor, nil
	default:
		return 0, fmt.Errorf("unknown authorship kind %q", raw)
	}
}
