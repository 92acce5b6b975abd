// Command scaffold-product interactively collects the minimum fields of a
// catalogue record and writes a starter product batch file that onixgen-cli
// accepts without edits.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"
)

type answers struct {
	RecordReference string `yaml:"record_reference"`
	Kind            string `yaml:"kind"`
	Title           string `yaml:"title"`
	ISBN            string `yaml:"isbn,omitempty"`
	ProductForm     string `yaml:"product_form,omitempty"`
	PublisherName   string `yaml:"publisher_name,omitempty"`
	PublicationYear int    `yaml:"publication_year,omitempty"`
}

type batchFile struct {
	Products []answers `yaml:"products"`
}

func main() {
	output := "product.yml"
	if len(os.Args) > 1 {
		output = os.Args[1]
	}

	var a answers
	questions := []*survey.Question{
		{
			Name:     "recordReference",
			Prompt:   &survey.Input{Message: "Record reference:", Help: "Opaque immutable identifier, unique per record."},
			Validate: survey.Required,
		},
		{
			Name: "kind",
			Prompt: &survey.Select{
				Message: "Product kind:",
				Options: []string{"book", "ebook", "audiobook", "map", "game", "other"},
				Default: "book",
			},
		},
		{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Title:"},
			Validate: survey.Required,
		},
		{
			Name:   "isbn",
			Prompt: &survey.Input{Message: "ISBN-13 (optional):"},
			Validate: func(ans interface{}) error {
				s, _ := ans.(string)
				if s != "" && len(strings.ReplaceAll(s, "-", "")) != 13 {
					return errors.New("expected 13 digits")
				}
				return nil
			},
		},
		{
			Name:   "productForm",
			Prompt: &survey.Input{Message: "Product form code (optional):", Help: "ONIX list 150, e.g. BC for paperback, ED for e-book."},
		},
		{
			Name:   "publisherName",
			Prompt: &survey.Input{Message: "Publisher name (optional):"},
		},
		{
			Name:   "publicationYear",
			Prompt: &survey.Input{Message: "Publication year (optional):", Default: "0"},
		},
	}

	if err := survey.Ask(questions, &a); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Failed to collect answers: %v\n", err)
		os.Exit(1)
	}
	a.ISBN = strings.ReplaceAll(a.ISBN, "-", "")

	payload, err := yaml.Marshal(batchFile{Products: []answers{a}})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to marshal batch: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(output, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Starter batch written to %s\n", output)
}
