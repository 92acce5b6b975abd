// Command onixgen-docs renders the section documentation registry into a
// standalone HTML page, so integrators can browse what each part of the
// message means without reading the renderer sources.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/flosch/pongo2/v6"

	"github.com/elibri/go-onixgen/pkg/render"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>ONIX message sections</title>
<style>
  body { font-family: sans-serif; max-width: 60em; margin: 2em auto; }
  h2 { border-bottom: 1px solid #ccc; padding-bottom: .2em; }
  code { background: #f4f4f4; padding: 0 .25em; }
</style>
</head>
<body>
<h1>ONIX message sections</h1>
<p>Generated from the section registry. Each section lists the structural
tags it never documents inline.</p>
{% for section in sections %}
<h2 id="{{ section.Name }}">{{ section.Title }}</h2>
<p>{{ section.Description }}</p>
{% if section.HiddenTags %}
<p>Structural tags:
{% for tag in section.HiddenTags %}<code>{{ tag }}</code> {% endfor %}
</p>
{% endif %}
{% endfor %}
</body>
</html>
`

func main() {
	output := flag.String("output", "onix-sections.html", "output HTML file")
	flag.Parse()

	set := pongo2.NewSet("docs")
	tmpl, err := set.FromString(pageTemplate)
	if err != nil {
		log.Fatalf("Failed to parse page template: %v", err)
	}

	out, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer out.Close()

	if err := tmpl.ExecuteWriter(pongo2.Context{"sections": render.Sections()}, out); err != nil {
		log.Fatalf("Failed to render documentation: %v", err)
	}
	fmt.Printf("Section documentation written to %s\n", *output)
}
