package render

import (
	"strings"

	"github.com/elibri/go-onixgen/pkg/dict"
)

// comment emits an explanatory XML comment subject to the configured
// comment mode. In selective mode only comments labelled with an enabled
// kind appear, prefixed with a $kind$ marker so extraction tooling can group
// them. Comments never carry document semantics.
func (r *batch) comment(text string, kinds ...CommentKind) {
	switch r.opts.Comments {
	case CommentsAll:
		r.b.Comment(text)
	case CommentsSelective:
		for _, kind := range kinds {
			if r.opts.commentKindEnabled([]CommentKind{kind}) {
				r.b.Comment("$" + string(kind) + "$ " + text)
			}
		}
	}
}

// commentDictionary renders a description followed by every entry of a code
// list, one "code - name" pair per line, indented to sit under the element
// the comment documents.
func (r *batch) commentDictionary(description string, list dict.List, indent int, kinds ...CommentKind) {
	entries := dict.Lookup(list)
	if len(entries) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString(description)
	pad := strings.Repeat(" ", indent)
	for _, entry := range entries {
		sb.WriteString("\n" + pad + entry.Code + " - " + entry.Name)
	}
	r.comment(sb.String(), kinds...)
}
