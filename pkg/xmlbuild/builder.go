// Package xmlbuild provides an append-only XML token writer with the
// post-processing hook the ONIX pipeline needs: a container element can be
// removed after the fact when none of its would-be children materialised.
package xmlbuild

import "strings"

// Attr is a single element attribute. Attributes render in caller order;
// attributes with empty values are omitted entirely rather than serialized
// as empty strings.
type Attr struct {
	Name  string
	Value string
}

type tokenKind int

const (
	tokenInstruct tokenKind = iota
	tokenOpen
	tokenClose
	tokenElement
	tokenComment
)

type token struct {
	kind tokenKind
	name string
	out  string
}

// Builder accumulates XML tokens for one in-progress document. The token
// sequence always forms a properly nested prefix of an XML document; the only
// mutation besides append is RemoveIfEmpty, which truncates an exactly-empty
// trailing container. A Builder is owned by a single render call and is not
// safe for concurrent use.
type Builder struct {
	tokens []token
	depth  int
}

// New returns an empty Builder writing with two-space indentation.
func New() *Builder {
	return &Builder{}
}

// Instruct appends the XML declaration.
func (b *Builder) Instruct() {
	b.push(token{kind: tokenInstruct, out: "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"})
}

// Block opens a container element, invokes fn to emit its children, then
// closes the element. Nested calls compose; the caller is responsible for
// ONIX-conformant nesting, no tag names are validated here.
func (b *Builder) Block(name string, fn func(), attrs ...Attr) {
	b.push(token{kind: tokenOpen, name: name, out: b.indent() + "<" + name + renderAttrs(attrs) + ">\n"})
	b.depth++
	if fn != nil {
		fn()
	}
	b.depth--
	b.push(token{kind: tokenClose, name: name, out: b.indent() + "</" + name + ">\n"})
}

// Text appends a leaf element holding escaped character data.
func (b *Builder) Text(name, value string, attrs ...Attr) {
	b.push(token{
		kind: tokenElement,
		name: name,
		out:  b.indent() + "<" + name + renderAttrs(attrs) + ">" + escapeText(value) + "</" + name + ">\n",
	})
}

// CDATA appends a leaf element wrapping value in a CDATA section, leaving the
// payload unescaped.
func (b *Builder) CDATA(name, value string, attrs ...Attr) {
	b.push(token{
		kind: tokenElement,
		name: name,
		out:  b.indent() + "<" + name + renderAttrs(attrs) + "><![CDATA[" + value + "]]></" + name + ">\n",
	})
}

// Empty appends a childless element in the <Name/> form.
func (b *Builder) Empty(name string, attrs ...Attr) {
	b.push(token{kind: tokenElement, name: name, out: b.indent() + "<" + name + renderAttrs(attrs) + "/>\n"})
}

// Comment appends an XML comment. Comments never affect document structure
// and are freely suppressible by callers.
func (b *Builder) Comment(text string) {
	b.push(token{kind: tokenComment, out: b.indent() + "<!-- " + strings.ReplaceAll(text, "--", "- -") + " -->\n"})
}

// Len reports the number of appended tokens.
func (b *Builder) Len() int {
	return len(b.tokens)
}

// String joins the token stream into the serialized document.
func (b *Builder) String() string {
	var sb strings.Builder
	for _, t := range b.tokens {
		sb.WriteString(t.out)
	}
	return sb.String()
}

// Bytes returns the serialized document as a byte slice.
func (b *Builder) Bytes() []byte {
	return []byte(b.String())
}

func (b *Builder) push(t token) {
	b.tokens = append(b.tokens, t)
}

func (b *Builder) indent() string {
	return strings.Repeat("  ", b.depth)
}

func renderAttrs(attrs []Attr) string {
	var sb strings.Builder
	for _, a := range attrs {
		if a.Name == "" || a.Value == "" {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(a.Name)
		sb.WriteString("=\"")
		sb.WriteString(escapeAttr(a.Value))
		sb.WriteString("\"")
	}
	return sb.String()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
