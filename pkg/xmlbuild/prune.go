package xmlbuild

import "strings"

// RemoveIfEmpty locates the most recently opened container with the given
// name and truncates it from the stream when it turned out to hold no
// children, no text and no attributes. Calling it when the trailing container
// is absent or non-empty is a no-op, so the operation is idempotent.
//
// Only the most recent open tag is considered. Nested or repeated containers
// with the same name are not handled; ONIX documents produced here never nest
// a container inside itself, so this limitation is accepted rather than
// worked around.
func (b *Builder) RemoveIfEmpty(name string) {
	idx := -1
	for i := len(b.tokens) - 1; i >= 0; i-- {
		t := b.tokens[i]
		if t.kind == tokenOpen && t.name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	var tail strings.Builder
	for _, t := range b.tokens[idx:] {
		tail.WriteString(t.out)
	}
	collapsed := strings.NewReplacer("\n", "", " ", "").Replace(tail.String())
	if collapsed == "<"+name+"></"+name+">" {
		b.tokens = b.tokens[:idx]
	}
}
