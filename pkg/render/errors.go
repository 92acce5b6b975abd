package render

import "errors"

// Configuration errors abort a batch before any output is produced. They
// signal caller mistakes, never bad product data; data gaps degrade to
// omission instead.
var (
	// ErrUnknownDialect is returned when Options name a dialect the
	// generator does not implement.
	ErrUnknownDialect = errors.New("unknown ONIX dialect")

	// ErrMissingVariant is returned when no export variant was selected.
	ErrMissingVariant = errors.New("export variant unspecified")
)
