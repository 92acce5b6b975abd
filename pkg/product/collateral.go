package product

import "time"

// OtherText is one free-text block attached to the product: a description,
// table of contents, review quote or excerpt. Texts marked Internal, texts
// without a type code and blank texts are never exported.
type OtherText struct {
	ID          int
	TypeCode    string
	Text        string
	TextAuthor  string
	SourceTitle string

	// ResourceLink points at the original publication of a review; it is
	// serialized as the text's source attribute.
	ResourceLink string
	Review       bool

	Internal  bool
	UpdatedAt *time.Time
}

// Attachment is a supporting media file (cover image, sample audio, ...).
// Records whose ResourceMode is blank were uploaded in an unrecognized
// format and are skipped.
type Attachment struct {
	ID           int
	ContentType  string
	ResourceMode string
	URL          string
	UpdatedAt    *time.Time
}
