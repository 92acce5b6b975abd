package product

import (
	"strings"
	"time"
)

// Contributor is one named creator of a product. The structured name parts
// (FirstName, LastName and their satellites) are optional; FullName, or the
// concatenation of the parts, is always available through DisplayName.
type Contributor struct {
	ID   int
	Role string

	// FromLanguage is set for translators only and names the language the
	// translation was made from.
	FromLanguage string

	FullName        string
	TitleBeforeName string
	FirstName       string
	LastNamePrefix  string
	LastName        string
	LastNamePostfix string

	Biography string
	UpdatedAt *time.Time
}

// DisplayName returns the full personal name: the explicit FullName when
// given, otherwise first and last name joined.
func (c *Contributor) DisplayName() string {
	if Present(c.FullName) {
		return strings.TrimSpace(c.FullName)
	}
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// StructuredName reports whether the record carries enough name parts to be
// exported field by field; both a first-name equivalent and a last name are
// required.
func (c *Contributor) StructuredName() bool {
	return Present(c.FirstName) && Present(c.LastName)
}
