package dict

import "fmt"

// Entry is a single code from an ONIX code list together with its
// human-readable name. Entries are immutable for the process lifetime and
// are used only to annotate generated documents with comments or to validate
// optional enum values; they never influence document structure.
type Entry struct {
	Code string
	Name string
}

// List identifies an ONIX 3.0 code list by its EDItEUR list number.
type List int

const (
	ListNotificationType     List = 1
	ListProductComposition   List = 2
	ListProductIDType        List = 5
	ListTitleType            List = 15
	ListContributorRole      List = 17
	ListUnnamedPersons       List = 19
	ListLanguageRole         List = 22
	ListExtentType           List = 23
	ListExtentUnit           List = 24
	ListSubjectScheme        List = 27
	ListAudienceRangeQual    List = 30
	ListAudienceRangePrec    List = 31
	ListMeasureType          List = 48
	ListMeasureUnit          List = 50
	ListProductRelation      List = 51
	ListDateFormat           List = 55
	ListPriceType            List = 58
	ListPublishingStatus     List = 64
	ListProductAvailability  List = 65
	ListSalesRestriction     List = 71
	ListSupplierIDType       List = 92
	ListSupplierRole         List = 93
	ListPositionOnProduct    List = 142
	ListEpubProtection       List = 144
	ListEpubUsageType        List = 145
	ListEpubUsageStatus      List = 146
	ListEpubUsageUnit        List = 147
	ListCollectionType       List = 148
	ListTitleElementLevel    List = 149
	ListProductForm          List = 150
	ListTextType             List = 153
	ListContentAudience      List = 154
	ListResourceContentType  List = 158
	ListResourceMode         List = 159
	ListResourceForm         List = 161
	ListPublishingDateRole   List = 163
	ListTaxType              List = 171
	ListPriceDateRole        List = 173
	ListPrintedOnProduct     List = 174
	ListProximity            List = 215
)

// Lookup returns the ordered entries of a code list, or nil when the list is
// not carried by this build. The returned slice must not be mutated.
func Lookup(list List) []Entry {
	return registry[list]
}

// Valid reports whether code appears on the given list. Lists that are not
// carried (for example the full BIC language list) accept every code, since
// the generator never restricts values it merely passes through.
func Valid(list List, code string) bool {
	entries, ok := registry[list]
	if !ok {
		return true
	}
	for _, entry := range entries {
		if entry.Code == code {
			return true
		}
	}
	return false
}

// Name returns the display name for a code, or an empty string when unknown.
func Name(list List, code string) string {
	for _, entry := range registry[list] {
		if entry.Code == code {
			return entry.Name
		}
	}
	return ""
}

func (l List) String() string {
	return fmt.Sprintf("ONIX list %d", int(l))
}
