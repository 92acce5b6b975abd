package dict

// Constants for the codes the renderers emit directly. Keeping them typed at
// compile time (instead of string lookups keyed by symbol) means an unknown
// code is a build failure, not a render-time surprise.

// List 1 - notification or update type.
const (
	NotificationEarly     = "01"
	NotificationAdvance   = "02"
	NotificationConfirmed = "03"
	NotificationUpdate    = "04"
	NotificationDelete    = "05"
)

// List 2 - product composition.
const CompositionSingleItem = "00"

// List 5 - product identifier type.
const (
	ProductIDProprietary = "01"
	ProductIDEAN         = "03"
	ProductIDDOI         = "06"
	ProductIDISBN13      = "15"
)

// List 13 - collection identifier type.
const CollectionIDISSN = "02"

// List 15 - title type.
const (
	TitleDistinctive   = "01"
	TitleOriginal      = "03"
	TitleOtherLanguage = "06"
	TitleDistributors  = "10"
)

// List 17 - contributor role.
const (
	RoleAuthor     = "A01"
	RoleTranslator = "B06"
)

// List 19 - unnamed person(s).
const VariousAuthors = "04"

// List 22 - language role.
const (
	LanguageOfText   = "01"
	OriginalLanguage = "02"
)

// List 23 - extent type.
const (
	ExtentPageCount = "00"
	ExtentDuration  = "09"
	ExtentFileSize  = "22"
)

// List 24 - extent unit.
const (
	UnitPages     = "03"
	UnitMinutes   = "05"
	UnitMegabytes = "19"
)

// List 27 - subject scheme identifier.
const (
	SchemeKeywords        = "20"
	SchemeProprietary     = "24"
	SchemeThemaSubject    = "93"
	SchemeThemaPlace      = "94"
	SchemeThemaLanguage   = "95"
	SchemeThemaTimePeriod = "96"
	SchemeThemaEducation  = "97"
	SchemeThemaInterest   = "98"
	SchemeThemaStyle      = "99"
)

// List 30 / list 31 - audience range qualifier and precision.
const (
	AudienceReadingAge = "18"
	AudienceGradeFrom  = "03"
	AudienceGradeTo    = "04"
)

// List 45 - publishing role.
const PublishingRolePublisher = "01"

// List 48 - measure type.
const (
	MeasureHeight     = "01"
	MeasureWidth      = "02"
	MeasureThickness  = "03"
	MeasureUnitWeight = "08"
)

// List 50 - measure unit.
const (
	UnitMillimeters = "mm"
	UnitGrams       = "gr"
)

// List 51 - product relation.
const RelationFacsimile = "23"

// List 55 - date format.
const (
	DateYYYYMMDD = "00"
	DateYYYYMM   = "01"
	DateYYYY     = "05"
)

// List 58 - price type.
const PriceRRPWithTax = "02"

// List 64 - publishing status.
const (
	StatusForthcoming = "02"
	StatusActive      = "04"
	StatusOutOfPrint  = "07"
)

// List 71 - sales restriction type.
const RestrictionRetailerExclusive = "04"

// List 92 - supplier identifier type.
const SupplierIDProprietary = "02"

// List 93 - supplier role.
const (
	SupplierPublisher         = "01"
	SupplierPublisherToRetail = "02"
	SupplierWholesaler        = "03"
)

// List 142 - position on product.
const PositionUnknown = "00"

// List 174 - printed on product.
const (
	PrintedOnProductNo  = "01"
	PrintedOnProductYes = "02"
)

// List 144 - e-publication technical protection.
const (
	ProtectionNone      = "00"
	ProtectionDRM       = "01"
	ProtectionWatermark = "02"
)

// List 145 / 146 / 147 - e-publication usage.
const (
	UsagePreview        = "01"
	UsagePermitted      = "01"
	UsageLimited        = "02"
	UsageProhibited     = "03"
	UsageUnitCharacters = "02"
	UsageUnitPercentage = "09"
)

// List 148 - collection type.
const PublisherCollection = "10"

// List 149 - title element level.
const (
	LevelProduct    = "01"
	LevelCollection = "02"
)

// List 153 - text type.
const (
	TextDescription     = "03"
	TextTableOfContents = "04"
	TextReview          = "06"
	TextExcerpt         = "23"
)

// List 154 - content audience.
const AudienceUnrestricted = "00"

// List 159 / 161 - resource mode and form.
const (
	ResourceModeImage        = "03"
	ResourceDownloadableFile = "02"
)

// List 163 - publishing date role.
const (
	PublicationDate = "01"
	OutOfPrintDate  = "13"
	PreorderEmbargo = "27"
)

// List 171 - tax type.
const TaxVAT = "01"

// List 173 - price date role.
const PriceFromDate = "14"

// List 215 - proximity of the stock figure reported in OnHand.
const ProximityExactly = "03"

var registry = map[List][]Entry{
	ListNotificationType: {
		{NotificationEarly, "Early notification"},
		{NotificationAdvance, "Advance notification (confirmed)"},
		{NotificationConfirmed, "Notification confirmed on publication"},
		{NotificationUpdate, "Update (partial)"},
		{NotificationDelete, "Delete"},
	},
	ListProductIDType: {
		{ProductIDProprietary, "Proprietary"},
		{ProductIDEAN, "GTIN-13"},
		{ProductIDDOI, "DOI"},
		{ProductIDISBN13, "ISBN-13"},
	},
	ListTitleType: {
		{TitleDistinctive, "Distinctive title"},
		{TitleOriginal, "Title in original language"},
		{TitleOtherLanguage, "Title in other language"},
		{TitleDistributors, "Distributor's title"},
	},
	ListContributorRole: {
		{RoleAuthor, "By (author)"},
		{"A07", "By (artist)"},
		{"A12", "Illustrated by"},
		{"A13", "Photographs by"},
		{"A36", "Cover design by"},
		{RoleTranslator, "Translated by"},
		{"B01", "Edited by"},
		{"B21", "General editor"},
		{"E07", "Read by"},
	},
	ListLanguageRole: {
		{LanguageOfText, "Language of text"},
		{OriginalLanguage, "Original language of a translated text"},
	},
	ListMeasureType: {
		{MeasureHeight, "Height"},
		{MeasureWidth, "Width"},
		{MeasureThickness, "Thickness"},
		{MeasureUnitWeight, "Unit weight"},
	},
	ListDateFormat: {
		{DateYYYYMMDD, "YYYYMMDD"},
		{DateYYYYMM, "YYYYMM"},
		{DateYYYY, "YYYY"},
	},
	ListPublishingStatus: {
		{StatusForthcoming, "Forthcoming"},
		{StatusActive, "Active"},
		{"06", "Out of stock indefinitely"},
		{StatusOutOfPrint, "Out of print"},
		{"08", "Inactive"},
	},
	ListProductAvailability: {
		{"10", "Not yet available"},
		{"12", "Not yet available, will be POD"},
		{"20", "Available"},
		{"21", "In stock"},
		{"23", "Print on demand"},
		{"40", "Not available"},
	},
	ListProductForm: {
		{"BA", "Book"},
		{"BB", "Hardback"},
		{"BC", "Paperback / softback"},
		{"BF", "Pamphlet"},
		{"CB", "Sheet map, folded"},
		{"DG", "Electronic book text"},
		{"AJ", "Downloadable audio file"},
		{"ED", "Digital download"},
		{"EA", "Digital (delivered electronically)"},
		{"ZE", "Game"},
	},
	ListTextType: {
		{TextDescription, "Description"},
		{TextTableOfContents, "Table of contents"},
		{TextReview, "Review quote"},
		{TextExcerpt, "Excerpt from book"},
	},
	ListResourceContentType: {
		{"01", "Front cover"},
		{"04", "Contributor picture"},
		{"15", "Cover thumbnail"},
	},
	ListResourceMode: {
		{"02", "Audio"},
		{ResourceModeImage, "Image"},
		{"04", "Text"},
		{"05", "Video"},
	},
	ListSupplierRole: {
		{SupplierPublisher, "Publisher to retailers"},
		{SupplierPublisherToRetail, "Publisher's exclusive distributor to retailers"},
		{SupplierWholesaler, "Wholesaler"},
	},
	ListPriceType: {
		{"01", "RRP excluding tax"},
		{PriceRRPWithTax, "RRP including tax"},
	},
	ListEpubProtection: {
		{ProtectionNone, "None"},
		{ProtectionDRM, "DRM"},
		{ProtectionWatermark, "Digital watermarking"},
	},
	ListProductRelation: {
		{RelationFacsimile, "Electronic version available as"},
	},
	ListPrintedOnProduct: {
		{PrintedOnProductNo, "No"},
		{PrintedOnProductYes, "Yes"},
	},
	ListPublishingDateRole: {
		{PublicationDate, "Publication date"},
		{OutOfPrintDate, "Out-of-print / deletion date"},
		{PreorderEmbargo, "Preorder embargo date"},
	},
	ListEpubUsageStatus: {
		{UsagePermitted, "Permitted unlimited"},
		{UsageLimited, "Permitted subject to limit"},
		{UsageProhibited, "Prohibited"},
	},
	ListEpubUsageUnit: {
		{UsageUnitCharacters, "Characters"},
		{UsageUnitPercentage, "Percentage of total content"},
	},
}
