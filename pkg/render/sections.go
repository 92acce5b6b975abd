package render

// SectionInfo is the documentation annotation attached to one section
// renderer. The render path never reads it; the offline documentation tool
// walks Sections to build the human-readable ONIX reference. HiddenTags
// lists elements a documentation example should collapse for readability.
type SectionInfo struct {
	Name        string
	Title       string
	HiddenTags  []string
	Description string
}

var sectionDocs = []SectionInfo{
	{
		Name:       "record_identifiers",
		Title:      "Record identifiers",
		HiddenTags: []string{"NotificationType", "DescriptiveDetail", "ProductSupply", "PublishingDetail"},
		Description: "Every record carries an opaque, immutable identifier in RecordReference. " +
			"Besides it a product may expose an ISBN, an EAN (only when it differs from the ISBN), " +
			"a DOI and one proprietary identifier per supplier.",
	},
	{
		Name:       "product_form",
		Title:      "Product form",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "TitleDetail"},
		Description: "ProductForm names the product type; ProductComposition is currently always 00 " +
			"(a single-item product). Dialect 3.0.1 maps retired form codes to their retained " +
			"equivalents; dialect 3.0.2 pairs ProductForm with ProductFormDetail in place.",
	},
	{
		Name:       "epub_details",
		Title:      "E-books",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "TitleDetail", "PublishingDetail", "ProductComposition"},
		Description: "Format details of digitally delivered products, including the applied " +
			"technical protection.",
	},
	{
		Name:       "measurement",
		Title:      "Product dimensions",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "Height, width and thickness in millimeters and weight in grams, each emitted " +
			"only when known. Map products additionally report their scale in MapScale.",
	},
	{
		Name:       "titles",
		Title:      "Titles",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm"},
		Description: "Up to four title blocks: the full product title (cascading through the " +
			"collection when the product is part of one), the English title, the title in the " +
			"original language and the publisher's trade title.",
	},
	{
		Name:       "series_memberships",
		Title:      "Publisher series",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm"},
		Description: "Series are described like titles but wrapped in Collection; a product may " +
			"belong to several series, and periodicals carry their ISSN.",
	},
	{
		Name:       "contributors",
		Title:      "Authors, editors, translators",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "A product enumerates its contributors, declares itself a collective work, or " +
			"explicitly states it has no author. Structured name parts are exported when both a " +
			"first and a last name are recorded; the full name is always present.",
	},
	{
		Name:        "edition",
		Title:       "Edition",
		HiddenTags:  []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "A free-text description of the edition.",
	},
	{
		Name:        "languages",
		Title:       "Languages",
		HiddenTags:  []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "The languages the product is available in, each with its role.",
	},
	{
		Name:       "extent",
		Title:      "Extent",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "File size for digital products, duration for audio, page and illustration " +
			"counts for books and e-books.",
	},
	{
		Name:       "subjects",
		Title:      "Subjects",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "Thema classification, proprietary categories and per-language keyword groups. " +
			"SubjectSchemeName distinguishes catalogue categories from the publisher's own.",
	},
	{
		Name:        "audience_range",
		Title:       "Reading age",
		HiddenTags:  []string{"RecordReference", "NotificationType", "ProductIdentifier", "ProductComposition", "ProductForm", "TitleDetail"},
		Description: "Both the lower and the upper reading age bound are optional.",
	},
	{
		Name:       "publisher_info",
		Title:      "Publisher",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail"},
		Description: "Publisher name, optional imprint and city of publication. When an imprint is " +
			"given it should be presented to end customers as the publisher.",
	},
	{
		Name:       "publishing_status",
		Title:      "Record life cycle",
		HiddenTags: []string{"ProductIdentifier", "DescriptiveDetail", "ProductSupply"},
		Description: "The record status is the combination of NotificationType and PublishingStatus, " +
			"refined by publication, preorder-embargo and out-of-print dates.",
	},
	{
		Name:        "territorial_rights",
		Title:       "Territorial sale restrictions",
		HiddenTags:  []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail", "Publisher", "PublishingStatus"},
		Description: "Sales are either restricted to Poland or open worldwide.",
	},
	{
		Name:       "sale_restrictions",
		Title:      "Sale restrictions",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail"},
		Description: "Retailer exclusivity with an expiry date; the expiry should be treated as the " +
			"actual premiere date.",
	},
	{
		Name:       "texts",
		Title:      "Texts",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail"},
		Description: "Descriptions, tables of contents, review quotes and excerpts supplied by the " +
			"publisher.",
	},
	{
		Name:       "supporting_resources",
		Title:      "Attachments",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail"},
		Description: "Media files attached to the product - at least the cover. Consumers must copy " +
			"the files; hotlinking is not allowed.",
	},
	{
		Name:        "related_products",
		Title:       "Related products",
		HiddenTags:  []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail"},
		Description: "Facsimiles of the product in other media, referenced by record reference.",
	},
	{
		Name:       "supply_details",
		Title:      "Stock and prices",
		HiddenTags: []string{"RecordReference", "NotificationType", "DescriptiveDetail", "Supplier", "ProductAvailability", "Price"},
		Description: "Per-supplier availability, exact stock figures and price blocks with their VAT " +
			"sub-block.",
	},
	{
		Name:       "elibri_extensions",
		Title:      "Vendor extensions",
		HiddenTags: []string{"RecordReference", "NotificationType", "ProductIdentifier", "DescriptiveDetail"},
		Description: "Attributes the ONIX standard has no place for (VAT, PKWiU, cover price, sale " +
			"licence windows, file manifests), carried under a dedicated namespace.",
	},
}

// Sections returns the documentation annotations in document order.
func Sections() []SectionInfo {
	out := make([]SectionInfo, len(sectionDocs))
	copy(out, sectionDocs)
	return out
}
