package scoring

// Section weights. They sum to MaxTotal; a report passes at
// PassThreshold with zero errors.
const (
	MaxStructure     = 30
	MaxConfig        = 25
	MaxContent       = 25
	MaxCompatibility = 20
	MaxTotal         = MaxStructure + MaxConfig + MaxContent + MaxCompatibility

	PassThreshold = 70
)

// Deduction categories. Every issue a section records is priced through
// exactly one of these, so all point costs live in the table below.
const (
	// structure
	CatManifestMissing = "manifest-missing"
	CatPreviewMissing  = "preview-missing"
	CatReadmeMissing   = "readme-missing"
	CatNoStandardDirs  = "no-standard-dirs"

	// config
	CatManifestUnparsable  = "manifest-unparsable"
	CatRequiredFieldAbsent = "required-field-absent"
	CatBadTemplateType     = "bad-template-type"
	CatBadVersion          = "bad-version"
	CatNoContentFiles      = "no-content-files"
	CatEntryMissingPath    = "entry-missing-path"
	CatEntryMissingSchema  = "entry-missing-schema"
	CatBadDocumentType     = "bad-document-type"
	CatAssetTypeMismatch   = "asset-type-mismatch"
	CatSchemaError         = "schema-error"
	CatSchemaWarning       = "schema-warning"

	// content
	CatFileMissing          = "file-missing"
	CatWildcardNoMatch      = "wildcard-no-match"
	CatJSONUnparsable       = "json-unparsable"
	CatMarkdownEmpty        = "markdown-empty"
	CatFrontmatterMalformed = "frontmatter-malformed"

	// compatibility
	CatPreviewComponentMissing = "preview-component-missing"
	CatEditableFieldUnknown    = "editable-field-unknown"
	CatNoUIEvidence            = "no-ui-evidence"
)

// deductions is the single pricing table. Suggestions cost nothing;
// they are listed here so every category has an entry.
var deductions = map[string]int{
	CatManifestMissing: 25,
	CatPreviewMissing:  5,
	CatReadmeMissing:   3,
	CatNoStandardDirs:  0,

	CatManifestUnparsable:  20,
	CatRequiredFieldAbsent: 8,
	CatBadTemplateType:     8,
	CatBadVersion:          2,
	CatNoContentFiles:      8,
	CatEntryMissingPath:    5,
	CatEntryMissingSchema:  5,
	CatBadDocumentType:     2,
	CatAssetTypeMismatch:   1,
	CatSchemaError:         3,
	CatSchemaWarning:       1,

	CatFileMissing:          4,
	CatWildcardNoMatch:      3,
	CatJSONUnparsable:       6,
	CatMarkdownEmpty:        2,
	CatFrontmatterMalformed: 2,

	CatPreviewComponentMissing: 4,
	CatEditableFieldUnknown:    2,
	CatNoUIEvidence:            0,
}

// DeductionFor returns the point cost of a category. Unknown categories
// cost nothing rather than panicking mid-validation.
func DeductionFor(category string) int {
	return deductions[category]
}
