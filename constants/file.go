package constants

import (
	"path/filepath"
	"strings"
)

// Origin tags which extractor produced a task record.
type Origin string

const (
	OriginTabularAttachment  Origin = "tabular_attachment"
	OriginDocumentAttachment Origin = "document_attachment"
	OriginNarrativeText      Origin = "narrative_text"
	OriginFallbackReview     Origin = "fallback_review"
)

// AttachmentFormat is the declared kind of an attachment payload.
type AttachmentFormat string

const (
	FormatTabular  AttachmentFormat = "TABULAR"  // xlsx/xls/csv
	FormatDocument AttachmentFormat = "DOCUMENT" // pdf
)

// AttachmentFormats holds the allowed values for the format field on attachments.
var AttachmentFormats = []string{string(FormatTabular), string(FormatDocument)}

var extToFormat = map[string]AttachmentFormat{
	"xlsx": FormatTabular,
	"xls":  FormatTabular,
	"csv":  FormatTabular,
	"pdf":  FormatDocument,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// FormatForFilename maps a filename to its attachment format.
// The empty string means the type is unsupported (a "no data" outcome,
// not an error).
func FormatForFilename(name string) AttachmentFormat {
	return extToFormat[NormalizeExt(filepath.Ext(name))]
}
