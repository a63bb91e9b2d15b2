package logging

// Structured field names.
const (
	FieldError   = "error"
	FieldURI     = "uri"
	FieldPath    = "path"
	FieldVersion = "version"
	FieldOffset  = "offset"
	FieldMethod  = "method"

	FieldRefactoring = "refactoring"
	FieldReason      = "reason"
	FieldProposals   = "proposals"

	FieldSyntaxErrors = "syntax_errors"
	FieldTypes        = "types"
	FieldFiles        = "files"

	FieldAddress = "address"
	FieldConfig  = "config"
)
