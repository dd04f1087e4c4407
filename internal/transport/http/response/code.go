package response

// Client-facing error codes. Conflicts share VALIDATION_ERROR with malformed
// input; only absent resources get RESOURCE_NOT_FOUND.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "RESOURCE_NOT_FOUND"
)
