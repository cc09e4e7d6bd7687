package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeAdminNotFound      = "ADMIN_NOT_FOUND"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeMissingFile        = "MISSING_FILE"
	ErrCodeUploadFailed       = "UPLOAD_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DomainError carries a stable code alongside a user-facing message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrCredentialsMissing = NewDomainError(ErrCodeValidation, "Email and password are required")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrDuplicateEmail     = NewDomainError(ErrCodeDuplicateEmail, "Admin with this email already exists")
	ErrAdminNotFound      = NewDomainError(ErrCodeAdminNotFound, "Admin not found")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid password")
	ErrMissingFile        = NewDomainError(ErrCodeMissingFile, "Image file not found")
	ErrUploadFailed       = NewDomainError(ErrCodeUploadFailed, "Image upload failed")
)
