package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidGaspard is returned when the username is empty.
	ErrInvalidGaspard = errors.New("Please provide a valid Gaspard")
	// ErrInvalidUID is returned when the UID is missing or not positive.
	ErrInvalidUID = errors.New("Please provide a valid UID")
	// ErrInvalidGID is returned when the GID is missing or not positive.
	ErrInvalidGID = errors.New("Please provide a valid GID")
	// ErrInvalidEmail is returned when no email prefix can be derived.
	ErrInvalidEmail = errors.New("Please provide a valid email")
	// ErrInvalidGPUCount is returned for a negative GPU count.
	ErrInvalidGPUCount = errors.New("Please provide a non-negative number of GPUs")
	// ErrUnknownImage is returned when the image is not in the catalog.
	ErrUnknownImage = errors.New("Please select a Docker image from the list")
	// ErrInvalidJobName is returned when the job name is not a valid resource name.
	ErrInvalidJobName = errors.New("The Gaspard does not form a valid job name")
	// ErrInvalidManifest is returned when the rendered manifest does not decode.
	ErrInvalidManifest = errors.New("generated manifest is invalid")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidGaspard):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrInvalidGaspard.Error(), "INVALID_GASPARD")
	case errors.Is(err, ErrInvalidUID):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrInvalidUID.Error(), "INVALID_UID")
	case errors.Is(err, ErrInvalidGID):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrInvalidGID.Error(), "INVALID_GID")
	case errors.Is(err, ErrInvalidEmail):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrInvalidEmail.Error(), "INVALID_EMAIL")
	case errors.Is(err, ErrInvalidGPUCount):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrInvalidGPUCount.Error(), "INVALID_GPU_COUNT")
	case errors.Is(err, ErrUnknownImage):
		return NewHTTPError(http.StatusUnprocessableEntity, ErrUnknownImage.Error(), "UNKNOWN_IMAGE")
	case errors.Is(err, ErrInvalidJobName):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_JOB_NAME")
	case errors.Is(err, ErrInvalidManifest):
		return NewHTTPError(http.StatusUnprocessableEntity, err.Error(), "INVALID_MANIFEST")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
