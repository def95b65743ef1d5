package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Receipt Record (REC) ----

func ErrUnknownField(err error) *AppError {
	return Wrap("REC_001", "Unknown receipt field", http.StatusBadRequest, err)
}

// Validation returns a REC_002-style validation error.
func Validation(message string) *AppError {
	return New("REC_002", message, http.StatusBadRequest)
}

// ---- Export Pipeline (EXP) ----

func ErrNoRenderTarget() *AppError {
	return New("EXP_001", "No renderable receipt view", http.StatusInternalServerError)
}

func ErrRenderFailure(err error) *AppError {
	return Wrap("EXP_002", "Receipt rasterization failed", http.StatusInternalServerError, err)
}

func ErrEncodeFailure(err error) *AppError {
	return Wrap("EXP_003", "Image encoding failed", http.StatusInternalServerError, err)
}

func ErrDeliveryFailure(err error) *AppError {
	return Wrap("EXP_004", "Export file delivery failed", http.StatusInternalServerError, err)
}

func ErrExportCancelled(err error) *AppError {
	return Wrap("EXP_005", "Export cancelled", http.StatusRequestTimeout, err)
}

func ErrDocumentFailure(err error) *AppError {
	return Wrap("EXP_006", "Document rendition failed", http.StatusInternalServerError, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
