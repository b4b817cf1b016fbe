package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithMessage keeps the code but replaces the user-facing message, used when the
// server sent its own explanation.
func (e *BaseError) WithMessage(message string) *BaseError {
	if message == "" {
		return e
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithMessage/WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Authentication
	ErrMissingCredentials = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"請輸入帳號與密碼。",
		"",
	)

	ErrLoginFailed = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_FAILED",
		"登入失敗",
		"",
	)

	ErrNetwork = NewBaseError(
		http.StatusBadGateway,
		"NETWORK_ERROR",
		"網路錯誤，請稍後再試。",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"此使用者名稱已被註冊。",
		"",
	)

	ErrSignupFailed = NewBaseError(
		http.StatusBadGateway,
		"SIGNUP_FAILED",
		"註冊失敗，請稍後再試。",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"登入狀態已失效，請重新登入。",
		"",
	)

	// Diet records
	ErrRecordTimeRequired = NewBaseError(
		http.StatusBadRequest,
		"RECORD_TIME_REQUIRED",
		"請選擇時間",
		"",
	)

	ErrIncompleteRecord = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_RECORD",
		"請確保所有必填欄位都已填寫或選擇。",
		"",
	)

	ErrCreateRecordFailed = NewBaseError(
		http.StatusBadGateway,
		"CREATE_RECORD_FAILED",
		"新增失敗，請檢查欄位或網路。",
		"",
	)

	ErrUpdateRecordFailed = NewBaseError(
		http.StatusBadGateway,
		"UPDATE_RECORD_FAILED",
		"更新失敗，請檢查欄位或網路。",
		"",
	)

	// Custom foods
	ErrIncompleteFood = NewBaseError(
		http.StatusBadRequest,
		"INCOMPLETE_FOOD",
		"請確保所有欄位都已填寫。",
		"",
	)

	ErrFoodNameTaken = NewBaseError(
		http.StatusConflict,
		"FOOD_NAME_TAKEN",
		"食物名稱重複，請換一個。",
		"",
	)

	ErrFoodSaveFailed = NewBaseError(
		http.StatusBadGateway,
		"FOOD_SAVE_FAILED",
		"操作失敗，請檢查欄位或網路。",
		"",
	)

	// Shared
	ErrDeleteFailed = NewBaseError(
		http.StatusBadGateway,
		"DELETE_FAILED",
		"刪除失敗",
		"",
	)

	ErrConfirmationRequired = NewBaseError(
		http.StatusPreconditionRequired,
		"CONFIRMATION_REQUIRED",
		"確定要刪除此筆資料？",
		"",
	)

	ErrSubmitInProgress = NewBaseError(
		http.StatusConflict,
		"SUBMIT_IN_PROGRESS",
		"資料送出中，請稍候。",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	ErrReadOnlyCollection = NewBaseError(
		http.StatusBadRequest,
		"READ_ONLY_COLLECTION",
		"官方食物不可修改",
		"",
	)
)
