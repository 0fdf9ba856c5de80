package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidPeriod        ErrorCode = 101
	ErrCodeInvalidConfiguration ErrorCode = 102
	ErrCodeMissingParameter     ErrorCode = 103
	ErrCodeUnsupportedFormat    ErrorCode = 104
	ErrCodeInvalidVersion       ErrorCode = 105

	// Data/Resource errors (200-299)
	ErrCodeFileNotFound          ErrorCode = 200
	ErrCodeStockCodeNotFound     ErrorCode = 201
	ErrCodeQueryFailed           ErrorCode = 202
	ErrCodeDataSourceUnavailable ErrorCode = 203

	// Schema errors (300-399)
	ErrCodeMissingColumns ErrorCode = 300

	// Parse errors (400-499)
	ErrCodeDateParseFailed  ErrorCode = 400
	ErrCodeValueParseFailed ErrorCode = 401

	// Chart errors (500-599)
	ErrCodeChartWriteFailed  ErrorCode = 500
	ErrCodeChartRenderFailed ErrorCode = 501
)
