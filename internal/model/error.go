package model

// Error codes for rejected request fields.
const (
	CodeDateFormat        = "date_format"
	CodeMissingLCRLines   = "missing_lcr_lines"
	CodeNonIntegerLCRLine = "non_integer_lcr_line"
	CodeInvalidCountry    = "invalid_country_code"
)

// FieldError is a single rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// ErrorResponse is the body of every 4xx reply. Error holds the first
// failure's message; Details lists every failing field.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}
