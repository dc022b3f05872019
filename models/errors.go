package models

import "fmt"

// ValidationReason identifies which input rule was broken
type ValidationReason string

const (
	ReasonUnit        ValidationReason = "unit"
	ReasonNumeric     ValidationReason = "numeric"
	ReasonDuplication ValidationReason = "duplication"
	ReasonCount       ValidationReason = "count"
	ReasonRange       ValidationReason = "range"
)

// User-facing messages, printed as-is at the program boundary
const (
	UnitErrorMessage        = "[ERROR] 올바른 단위가 아닙니다."
	NumericErrorMessage     = "[ERROR] 숫자를 입력해 주시기 바랍니다."
	DuplicationErrorMessage = "[ERROR] 당첨 번호와 보너스 번호에 중복된 숫자가 있습니다."
	CountErrorMessage       = "[ERROR] 로또 번호는 6개여야 합니다."
	RangeErrorMessage       = "[ERROR] 로또 번호는 1부터 45 사이의 숫자여야 합니다."
	TicketDuplicateMessage  = "[ERROR] 로또 번호에 중복된 숫자가 있습니다."
)

// ValidationError is returned for any invalid user input. It is never
// recovered internally; callers pass it up to main.
type ValidationError struct {
	Reason      ValidationReason
	UserMessage string
	Detail      string // Internal detail for logging
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%s)", e.UserMessage, e.Detail)
	}
	return e.UserMessage
}

// NewValidationError creates a validation error with an optional log detail
func NewValidationError(reason ValidationReason, userMessage string, detailFormat string, args ...any) *ValidationError {
	detail := detailFormat
	if len(args) > 0 {
		detail = fmt.Sprintf(detailFormat, args...)
	}
	return &ValidationError{
		Reason:      reason,
		UserMessage: userMessage,
		Detail:      detail,
	}
}
