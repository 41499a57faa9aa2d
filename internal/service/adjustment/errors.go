package adjustment

import "errors"

var (
	ErrReasonRequired  = errors.New("adjustment reason is required")
	ErrMissingLocation = errors.New("location id is required")
	ErrMissingEmployee = errors.New("every delta needs an employee id")
)
