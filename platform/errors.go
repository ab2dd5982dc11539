package platform

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUserAddress     = errors.New("InvalidUserAddress")
	ErrInvalidContractAddress = errors.New("InvalidContractAddress")
	ErrSignerNotFoundation    = errors.New("SignerNotFoundation")
	ErrContractNotResolved    = errors.New("ContractNotResolved")
	ErrInvalidAmountFormat    = errors.New("InvalidAmountFormat")
)

// CustomError carries an HTTP-style status code alongside the failure so
// callers can tell caller-correctable validation failures apart from
// internal ones.
type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func NewCustomError(code int, message string, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func InvalidAmountError(entity, value string) error {
	return fmt.Errorf("%w for %s with value %s", ErrInvalidAmountFormat, entity, value)
}
