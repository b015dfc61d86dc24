package httperr

import (
	"errors"
	"net/http"
)

// Business rule codes with a dedicated HTTP status. Any other code is a 400.
const (
	CodeInvalidTransition  = "invalid_transition"
	CodeNotOwner           = "not_owner"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInactiveUser       = "inactive_user"
)

var (
	ErrNotOwner           = ErrBusiness(CodeNotOwner)
	ErrInvalidCredentials = ErrBusiness(CodeInvalidCredentials)
	ErrInactiveUser       = ErrBusiness(CodeInactiveUser)
)

// BusinessError is a rule violation reported to the caller by its code.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func (e BusinessError) Status() int {
	switch e.Code {
	case CodeInvalidTransition:
		return http.StatusConflict
	case CodeNotOwner, CodeInactiveUser:
		return http.StatusForbidden
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	}
	return http.StatusBadRequest
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
