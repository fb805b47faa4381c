package services

import (
	"net/http"

	"github.com/nanjundeshwara/stores-backend/internal/i18n"
)

// Error is a business-rule failure carrying the HTTP status to answer with
// and the catalog key for the localized message. Handlers unwrap it with
// errors.As; anything else is an internal error.
type Error struct {
	Status int
	Key    i18n.Key
}

func (e *Error) Error() string {
	return string(e.Key)
}

var (
	ErrUserNotFound        = &Error{Status: http.StatusNotFound, Key: i18n.KeyUserNotFound}
	ErrTransactionNotFound = &Error{Status: http.StatusNotFound, Key: i18n.KeyTransactionNotFound}

	ErrUserIDExists         = &Error{Status: http.StatusConflict, Key: i18n.KeyUserIDExists}
	ErrPaymentExists        = &Error{Status: http.StatusConflict, Key: i18n.KeyPaymentExists}
	ErrPendingPaymentExists = &Error{Status: http.StatusConflict, Key: i18n.KeyPendingPaymentExists}
	ErrTransactionIDExists  = &Error{Status: http.StatusConflict, Key: i18n.KeyTransactionIDExists}
	ErrTransactionDecided   = &Error{Status: http.StatusConflict, Key: i18n.KeyTransactionDecided}
	ErrUserDeleted          = &Error{Status: http.StatusConflict, Key: i18n.KeyUserDeleted}
	ErrUserNotDeleted       = &Error{Status: http.StatusConflict, Key: i18n.KeyUserNotDeleted}
	ErrUserAlreadyDeleted   = &Error{Status: http.StatusConflict, Key: i18n.KeyUserAlreadyDeleted}
	ErrUserNotInTrash       = &Error{Status: http.StatusConflict, Key: i18n.KeyUserNotInTrash}

	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Key: i18n.KeyInvalidCredentials}
)
