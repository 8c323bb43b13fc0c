package profileerrors

import (
	"net/http"

	"github.com/Slawuu/Company-manager/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"No employee profile is linked to this account",
		http.StatusNotFound,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"This email address is already used by another employee",
		http.StatusConflict,
	)
	ErrPhoneTaken = apperror.New(
		apperror.CodeConflict,
		"This phone number is already used by another employee",
		http.StatusConflict,
	)
)
