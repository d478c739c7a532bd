package officeerrors

import (
	"go-employee-directory/internal/shared/apperror"
	"net/http"
)

var ErrFetchOffices = apperror.New(
	apperror.CodeInternalError,
	"Failed to fetch the Offices",
	http.StatusInternalServerError,
)
