package departmenterrors

import (
	"go-employee-directory/internal/shared/apperror"
	"net/http"
)

var ErrFetchDepartments = apperror.New(
	apperror.CodeInternalError,
	"Failed to fetch the Departments",
	http.StatusInternalServerError,
)
